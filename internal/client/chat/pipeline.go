package chat

import (
	"context"
	"log/slog"
	"sync"

	"github.com/eduline/elearn-client/internal/client/identity"
	"github.com/eduline/elearn-client/internal/client/realtime"
)

// UnknownSender is the display name used while a sender identity is pending
// or absent
const UnknownSender = "Unknown"

// Entry is one line of the chat log. The log is append-only and ordered by
// arrival; identity resolution may rewrite DisplayName later but never the
// position or the body.
type Entry struct {
	SenderID    string // "unknown" when the frame carried no sender
	DisplayName string
	Body        string
}

// Pipeline consumes chat channel events and maintains the ordered message
// log, resolving sender ids through the shared identity cache. Resolution
// never blocks an append: entries appear immediately with a degraded
// identity and are re-rendered when the lookup completes.
type Pipeline struct {
	mu       sync.Mutex
	entries  []Entry
	ids      *identity.Cache
	onChange func()
}

// NewPipeline creates a chat pipeline. onChange fires after every log
// mutation so the owning view can re-render; it may be nil.
func NewPipeline(ids *identity.Cache, onChange func()) *Pipeline {
	return &Pipeline{
		ids:      ids,
		onChange: onChange,
	}
}

// Run consumes events until the stream ends or ctx is cancelled. Events are
// appended strictly in arrival order.
func (p *Pipeline) Run(ctx context.Context, events <-chan realtime.Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			p.handle(ctx, ev)
		case <-ctx.Done():
			return
		}
	}
}

// Entries returns a snapshot of the log
func (p *Pipeline) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

func (p *Pipeline) handle(ctx context.Context, ev realtime.Event) {
	switch ev := ev.(type) {
	case realtime.MessageEvent:
		p.append(ctx, ev)
	case realtime.MalformedFrameEvent:
		// Surfaced for diagnosis, no log entry; the connection stays up.
		slog.Warn("discarding malformed chat frame", "raw", ev.Raw)
	}
}

func (p *Pipeline) append(ctx context.Context, ev realtime.MessageEvent) {
	entry := Entry{
		SenderID:    ev.SenderID,
		DisplayName: UnknownSender,
		Body:        ev.Body,
	}
	if ev.SenderID == "" {
		entry.SenderID = "unknown"
	} else if id, ok := p.ids.Peek(ev.SenderID); ok {
		entry.DisplayName = id.DisplayName
	}

	p.mu.Lock()
	p.entries = append(p.entries, entry)
	p.mu.Unlock()
	p.notify()

	if ev.SenderID == "" || entry.DisplayName != UnknownSender {
		return
	}

	// Resolve off the event loop; a late result only fills in the display
	// name for its own sender and never reorders the log.
	go func(senderID string) {
		id, err := p.ids.Resolve(ctx, senderID)
		if err != nil {
			slog.Warn("failed to resolve sender identity", "sender_id", senderID, "error", err)
			return
		}
		p.mu.Lock()
		for i := range p.entries {
			if p.entries[i].SenderID == senderID {
				p.entries[i].DisplayName = id.DisplayName
			}
		}
		p.mu.Unlock()
		p.notify()
	}(ev.SenderID)
}

func (p *Pipeline) notify() {
	if p.onChange != nil {
		p.onChange()
	}
}
