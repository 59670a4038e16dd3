package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/eduline/elearn-client/internal/client/realtime"
	"github.com/eduline/elearn-client/pkg/api"
)

// Entry is one visible notification
type Entry struct {
	ID   int64
	Body string
}

// RestAPI is the slice of the REST API the pipeline depends on
type RestAPI interface {
	ListNotifications(ctx context.Context) ([]api.Notification, error)
	DeleteNotification(ctx context.Context, id int64) error
}

// Pipeline maintains the notification log: a REST snapshot as initial state
// with live socket events layered on top as a delta stream. An item that
// arrives through both paths shows up twice; the protocol offers no way to
// correlate them, so no de-duplication is attempted.
type Pipeline struct {
	mu       sync.Mutex
	entries  []Entry
	rest     RestAPI
	onChange func()
}

// NewPipeline creates a notifications pipeline. onChange fires after every
// log mutation; it may be nil.
func NewPipeline(rest RestAPI, onChange func()) *Pipeline {
	return &Pipeline{
		rest:     rest,
		onChange: onChange,
	}
}

// Hydrate loads the persisted notifications snapshot as the initial log
func (p *Pipeline) Hydrate(ctx context.Context) error {
	snapshot, err := p.rest.ListNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}

	entries := make([]Entry, 0, len(snapshot))
	for _, n := range snapshot {
		entries = append(entries, Entry{ID: n.ID, Body: n.Message})
	}

	p.mu.Lock()
	p.entries = entries
	p.mu.Unlock()
	p.notify()
	return nil
}

// Run consumes live events until the stream ends or ctx is cancelled
func (p *Pipeline) Run(ctx context.Context, events <-chan realtime.Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			p.handle(ev)
		case <-ctx.Done():
			return
		}
	}
}

// Dismiss deletes the notification on the server and, only on success,
// removes it from the local log. A failed delete leaves the entry visible.
func (p *Pipeline) Dismiss(ctx context.Context, id int64) error {
	if err := p.rest.DeleteNotification(ctx, id); err != nil {
		return fmt.Errorf("failed to dismiss notification %d: %w", id, err)
	}

	p.mu.Lock()
	for i := range p.entries {
		if p.entries[i].ID == id {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
	p.notify()
	return nil
}

// Entries returns a snapshot of the log
func (p *Pipeline) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

func (p *Pipeline) handle(ev realtime.Event) {
	switch ev := ev.(type) {
	case realtime.NotificationEvent:
		p.mu.Lock()
		p.entries = append(p.entries, Entry{ID: ev.ID, Body: ev.Body})
		p.mu.Unlock()
		p.notify()
	case realtime.MalformedFrameEvent:
		slog.Warn("discarding malformed notification frame", "raw", ev.Raw)
	}
}

func (p *Pipeline) notify() {
	if p.onChange != nil {
		p.onChange()
	}
}
