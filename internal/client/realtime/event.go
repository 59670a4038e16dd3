package realtime

import (
	"encoding/json"
	"strconv"
)

// Purpose selects the realtime endpoint a channel connects to
type Purpose string

const (
	PurposeChat          Purpose = "chat"
	PurposeNotifications Purpose = "notifications"
)

// Event is the typed form of one inbound socket frame. Downstream pipeline
// code switches on the concrete type and never touches raw frame data.
type Event interface {
	isEvent()
}

// MessageEvent is an inbound chat message. SenderID is empty when the frame
// omitted sender_id; the pipeline degrades the identity rather than dropping
// the message.
type MessageEvent struct {
	SenderID string
	Body     string
}

// NotificationEvent is an inbound live notification
type NotificationEvent struct {
	ID   int64
	Body string
}

// MalformedFrameEvent wraps a frame without a recognizable payload shape.
// One bad frame never terminates the connection.
type MalformedFrameEvent struct {
	Raw string
}

func (MessageEvent) isEvent()        {}
func (NotificationEvent) isEvent()   {}
func (MalformedFrameEvent) isEvent() {}

// decodeFrame normalizes one raw text frame into an Event. The frame payloads
// are loosely typed on the wire, so identifiers are accepted as either JSON
// strings or numbers.
func decodeFrame(purpose Purpose, raw []byte) Event {
	switch purpose {
	case PurposeNotifications:
		return decodeNotificationFrame(raw)
	default:
		return decodeChatFrame(raw)
	}
}

func decodeChatFrame(raw []byte) Event {
	var frame struct {
		Message  *string         `json:"message"`
		SenderID json.RawMessage `json:"sender_id"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil || frame.Message == nil || *frame.Message == "" {
		return MalformedFrameEvent{Raw: string(raw)}
	}
	return MessageEvent{
		SenderID: decodeIdentifier(frame.SenderID),
		Body:     *frame.Message,
	}
}

func decodeNotificationFrame(raw []byte) Event {
	var frame struct {
		ID      json.RawMessage `json:"id"`
		Message *string         `json:"message"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil || frame.Message == nil || *frame.Message == "" {
		return MalformedFrameEvent{Raw: string(raw)}
	}
	id, err := strconv.ParseInt(decodeIdentifier(frame.ID), 10, 64)
	if err != nil {
		return MalformedFrameEvent{Raw: string(raw)}
	}
	return NotificationEvent{
		ID:   id,
		Body: *frame.Message,
	}
}

// decodeIdentifier reads an identifier that may arrive as a JSON string or
// number. Returns "" for anything else.
func decodeIdentifier(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
