package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeChatFrame(t *testing.T) {
	tests := []struct {
		want Event
		name string
		raw  string
	}{
		{
			name: "message with string sender",
			raw:  `{"message":"hello","sender_id":"42"}`,
			want: MessageEvent{SenderID: "42", Body: "hello"},
		},
		{
			name: "message with numeric sender",
			raw:  `{"message":"hello","sender_id":42}`,
			want: MessageEvent{SenderID: "42", Body: "hello"},
		},
		{
			name: "missing sender keeps the message",
			raw:  `{"message":"hello"}`,
			want: MessageEvent{SenderID: "", Body: "hello"},
		},
		{
			name: "missing message",
			raw:  `{"sender_id":"42"}`,
			want: MalformedFrameEvent{Raw: `{"sender_id":"42"}`},
		},
		{
			name: "empty message",
			raw:  `{"message":"","sender_id":"42"}`,
			want: MalformedFrameEvent{Raw: `{"message":"","sender_id":"42"}`},
		},
		{
			name: "not json",
			raw:  `ping`,
			want: MalformedFrameEvent{Raw: `ping`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeFrame(PurposeChat, []byte(tt.raw)))
		})
	}
}

func TestDecodeNotificationFrame(t *testing.T) {
	tests := []struct {
		want Event
		name string
		raw  string
	}{
		{
			name: "numeric id",
			raw:  `{"id":7,"message":"Assignment graded"}`,
			want: NotificationEvent{ID: 7, Body: "Assignment graded"},
		},
		{
			name: "string id",
			raw:  `{"id":"7","message":"Assignment graded"}`,
			want: NotificationEvent{ID: 7, Body: "Assignment graded"},
		},
		{
			name: "missing id",
			raw:  `{"message":"Assignment graded"}`,
			want: MalformedFrameEvent{Raw: `{"message":"Assignment graded"}`},
		},
		{
			name: "missing message",
			raw:  `{"id":7}`,
			want: MalformedFrameEvent{Raw: `{"id":7}`},
		},
		{
			name: "not json",
			raw:  `[]`,
			want: MalformedFrameEvent{Raw: `[]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeFrame(PurposeNotifications, []byte(tt.raw)))
		})
	}
}

func TestDecodeIdentifier(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string", raw: `"42"`, want: "42"},
		{name: "number", raw: `42`, want: "42"},
		{name: "empty", raw: ``, want: ""},
		{name: "object", raw: `{"id":1}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeIdentifier([]byte(tt.raw)))
		})
	}
}
