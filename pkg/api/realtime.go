package api

// ChatFrame is the JSON text frame exchanged on the chat socket.
// Inbound frames may lack sender_id; the message field is required.
type ChatFrame struct {
	Message  string `json:"message"`
	SenderID string `json:"sender_id,omitempty"`
}

// NotificationFrame is the JSON text frame pushed on the notifications socket
type NotificationFrame struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
