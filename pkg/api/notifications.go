package api

// Notification is a persisted notification from GET /api/notifications/notifications/
type Notification struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
