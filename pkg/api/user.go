package api

// UserResponse is the user detail returned by GET /api/auth/user/{id}/
type UserResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	UserType   string `json:"user_type"`
	IsApproved bool   `json:"is_approved"`
}
