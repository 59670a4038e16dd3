package api

// LoginRequest represents a login attempt with platform credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the token pair issued on successful login
type LoginResponse struct {
	Access  string    `json:"access"`  // JWT access token
	Refresh string    `json:"refresh"` // refresh token
	User    LoginUser `json:"user"`
}

// LoginUser is the user summary embedded in the login response
type LoginUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// RegisterRequest represents a new account application.
// Accounts start unapproved; an admin approves them out of band.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	UserType  string `json:"user_type"` // "student" or "teacher"
}

// RegisterResponse represents the created account
type RegisterResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// RefreshRequest exchanges a refresh token for a new access token
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries the newly issued access token
type RefreshResponse struct {
	Access string `json:"access"`
}

// LogoutRequest asks the server to blacklist the refresh token
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// ErrorResponse is the error body the API returns on non-2xx responses
type ErrorResponse struct {
	Detail string `json:"detail"`
}
