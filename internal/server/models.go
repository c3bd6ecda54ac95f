package server

// AuthSignupRequest is the signup payload, accepted as JSON or form data.
// ConfirmPassword never leaves the process.
type AuthSignupRequest struct {
	FullName        string `json:"full_name" form:"full_name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// AuthLoginRequest is the login payload.
type AuthLoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AuthResponse is returned for JSON clients on successful signup or login.
type AuthResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// HTTPError is the JSON error envelope produced by the error handler.
type HTTPError struct {
	Error string `json:"error"`
}
