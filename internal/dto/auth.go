package dto

// LoginRequest holds the submitted credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token issued on success.
type LoginResponse struct {
	Token         string `json:"token"`
	SessionID     string `json:"sessionId"`
	Authenticated bool   `json:"authenticated"`
}

// SessionStatus reports whether the caller holds a live session.
type SessionStatus struct {
	Authenticated bool `json:"authenticated"`
}
