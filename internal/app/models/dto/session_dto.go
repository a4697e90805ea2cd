package dto

// SessionResponse is returned when a calculator session starts
type SessionResponse struct {
	SessionID string `json:"sessionId" example:"6f1c2b0e-8a63-4f0e-9d55-0c7b8f0a1e22"`
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int    `json:"expiresIn" example:"43200"`
}
