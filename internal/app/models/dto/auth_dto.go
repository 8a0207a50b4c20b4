package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token plus the authenticated identity.
// StudentID is only present for STUDENT users with a linked student record.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int64  `json:"expiresIn"`
	Email     string `json:"email"`
	Role      string `json:"role" example:"STUDENT"`
	StudentID string `json:"studentId,omitempty" example:"STU001"`
}

// ValidateTokenRequest represents a token validation request
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// ValidateTokenResponse reports whether the token is valid for the email
type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
}
