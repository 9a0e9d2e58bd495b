package auth

import (
	"github.com/logixport/logixport-backend/internal/users"
)

// LoginRequest is the JSON login payload.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// LoginResponse carries the minted token and the user summary.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int64          `json:"expires_in"`
	User        *users.UserDTO `json:"user"`
}

// VerifyResponse acknowledges a still-valid token.
type VerifyResponse struct {
	Valid  bool `json:"valid"`
	UserID uint `json:"user_id"`
}

// RegisterRequest contains the payload for self-service signup.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Username *string `json:"username,omitempty"`
	Password string  `json:"password" validate:"required,min=8"`
	Company  *string `json:"company,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}
