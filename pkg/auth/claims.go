package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/logixport/logixport-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID uint
	Role   enums.Role
	Email  string
}

// AccessTokenClaims represents the typed JWT issued to clients. The subject
// identifier rides in the registered "sub" claim as the decimal user ID.
type AccessTokenClaims struct {
	Role  enums.Role `json:"role"`
	Email string     `json:"email"`
	jwt.RegisteredClaims
}
