package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims are the claims carried by bearer tokens issued by the external auth service.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}

// UserSubject returns the user id, falling back to the registered subject claim.
func (c *AccessClaims) UserSubject() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.RegisteredClaims.Subject
}
