package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleParticipant = "participant"
	RoleAdmin       = "admin"
)

// JWTClaims represents the structure of the session token claims. Subject
// is the participant id and ID the revocable token id.
type JWTClaims struct {
	Email              string `json:"email"`
	Name               string `json:"name,omitempty"`
	Role               string `json:"role"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	MustChangePassword bool   `json:"must_change_password"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token belongs to a contest organizer
func (c *JWTClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
