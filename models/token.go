package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessAction is the class of operations an access token unlocks.
type AccessAction string

const (
	AccessView AccessAction = "view"
	AccessEdit AccessAction = "edit"
)

// Valid reports whether a is a known action.
func (a AccessAction) Valid() bool {
	return a == AccessView || a == AccessEdit
}

// Allows reports whether a token issued for a permits required.
// An edit token also grants view access.
func (a AccessAction) Allows(required AccessAction) bool {
	if a == AccessEdit {
		return required == AccessView || required == AccessEdit
	}
	return a == required
}

// AccessClaims is the claim set of a list access token.
//
// The "sub" claim holds the list identifier the token is bound to, so a token
// verified for one list is rejected by every other list.
type AccessClaims struct {
	jwt.RegisteredClaims

	// Action is the class of operations the token permits.
	Action AccessAction `json:"action"`
}

// ListID returns the list the token is bound to.
func (c *AccessClaims) ListID() string {
	return c.Subject
}

// AccessToken is a signed list access token as held by the client.
type AccessToken struct {
	ListID    string
	Action    AccessAction
	Token     string
	ExpiresAt time.Time
}

// VerifyPasswordRequest exchanges a list password for an access token.
type VerifyPasswordRequest struct {
	Password string       `json:"password"`
	Action   AccessAction `json:"action"`
}

// VerifyPasswordResponse carries the access token on success.
type VerifyPasswordResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}
