// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, list access token
// generation and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/shopman/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccessCtxKey is the key under which the verified access token claims of a
// request are stored. Requests without a (valid) bearer token carry nothing
// under this key.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AccessCtxKey, claims)
var AccessCtxKey = contextKey("access")

// GetAccessFromContext retrieves the verified access claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true : claims are present and have the expected type
//   - ok == false: no token was presented or the value has an unexpected type
func GetAccessFromContext(ctx context.Context) (*models.AccessClaims, bool) {
	claims, ok := ctx.Value(AccessCtxKey).(*models.AccessClaims)
	return claims, ok && claims != nil
}

// WithAccess returns a copy of ctx carrying claims.
func WithAccess(ctx context.Context, claims *models.AccessClaims) context.Context {
	return context.WithValue(ctx, AccessCtxKey, claims)
}
