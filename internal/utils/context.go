// Package utils provides small helpers shared across the gallery API:
// type-safe context keys for the authenticated identity and JSON response
// writing.
package utils

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-72/models"
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

// TokenCtxKey is the key used to store the verified identity token in the
// request context. Only the auth middleware writes it, so a token found
// under this key has always passed verification.
var TokenCtxKey = contextKey("token")

// GetTokenFromContext retrieves the verified identity token from the
// context.
//
// Returns the token and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
