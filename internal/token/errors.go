package token

import "errors"

// Sentinel errors returned by [Codec.Verify] and [Codec.Issue]. Callers
// match against them with [errors.Is]; the HTTP layer maps all three verify
// failures to 401 with a single generic message so clients cannot
// distinguish a cryptographic failure from a structural one.
var (
	// ErrInvalidParams is returned by Issue when the codec is missing its
	// sign key or the requested ttl is not positive.
	ErrInvalidParams = errors.New("invalid params for issuing token")

	// ErrTokenMalformed is returned when the token string cannot be decoded
	// at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenSignatureInvalid is returned on any signature or algorithm
	// mismatch, and for validation failures that have no dedicated sentinel.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the signature verifies but the exp
	// claim is in the past.
	ErrTokenExpired = errors.New("token is expired")
)
