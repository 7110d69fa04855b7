// Package token implements the signed identity tokens used by the gallery
// API. Tokens are self-contained HMAC-SHA256 JWTs carrying the account ID as
// the subject and an is_admin claim; no server-side session state exists.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in every issued token.
type Claims struct {
	// IsAdmin marks tokens issued to administrator accounts.
	IsAdmin bool `json:"is_admin"`

	jwt.RegisteredClaims
}

// UserID extracts the account identifier from the "sub" claim and parses it
// as a base-10 int64.
func (c *Claims) UserID() (int64, error) {
	if c.Subject == "" {
		return 0, errors.New("empty subject in token claims")
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to int64: %w", err)
	}

	return id, nil
}

// Codec issues and verifies signed tokens. All state is read-only after
// construction, so a single Codec is safe for concurrent use.
type Codec struct {
	signKey []byte
	issuer  string
}

// NewCodec constructs a Codec signing with signKey and stamping issuer into
// the "iss" claim of every token.
func NewCodec(signKey, issuer string) *Codec {
	return &Codec{
		signKey: []byte(signKey),
		issuer:  issuer,
	}
}

// Issue creates a signed HMAC-SHA256 token for the given account.
//
// The token carries the standard iss/sub/iat/exp claims plus is_admin.
// Returns ErrInvalidParams if the codec has no sign key or ttl is not
// positive.
func (c *Codec) Issue(userID int64, isAdmin bool, ttl time.Duration) (string, error) {
	if len(c.signKey) == 0 || ttl <= 0 {
		return "", ErrInvalidParams
	}

	now := time.Now()
	claims := &Claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a compact token string and returns its claims.
//
// Checks run in order: structural validity, signature integrity, expiry.
// The first failure wins and maps to exactly one of the package sentinel
// errors, so callers can switch on [errors.Is]:
//   - ErrTokenMalformed       — the string is not a decodable token.
//   - ErrTokenSignatureInvalid — signature mismatch or wrong algorithm.
//   - ErrTokenExpired         — signature is valid but the token has expired.
//
// Claims are only ever returned after every check passed.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignatureInvalid
		}
		return c.signKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(c.issuer))

	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		// issuer mismatch, not-before and every other validation failure
		// counts as an invalid token, not a distinguishable condition
		return nil, ErrTokenSignatureInvalid
	}
}
