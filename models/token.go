package models

// Token is an issued identity token in its transport form.
//
// SignedString is the compact JWS serialization (base64url-encoded
// header.payload.signature) ready to be sent in the Authorization header.
// UserID and IsAdmin are cached copies of the corresponding claims so that
// callers holding a Token never need to re-parse the signed string.
type Token struct {
	SignedString string `json:"token"`
	UserID       int64  `json:"-"`
	IsAdmin      bool   `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
