package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed JWT session token for an analyst account.
//
// The embedded [jwt.Token] carries the parsed token for signing and claim
// inspection, and [jwt.RegisteredClaims] exposes the standard RFC 7519 claim
// set. Neither is serialized to JSON: clients only ever see the compact
// string form.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature) sent
	// to clients in the Authorization header.
	SignedString string `json:"-"`

	// UserID caches the analyst identifier parsed from the "sub" claim so
	// request handling does not re-parse it.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64 analyst identifier.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
