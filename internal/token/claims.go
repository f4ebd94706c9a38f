package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Decoder reads bearer token claims without verifying the signature.
// The backend is the only party holding the signing secret, so the client side can
// inspect expiry but cannot establish authenticity.
type Decoder struct {
	parser *jwt.Parser
}

// NewDecoder creates a new claims decoder.
func NewDecoder() *Decoder {
	return &Decoder{parser: jwt.NewParser()}
}

// Claims decodes the payload segment of a three-part token.
func (d *Decoder) Claims(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return claims, nil
}

// ExpiresAt returns the exp claim. ok is false when the token carries no exp.
func (d *Decoder) ExpiresAt(raw string) (exp time.Time, ok bool, err error) {
	claims, err := d.Claims(raw)
	if err != nil {
		return time.Time{}, false, err
	}

	numeric, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read exp claim: %w", err)
	}
	if numeric == nil {
		return time.Time{}, false, nil
	}

	return numeric.Time, true, nil
}

// Expired reports whether the token expired before now.
// Decode failures count as expired.
func (d *Decoder) Expired(raw string, now time.Time) bool {
	exp, ok, err := d.ExpiresAt(raw)
	if err != nil {
		return true
	}
	if !ok {
		return false
	}
	return exp.Before(now)
}
