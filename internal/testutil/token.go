package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// MakeToken issues an HS256 token expiring at exp, signed with a key the
// storefront never sees.
func MakeToken(t *testing.T, subject string, exp time.Time) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	return raw
}
