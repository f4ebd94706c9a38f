package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return raw
}

func TestDecoder_ExpiresAt(t *testing.T) {
	d := NewDecoder()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	raw := sign(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, ok, err := d.ExpiresAt(raw)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestDecoder_ExpiresAt_NoExp(t *testing.T) {
	d := NewDecoder()
	raw := sign(t, jwt.MapClaims{"sub": "42"})

	_, ok, err := d.ExpiresAt(raw)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, d.Expired(raw, time.Now()))
}

func TestDecoder_IgnoresSignature(t *testing.T) {
	d := NewDecoder()
	raw := sign(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))})

	// A token signed by an unknown key still decodes.
	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	assert.False(t, d.Expired(raw, time.Now()))
	assert.False(t, d.Expired(other, time.Now()))
}

func TestDecoder_Expired(t *testing.T) {
	d := NewDecoder()
	now := time.Now()

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{
			name: "future exp",
			raw:  sign(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}),
			want: false,
		},
		{
			name: "past exp",
			raw:  sign(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour))}),
			want: true,
		},
		{
			name: "two segments",
			raw:  "header.payload",
			want: true,
		},
		{
			name: "garbage payload",
			raw:  "eyJhbGciOiJIUzI1NiJ9.!!!.sig",
			want: true,
		},
		{
			name: "non numeric exp",
			raw:  "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte(`{"exp":"soon"}`)) + ".sig",
			want: true,
		},
		{
			name: "empty",
			raw:  "",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Expired(tt.raw, now))
		})
	}
}
