package auth_test

import (
	"testing"
	"time"

	"milan/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestJWTParser_Parse(t *testing.T) {
	valid := jwt.MapClaims{
		"sub": "owner@milan",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	expired := jwt.MapClaims{
		"sub": "owner@milan",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}

	t.Run("verified_token", func(t *testing.T) {
		p := auth.NewJWTParser("s3cret")
		s, err := p.Parse(signToken(t, "s3cret", valid))
		require.NoError(t, err)
		assert.Equal(t, "owner@milan", s.Subject)
		assert.True(t, s.IsAuthenticated(time.Now()))
	})

	t.Run("wrong_secret", func(t *testing.T) {
		p := auth.NewJWTParser("s3cret")
		_, err := p.Parse(signToken(t, "other", valid))
		assert.Error(t, err)
	})

	t.Run("expired_verified", func(t *testing.T) {
		p := auth.NewJWTParser("s3cret")
		_, err := p.Parse(signToken(t, "s3cret", expired))
		assert.ErrorIs(t, err, auth.ErrExpired)
	})

	t.Run("unverified_reads_claims", func(t *testing.T) {
		p := auth.NewJWTParser("")
		s, err := p.Parse(signToken(t, "whatever", valid))
		require.NoError(t, err)
		assert.Equal(t, "owner@milan", s.Subject)
	})

	t.Run("unverified_still_honours_expiry", func(t *testing.T) {
		p := auth.NewJWTParser("")
		_, err := p.Parse(signToken(t, "whatever", expired))
		assert.ErrorIs(t, err, auth.ErrExpired)
	})

	t.Run("missing_token", func(t *testing.T) {
		_, err := auth.NewJWTParser("").Parse("")
		assert.ErrorIs(t, err, auth.ErrNoToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := auth.NewJWTParser("").Parse("not-a-jwt")
		assert.Error(t, err)
	})
}

func TestSession_IsAuthenticated(t *testing.T) {
	now := time.Now()

	var nilSession *auth.Session
	assert.False(t, nilSession.IsAuthenticated(now))
	assert.False(t, (&auth.Session{}).IsAuthenticated(now))
	assert.True(t, (&auth.Session{Token: "t"}).IsAuthenticated(now))
	assert.False(t, (&auth.Session{Token: "t", ExpiresAt: now.Add(-time.Second)}).IsAuthenticated(now))
}
