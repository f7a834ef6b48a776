package jwtx_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/kitty/pkg/jwtx"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "bartab-auth",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("bartab-auth"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("someone-else")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience: []string{"kitty", "chat"},
		},
	}

	t.Run("contains match", func(t *testing.T) {
		require.NoError(t, c.ValidateAudience([]string{"kitty"}))
	})

	t.Run("any of several", func(t *testing.T) {
		require.NoError(t, c.ValidateAudience([]string{"media", "chat"}))
	})

	t.Run("no match", func(t *testing.T) {
		err := c.ValidateAudience([]string{"admin"})
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("empty expected list", func(t *testing.T) {
		require.NoError(t, c.ValidateAudience(nil))
	})
}

func TestValidateExpiryWithLeeway(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	claims := func(exp, nbf time.Time) *jwtx.Claims {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}
		if !exp.IsZero() {
			c.ExpiresAt = jwt.NewNumericDate(exp)
		}
		if !nbf.IsZero() {
			c.NotBefore = jwt.NewNumericDate(nbf)
		}
		return c
	}

	t.Run("valid token", func(t *testing.T) {
		require.NoError(t, claims(now.Add(time.Minute), time.Time{}).ValidateExpiryWithLeeway(now, 0))
	})

	t.Run("expired token", func(t *testing.T) {
		err := claims(now.Add(-time.Minute), time.Time{}).ValidateExpiryWithLeeway(now, 0)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("expired within leeway", func(t *testing.T) {
		require.NoError(t, claims(now.Add(-10*time.Second), time.Time{}).ValidateExpiryWithLeeway(now, 30*time.Second))
	})

	t.Run("not yet valid", func(t *testing.T) {
		err := claims(time.Time{}, now.Add(time.Minute)).ValidateExpiryWithLeeway(now, 0)
		require.ErrorIs(t, err, jwtx.ErrNotYetValid)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := claims(now.Add(time.Minute), time.Time{})
		c.Subject = ""
		require.ErrorIs(t, c.ValidateExpiryWithLeeway(now, 0), jwtx.ErrInvalidClaim)
	})
}

func TestDisplayNameFallbacks(t *testing.T) {
	c := jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}
	require.Equal(t, "user-1", c.DisplayName())

	c.Username = "alice"
	require.Equal(t, "alice", c.DisplayName())

	c.PreferredName = "Alice"
	require.Equal(t, "Alice", c.DisplayName())
}

func TestHasScope(t *testing.T) {
	c := jwtx.Claims{Scopes: []string{"groups:read"}}
	require.True(t, c.HasScope("groups:read"))
	require.False(t, c.HasScope("groups:write"))
}
