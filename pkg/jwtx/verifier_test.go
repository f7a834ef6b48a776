package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testClaims(sub string) *Claims {
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "bartab-auth",
			Subject:   sub,
			Audience:  jwt.ClaimStrings{"kitty-groups"},
			IssuedAt:  jwt.NewNumericDate(testNow),
			NotBefore: jwt.NewNumericDate(testNow),
			ExpiresAt: jwt.NewNumericDate(testNow.Add(15 * time.Minute)),
		},
		Scopes:        []string{"groups:read", "groups:write"},
		Username:      "alice",
		PreferredName: "Alice",
	}
}

func signEdDSA(t *testing.T, kid string, priv ed25519.PrivateKey, c *Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, c)
	tok.Header["kid"] = kid
	s, err := tok.SignedString(priv)
	require.NoError(t, err)
	return s
}

func newEdKeySet(t *testing.T, kid string) (*KeySet, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keys := NewKeySet()
	require.NoError(t, keys.ResetFromJWKS(JWKS{Keys: []JWK{NewEd25519JWK(kid, pub)}}))
	return keys, priv
}

func TestKeySetVerifier_EdDSA(t *testing.T) {
	keys, priv := newEdKeySet(t, "k1")
	v := NewVerifier(keys, VerifyOptions{
		Issuer:   "bartab-auth",
		Audience: []string{"kitty-groups"},
		Now:      func() time.Time { return testNow.Add(time.Minute) },
	})

	t.Run("valid token", func(t *testing.T) {
		claims, err := v.Verify(signEdDSA(t, "k1", priv, testClaims("user-1")))
		require.NoError(t, err)
		require.Equal(t, "user-1", claims.Subject)
		require.Equal(t, "Alice", claims.DisplayName())
		require.True(t, claims.HasScope("groups:write"))
	})

	t.Run("unknown kid", func(t *testing.T) {
		_, err := v.Verify(signEdDSA(t, "k2", priv, testClaims("user-1")))
		require.ErrorIs(t, err, ErrUnknownKID)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := testClaims("user-1")
		c.Issuer = "someone-else"
		_, err := v.Verify(signEdDSA(t, "k1", priv, c))
		require.ErrorIs(t, err, ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := testClaims("user-1")
		c.Audience = jwt.ClaimStrings{"chat"}
		_, err := v.Verify(signEdDSA(t, "k1", priv, c))
		require.ErrorIs(t, err, ErrAudience)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := v.Verify(signEdDSA(t, "k1", priv, testClaims("")))
		require.ErrorIs(t, err, ErrInvalidClaim)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := v.Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestKeySetVerifier_Expiry(t *testing.T) {
	keys, priv := newEdKeySet(t, "k1")
	token := signEdDSA(t, "k1", priv, testClaims("user-1"))

	late := NewVerifier(keys, VerifyOptions{Now: func() time.Time { return testNow.Add(time.Hour) }})
	_, err := late.Verify(token)
	require.ErrorIs(t, err, ErrExpired)

	early := NewVerifier(keys, VerifyOptions{Now: func() time.Time { return testNow.Add(-time.Hour) }})
	_, err = early.Verify(token)
	require.ErrorIs(t, err, ErrNotYetValid)

	skewed := NewVerifier(keys, VerifyOptions{
		Leeway: 2 * time.Minute,
		Now:    func() time.Time { return testNow.Add(16 * time.Minute) },
	})
	_, err = skewed.Verify(token)
	require.NoError(t, err)
}

func TestKeySetVerifier_RejectsAlgorithmForOtherKeyType(t *testing.T) {
	ecPriv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	_, edPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keys := NewKeySet()
	require.NoError(t, keys.ResetFromJWKS(JWKS{Keys: []JWK{NewES256JWK("ec", &ecPriv.PublicKey)}}))
	v := NewVerifier(keys, VerifyOptions{Now: func() time.Time { return testNow }})

	// EdDSA-signed token claiming the EC key id.
	_, err = v.Verify(signEdDSA(t, "ec", edPriv, testClaims("user-1")))
	require.ErrorIs(t, err, ErrAlgMismatch)

	tok := jwt.NewWithClaims(jwt.SigningMethodES256, testClaims("user-2"))
	tok.Header["kid"] = "ec"
	signed, err := tok.SignedString(ecPriv)
	require.NoError(t, err)

	claims, err := v.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "user-2", claims.Subject)
}
