package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJWK_PublicKey_Ed25519(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	jwk := NewEd25519JWK("ed-1", pub)
	require.Equal(t, "OKP", jwk.Kty)
	require.Equal(t, "EdDSA", jwk.Alg)

	parsed, err := jwk.PublicKey()
	require.NoError(t, err)
	require.Equal(t, pub, parsed)
}

func TestJWK_PublicKey_ES256(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	jwk := NewES256JWK("ec-1", &priv.PublicKey)
	require.Equal(t, "P-256", jwk.Crv)

	// Coordinates are always the full 32 bytes.
	xb, err := base64.RawURLEncoding.DecodeString(jwk.X)
	require.NoError(t, err)
	require.Len(t, xb, 32)

	parsed, err := jwk.PublicKey()
	require.NoError(t, err)
	ecPub, ok := parsed.(*ecdsa.PublicKey)
	require.True(t, ok)
	require.True(t, priv.PublicKey.Equal(ecPub))
}

func TestJWK_PublicKey_RSA(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	jwk := JWK{
		Kty: "RSA",
		Alg: "RS256",
		Kid: "rsa-1",
		N:   base64.RawURLEncoding.EncodeToString(priv.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(priv.E)).Bytes()),
	}

	parsed, err := jwk.PublicKey()
	require.NoError(t, err)
	rsaPub, ok := parsed.(*rsa.PublicKey)
	require.True(t, ok)
	require.True(t, priv.PublicKey.Equal(rsaPub))
}

func TestJWK_PublicKey_Rejects(t *testing.T) {
	cases := map[string]JWK{
		"unsupported kty":   {Kty: "oct"},
		"unsupported curve": {Kty: "OKP", Crv: "X25519", X: "AAAA"},
		"short ed25519":     {Kty: "OKP", Crv: "Ed25519", X: base64.RawURLEncoding.EncodeToString([]byte("short"))},
		"invalid base64":    {Kty: "RSA", N: "!!!", E: "AQAB"},
	}
	for name, jwk := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := jwk.PublicKey()
			require.Error(t, err)
		})
	}
}

func TestKeySet_ResetFromJWKS(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	ks := NewKeySet()
	require.False(t, ks.IsReady())

	require.NoError(t, ks.ResetFromJWKS(JWKS{Keys: []JWK{NewEd25519JWK("ed-1", pub)}}))
	require.True(t, ks.IsReady())

	_, err = ks.Get("ed-1")
	require.NoError(t, err)
	_, err = ks.Get("missing")
	require.ErrorIs(t, err, ErrNoKey)

	// A bad document leaves the loaded keys in place.
	err = ks.ResetFromJWKS(JWKS{Keys: []JWK{{Kty: "oct", Kid: "bad"}}})
	require.Error(t, err)
	_, err = ks.Get("ed-1")
	require.NoError(t, err)

	raw, err := json.Marshal(ks.Snapshot())
	require.NoError(t, err)
	require.Contains(t, string(raw), `"kid":"ed-1"`)
}
