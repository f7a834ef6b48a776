package jwtx

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/kitty/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestKeySetRefresher_Refresh(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JWK{NewEd25519JWK("k1", pub)}})
	}))
	t.Cleanup(srv.Close)

	keys := NewKeySet()
	r := NewKeySetRefresher(keys, srv.URL, time.Hour, slogx.Discard())

	require.False(t, keys.IsReady())
	require.NoError(t, r.Refresh(context.Background()))
	require.True(t, keys.IsReady())
	require.EqualValues(t, 1, hits.Load())

	got, err := keys.Get("k1")
	require.NoError(t, err)
	require.Equal(t, pub, got)
}

func TestKeySetRefresher_KeepsKeysOnFailure(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keys := NewKeySet()
	require.NoError(t, keys.ResetFromJWKS(JWKS{Keys: []JWK{NewEd25519JWK("k1", pub)}}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	r := NewKeySetRefresher(keys, srv.URL, time.Hour, slogx.Discard())
	require.Error(t, r.Refresh(context.Background()))
	require.True(t, keys.IsReady())
}

func TestKeySetRefresher_StartStop(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JWK{NewEd25519JWK("k1", pub)}})
	}))
	t.Cleanup(srv.Close)

	keys := NewKeySet()
	r := NewKeySetRefresher(keys, srv.URL, 10*time.Millisecond, slogx.Discard())
	require.NoError(t, r.Start(context.Background()))
	time.Sleep(30 * time.Millisecond)
	r.Stop()
	require.True(t, keys.IsReady())
}

func TestLoadJWKSJSON(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	raw, err := json.Marshal(JWKS{Keys: []JWK{NewEd25519JWK("inline", pub)}})
	require.NoError(t, err)

	keys := NewKeySet()
	require.NoError(t, LoadJWKSJSON(keys, string(raw)))
	_, err = keys.Get("inline")
	require.NoError(t, err)

	require.Error(t, LoadJWKSJSON(NewKeySet(), `{"keys":[{"kty":"OKP","crv":"X448","kid":"x"}]}`))
}
