package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AUTH_JWKS_URL", "http://auth:8080/.well-known/jwks.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "groups.db", cfg.DatabaseFile)
	require.Equal(t, 168*time.Hour, cfg.InviteTTL)
	require.Equal(t, 8, cfg.CodeLength)
	require.Equal(t, "bartab-auth", cfg.Issuer)
	require.Equal(t, 15*time.Minute, cfg.JWKSRefreshInterval)
	require.Empty(t, cfg.WebhookURL)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("AUTH_JWKS_JSON", `{"keys":[]}`)
	t.Setenv("AUTH_AUDIENCE", "kitty,kitty-web")
	t.Setenv("GROUPS_INVITE_TTL", "48h")
	t.Setenv("GROUPS_CODE_LENGTH", "10")
	t.Setenv("GROUPS_NOTIFY_WEBHOOK_URL", "https://mailer.internal/invites")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, []string{"kitty", "kitty-web"}, cfg.Audience)
	require.Equal(t, 48*time.Hour, cfg.InviteTTL)
	require.Equal(t, 10, cfg.CodeLength)
	require.Equal(t, "https://mailer.internal/invites", cfg.WebhookURL)
	require.Equal(t, 9090, cfg.Port)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Run("no key source", func(t *testing.T) {
		t.Setenv("AUTH_JWKS_URL", "")
		t.Setenv("AUTH_JWKS_JSON", "")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "AUTH_JWKS_URL")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("AUTH_JWKS_URL", "http://auth/jwks")
		t.Setenv("GROUPS_INVITE_TTL", "soon")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "parse env")
	})

	t.Run("short codes", func(t *testing.T) {
		t.Setenv("AUTH_JWKS_URL", "http://auth/jwks")
		t.Setenv("GROUPS_CODE_LENGTH", "4")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "GROUPS_CODE_LENGTH")
	})
}
