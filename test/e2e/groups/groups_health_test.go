package groups_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/kitty/pkg/groupsdk"
)

// TestHealthEndpoints verifies liveness and readiness with inline keys loaded.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupGroupsContainer(t)
	defer cleanup()

	client := groupsdk.NewClient(baseURL, "")

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	ready, err := client.GetReadiness(t.Context())
	assertHealthy(t, ready, err)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Keys)
}
