package groups_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/kitty/pkg/groupsdk"
)

// TestTokenVerification checks that only valid tokens from the trusted
// issuer reach the handlers.
func TestTokenVerification(t *testing.T) {
	baseURL, cleanup := setupGroupsContainer(t)
	defer cleanup()

	ctx := t.Context()

	t.Run("missing token", func(t *testing.T) {
		_, err := groupsdk.NewClient(baseURL, "").ListGroups(ctx)
		assertAPIError(t, err, http.StatusUnauthorized, groupsdk.ErrorCodeInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := groupsdk.NewClient(baseURL, "not.a.jwt").ListGroups(ctx)
		assertAPIError(t, err, http.StatusUnauthorized, groupsdk.ErrorCodeInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := mintToken(t, "user-x", "X", -time.Hour, userScopes...)
		_, err := groupsdk.NewClient(baseURL, tok).ListGroups(ctx)
		assertAPIError(t, err, http.StatusUnauthorized, groupsdk.ErrorCodeInvalidToken)
	})

	t.Run("read-only scope", func(t *testing.T) {
		tok := mintToken(t, "user-r", "Reader", time.Hour, "groups:read")
		reader := groupsdk.NewClient(baseURL, tok)

		_, err := reader.ListGroups(ctx)
		require.NoError(t, err)

		_, err = reader.CreateGroup(ctx, groupsdk.CreateGroupRequest{Name: "Nope"})
		assertAPIError(t, err, http.StatusForbidden, groupsdk.ErrorCodeInsufficientScope)
	})
}

// TestJoinByCodeIsRateLimited verifies code guessing is throttled with the
// default strict profile.
func TestJoinByCodeIsRateLimited(t *testing.T) {
	baseURL, cleanup := setupGroupsContainerWithDefaultRateLimits(t)
	defer cleanup()

	ctx := t.Context()
	mallory := newUser(t, baseURL, "user-mallory", "Mallory")

	var limited bool
	for range 20 {
		_, err := mallory.JoinGroup(ctx, "ZZZZZZZZ")
		require.Error(t, err)
		if apiErr, ok := err.(*groupsdk.APIError); ok && apiErr.StatusCode == http.StatusTooManyRequests {
			require.Equal(t, groupsdk.ErrorCodeRateLimited, apiErr.Code)
			limited = true
			break
		}
		assertAPIError(t, err, http.StatusNotFound, groupsdk.ErrorCodeNotFound)
	}
	require.True(t, limited, "expected join attempts to be rate limited")
}
