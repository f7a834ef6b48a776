package groups_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/kitty/pkg/groupsdk"
)

// TestGroupLifecycle walks a group from creation to deletion through the
// code-join path and role changes.
func TestGroupLifecycle(t *testing.T) {
	baseURL, cleanup := setupGroupsContainer(t)
	defer cleanup()

	ctx := t.Context()
	alice := newUser(t, baseURL, "user-alice", "Alice")
	bob := newUser(t, baseURL, "user-bob", "Bob")

	g := createGroup(t, alice, "Roommates")
	require.Len(t, g.Members, 1)
	require.Equal(t, "admin", g.Members[0].Role)

	joined, err := bob.JoinGroup(ctx, " "+g.InviteCode+" ")
	require.NoError(t, err)
	require.True(t, joined.Joined)

	rejoin, err := bob.JoinGroup(ctx, g.InviteCode)
	require.NoError(t, err)
	require.False(t, rejoin.Joined, "second join is a no-op")

	err = bob.RemoveMember(ctx, g.ID, "user-alice")
	assertAPIError(t, err, http.StatusForbidden, groupsdk.ErrorCodeForbidden)

	err = alice.LeaveGroup(ctx, g.ID)
	assertAPIError(t, err, http.StatusConflict, groupsdk.ErrorCodeConflict)

	promoted, err := alice.ToggleAdmin(ctx, g.ID, "user-bob")
	require.NoError(t, err)
	require.Equal(t, "admin", promoted.Role)

	require.NoError(t, alice.LeaveGroup(ctx, g.ID))

	groups, err := alice.ListGroups(ctx)
	require.NoError(t, err)
	require.Empty(t, groups.Groups)

	code, err := bob.RegenerateCode(ctx, g.ID)
	require.NoError(t, err)

	_, err = alice.JoinGroup(ctx, g.InviteCode)
	assertAPIError(t, err, http.StatusNotFound, groupsdk.ErrorCodeNotFound)

	_, err = alice.JoinGroup(ctx, code.InviteCode)
	require.NoError(t, err)

	detail, err := bob.GetGroup(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, detail.Members, 2)

	require.NoError(t, bob.DeleteGroup(ctx, g.ID))

	_, err = alice.GetGroup(ctx, g.ID)
	assertAPIError(t, err, http.StatusNotFound, groupsdk.ErrorCodeNotFound)
}
