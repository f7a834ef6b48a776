package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/aussiebroadwan/kitty/internal/groups/store"
	"github.com/aussiebroadwan/kitty/pkg/cryptox"
	"github.com/aussiebroadwan/kitty/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(DSN(filepath.Join(t.TempDir(), "groups.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedGroup(t *testing.T, s store.Store, code, creator string) domain.Group {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	g := domain.Group{
		ID:         idx.New().String(),
		Name:       "Roommates",
		InviteCode: &code,
		CreatedBy:  creator,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, s.Groups().CreateGroup(ctx, g))
	require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
		ID:        idx.New().String(),
		GroupID:   g.ID,
		UserID:    creator,
		Role:      domain.RoleAdmin,
		JoinedAt:  now,
		UpdatedAt: now,
	}))
	return g
}

func newInvite(groupID, email, token string, expires time.Time) domain.Invite {
	now := time.Now().UTC()
	return domain.Invite{
		ID:          idx.New().String(),
		GroupID:     groupID,
		Email:       email,
		TokenHash:   cryptox.FingerprintToken(token),
		Status:      domain.InviteStatusPending,
		InvitedBy:   "u1",
		InviterName: "Una",
		InvitedAt:   now,
		ExpiresAt:   expires,
		UpdatedAt:   now,
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestGroups(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	g := seedGroup(t, s, "ABCD2345", "u1")

	t.Run("lookup by id and code", func(t *testing.T) {
		got, err := s.Groups().GetGroupByID(ctx, g.ID)
		require.NoError(t, err)
		require.Equal(t, "Roommates", got.Name)
		require.NotNil(t, got.InviteCode)
		require.Equal(t, "ABCD2345", *got.InviteCode)

		got, err = s.Groups().GetGroupByInviteCode(ctx, "ABCD2345")
		require.NoError(t, err)
		require.Equal(t, g.ID, got.ID)

		_, err = s.Groups().GetGroupByInviteCode(ctx, "ZZZZ9999")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		code := "ABCD2345"
		now := time.Now().UTC()
		err := s.Groups().CreateGroup(ctx, domain.Group{
			ID:         idx.New().String(),
			Name:       "Family",
			InviteCode: &code,
			CreatedBy:  "u2",
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("rename and rotate code", func(t *testing.T) {
		now := time.Now().UTC()
		require.NoError(t, s.Groups().UpdateGroupName(ctx, g.ID, "Flatmates", now))
		require.NoError(t, s.Groups().UpdateInviteCode(ctx, g.ID, "WXYZ6789", now))

		_, err := s.Groups().GetGroupByInviteCode(ctx, "ABCD2345")
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := s.Groups().GetGroupByInviteCode(ctx, "WXYZ6789")
		require.NoError(t, err)
		require.Equal(t, "Flatmates", got.Name)

		err = s.Groups().UpdateGroupName(ctx, idx.New().String(), "Nope", now)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list by user", func(t *testing.T) {
		seedGroup(t, s, "QRST3456", "u1")
		seedGroup(t, s, "MNPQ4567", "u9")

		groups, err := s.Groups().ListGroupsByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, groups, 2)

		groups, err = s.Groups().ListGroupsByUser(ctx, "nobody")
		require.NoError(t, err)
		require.Empty(t, groups)
	})
}

func TestMemberships(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	g := seedGroup(t, s, "ABCD2345", "u1")

	now := time.Now().UTC()
	member := domain.Membership{
		ID:        idx.New().String(),
		GroupID:   g.ID,
		UserID:    "u2",
		Role:      domain.RoleMember,
		JoinedAt:  now,
		UpdatedAt: now,
	}

	require.NoError(t, s.Memberships().CreateMembership(ctx, member))

	t.Run("one membership per user", func(t *testing.T) {
		dup := member
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Memberships().CreateMembership(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("count admins tracks role changes", func(t *testing.T) {
		n, err := s.Memberships().CountAdmins(ctx, g.ID)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		require.NoError(t, s.Memberships().UpdateRole(ctx, g.ID, "u2", domain.RoleAdmin, now))
		n, err = s.Memberships().CountAdmins(ctx, g.ID)
		require.NoError(t, err)
		require.Equal(t, 2, n)

		m, err := s.Memberships().GetMembership(ctx, g.ID, "u2")
		require.NoError(t, err)
		require.True(t, m.IsAdmin())
	})

	t.Run("join with current code only", func(t *testing.T) {
		m := domain.Membership{
			ID:        idx.New().String(),
			GroupID:   g.ID,
			UserID:    "u3",
			Role:      domain.RoleMember,
			JoinedAt:  now,
			UpdatedAt: now,
		}
		require.ErrorIs(t, s.Memberships().CreateMembershipWithCode(ctx, m, "OLDC0DE1"), store.ErrStale)
		require.NoError(t, s.Memberships().CreateMembershipWithCode(ctx, m, "ABCD2345"))

		members, err := s.Memberships().ListMembershipsByGroup(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, members, 3)
		require.Equal(t, "u1", members[0].UserID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Memberships().DeleteMembership(ctx, g.ID, "u3"))
		require.ErrorIs(t, s.Memberships().DeleteMembership(ctx, g.ID, "u3"), store.ErrNotFound)

		_, err := s.Memberships().GetMembership(ctx, g.ID, "u3")
		require.ErrorIs(t, err, store.ErrNotFound)

		members, err := s.Memberships().ListMembershipsByGroup(ctx, g.ID)
		require.NoError(t, err)
		for _, m := range members {
			require.NotEqual(t, "u3", m.UserID)
		}
	})
}

func TestInvites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	g := seedGroup(t, s, "ABCD2345", "u1")

	inv := newInvite(g.ID, "a@x.com", "token-1", time.Now().UTC().Add(time.Hour))
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	t.Run("unique per group and email", func(t *testing.T) {
		dup := newInvite(g.ID, "a@x.com", "token-2", time.Now().UTC().Add(time.Hour))
		require.ErrorIs(t, s.Invites().CreateInvite(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("lookups", func(t *testing.T) {
		got, err := s.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken("token-1"))
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
		require.Equal(t, domain.InviteStatusPending, got.Status)
		require.Nil(t, got.AcceptedAt)
		require.Equal(t, "Una", got.InviterName)

		got, err = s.Invites().GetInviteByGroupEmail(ctx, g.ID, "a@x.com")
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)

		_, err = s.Invites().GetInviteByID(ctx, idx.New().String(), inv.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("status compare and swap", func(t *testing.T) {
		now := time.Now().UTC()
		accept := store.InviteTransition{
			ID:          inv.ID,
			From:        domain.InviteStatusPending,
			To:          domain.InviteStatusAccepted,
			AcceptedAt:  &now,
			RespondedBy: "u2",
			Now:         now,
		}
		require.NoError(t, s.Invites().TransitionInviteStatus(ctx, accept))
		require.ErrorIs(t, s.Invites().TransitionInviteStatus(ctx, accept), store.ErrStale)

		got, err := s.Invites().GetInviteByID(ctx, g.ID, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusAccepted, got.Status)
		require.NotNil(t, got.AcceptedAt)
		require.Equal(t, "u2", got.RespondedBy)
	})

	t.Run("reissue resets to pending", func(t *testing.T) {
		re := inv
		re.TokenHash = cryptox.FingerprintToken("token-3")
		re.ExpiresAt = time.Now().UTC().Add(2 * time.Hour)
		re.UpdatedAt = time.Now().UTC()
		require.NoError(t, s.Invites().ReissueInvite(ctx, re))

		_, err := s.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken("token-1"))
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := s.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken("token-3"))
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusPending, got.Status)
		require.Nil(t, got.AcceptedAt)
		require.Empty(t, got.RespondedBy)
		require.WithinDuration(t, inv.InvitedAt, got.InvitedAt, time.Millisecond)
	})

	t.Run("list newest first", func(t *testing.T) {
		later := newInvite(g.ID, "b@x.com", "token-4", time.Now().UTC().Add(time.Hour))
		later.InvitedAt = inv.InvitedAt.Add(time.Second)
		require.NoError(t, s.Invites().CreateInvite(ctx, later))

		list, err := s.Invites().ListInvitesByGroup(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "b@x.com", list[0].Email)
	})
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	g := seedGroup(t, s, "ABCD2345", "u1")

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Invites().DeleteInvitesByGroup(ctx, g.ID))
		require.NoError(t, tx.Memberships().DeleteMembershipsByGroup(ctx, g.ID))
		require.NoError(t, tx.Groups().DeleteGroup(ctx, g.ID))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Groups().GetGroupByID(ctx, g.ID)
	require.NoError(t, err)

	n, err := s.Memberships().CountAdmins(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Tx(ctx)
		return err
	})
	require.Error(t, err, "nested transactions are refused")
}
