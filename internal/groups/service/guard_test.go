package service

import (
	"testing"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/stretchr/testify/require"
)

func TestGuardDecide(t *testing.T) {
	t.Parallel()

	admin := &domain.Membership{UserID: "u1", Role: domain.RoleAdmin}
	otherAdmin := &domain.Membership{UserID: "u3", Role: domain.RoleAdmin}
	member := &domain.Membership{UserID: "u2", Role: domain.RoleMember}

	tests := []struct {
		name string
		req  AuthzRequest
		st   AuthzState
		want error
	}{
		{
			name: "non member is forbidden",
			req:  AuthzRequest{CallerID: "u9", Action: domain.ActionView},
			st:   AuthzState{},
			want: ErrNotMember,
		},
		{
			name: "member may view",
			req:  AuthzRequest{CallerID: "u2", Action: domain.ActionView},
			st:   AuthzState{Caller: member},
		},
		{
			name: "member may not edit",
			req:  AuthzRequest{CallerID: "u2", Action: domain.ActionEdit},
			st:   AuthzState{Caller: member},
			want: ErrAdminRequired,
		},
		{
			name: "member may not send invites",
			req:  AuthzRequest{CallerID: "u2", Action: domain.ActionSendInvite},
			st:   AuthzState{Caller: member},
			want: ErrAdminRequired,
		},
		{
			name: "admin may regenerate code",
			req:  AuthzRequest{CallerID: "u1", Action: domain.ActionRegenerateCode},
			st:   AuthzState{Caller: admin, AdminCount: 1},
		},
		{
			name: "member may leave",
			req:  AuthzRequest{CallerID: "u2", Action: domain.ActionLeave},
			st:   AuthzState{Caller: member, AdminCount: 1},
		},
		{
			name: "sole admin may not leave",
			req:  AuthzRequest{CallerID: "u1", Action: domain.ActionLeave},
			st:   AuthzState{Caller: admin, AdminCount: 1},
			want: ErrLastAdmin,
		},
		{
			name: "admin may leave when another admin remains",
			req:  AuthzRequest{CallerID: "u1", Action: domain.ActionLeave},
			st:   AuthzState{Caller: admin, AdminCount: 2},
		},
		{
			name: "self demotion is a conflict",
			req:  AuthzRequest{CallerID: "u1", TargetUserID: "u1", Action: domain.ActionToggleAdmin},
			st:   AuthzState{Caller: admin, Target: admin, AdminCount: 2},
			want: ErrSelfTarget,
		},
		{
			name: "self removal is a conflict",
			req:  AuthzRequest{CallerID: "u1", TargetUserID: "u1", Action: domain.ActionRemoveMember},
			st:   AuthzState{Caller: admin, AdminCount: 1},
			want: ErrSelfTarget,
		},
		{
			name: "unknown target",
			req:  AuthzRequest{CallerID: "u1", TargetUserID: "u7", Action: domain.ActionRemoveMember},
			st:   AuthzState{Caller: admin, AdminCount: 1},
			want: ErrMemberNotFound,
		},
		{
			name: "promote member",
			req:  AuthzRequest{CallerID: "u1", TargetUserID: "u2", Action: domain.ActionToggleAdmin},
			st:   AuthzState{Caller: admin, Target: member, AdminCount: 1},
		},
		{
			name: "demote other admin",
			req:  AuthzRequest{CallerID: "u1", TargetUserID: "u3", Action: domain.ActionToggleAdmin},
			st:   AuthzState{Caller: admin, Target: otherAdmin, AdminCount: 2},
		},
		{
			name: "demoting the last admin is a conflict",
			req:  AuthzRequest{CallerID: "u1", TargetUserID: "u3", Action: domain.ActionToggleAdmin},
			st:   AuthzState{Caller: admin, Target: otherAdmin, AdminCount: 1},
			want: ErrLastAdmin,
		},
		{
			name: "member may not remove others",
			req:  AuthzRequest{CallerID: "u2", TargetUserID: "u1", Action: domain.ActionRemoveMember},
			st:   AuthzState{Caller: member, Target: admin, AdminCount: 1},
			want: ErrAdminRequired,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Guard{}.Decide(tc.req, tc.st)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, ErrNotMember, ErrForbidden)
	require.ErrorIs(t, ErrLastAdmin, ErrConflict)
	require.ErrorIs(t, ErrInviteExpired, ErrConflict)
	require.ErrorIs(t, ErrInviteExpired, ErrExpired)
	require.NotErrorIs(t, ErrInviteAlreadyAccepted, ErrExpired)
	require.ErrorIs(t, ErrInvalidCode, ErrNotFound)
	require.ErrorIs(t, ErrInvalidName, ErrValidation)
}
