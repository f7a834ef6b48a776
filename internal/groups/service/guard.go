package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/aussiebroadwan/kitty/internal/groups/store"
)

// AuthzRequest asks whether CallerID may perform Action on GroupID.
// TargetUserID is only read for toggleAdmin and removeMember.
type AuthzRequest struct {
	GroupID      string
	CallerID     string
	Action       domain.Action
	TargetUserID string
}

// AuthzState is the membership state a decision is made over.
type AuthzState struct {
	Caller     *domain.Membership // nil when the caller is not a member
	Target     *domain.Membership // nil when the target is not a member
	AdminCount int
}

// Authorized is returned by Guard.Authorize for the mutation to build on.
type Authorized struct {
	Group  domain.Group
	Caller domain.Membership
	Target domain.Membership // zero unless the action targets a member
}

// Guard decides role-gated group mutations. It holds no state; Authorize must
// be called with the same transaction the mutation runs in.
type Guard struct{}

// Decide applies the role rules to an already loaded state.
func (Guard) Decide(req AuthzRequest, st AuthzState) error {
	if st.Caller == nil {
		return ErrNotMember
	}

	if req.Action.RequiresAdmin() && !st.Caller.IsAdmin() {
		return ErrAdminRequired
	}

	switch req.Action {
	case domain.ActionLeave:
		if st.Caller.IsAdmin() && st.AdminCount <= 1 {
			return ErrLastAdmin
		}

	case domain.ActionToggleAdmin, domain.ActionRemoveMember:
		if req.TargetUserID == req.CallerID {
			return ErrSelfTarget
		}
		if st.Target == nil {
			return ErrMemberNotFound
		}
		// Demoting or removing an admin must leave another admin behind.
		if st.Target.IsAdmin() && st.AdminCount <= 1 {
			return ErrLastAdmin
		}
	}

	return nil
}

// Authorize loads the group, the caller's membership and, where the action
// needs them, the target membership and admin count from s, then decides.
func (g Guard) Authorize(ctx context.Context, s store.Store, req AuthzRequest) (Authorized, error) {
	var out Authorized

	group, err := s.Groups().GetGroupByID(ctx, req.GroupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return out, ErrGroupNotFound
		}
		return out, fmt.Errorf("load group: %w", err)
	}
	out.Group = group

	var st AuthzState

	caller, err := lookupMembership(ctx, s, req.GroupID, req.CallerID)
	if err != nil {
		return out, err
	}
	st.Caller = caller

	if caller != nil && req.Action.TargetsMember() && req.TargetUserID != req.CallerID {
		target, err := lookupMembership(ctx, s, req.GroupID, req.TargetUserID)
		if err != nil {
			return out, err
		}
		st.Target = target
	}

	if caller != nil && (req.Action == domain.ActionLeave || req.Action.TargetsMember()) {
		n, err := s.Memberships().CountAdmins(ctx, req.GroupID)
		if err != nil {
			return out, fmt.Errorf("count admins: %w", err)
		}
		st.AdminCount = n
	}

	if err := g.Decide(req, st); err != nil {
		return out, err
	}

	out.Caller = *st.Caller
	if st.Target != nil {
		out.Target = *st.Target
	}
	return out, nil
}

func lookupMembership(ctx context.Context, s store.Store, groupID, userID string) (*domain.Membership, error) {
	if userID == "" {
		return nil, nil
	}
	m, err := s.Memberships().GetMembership(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load membership: %w", err)
	}
	return &m, nil
}
