package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/aussiebroadwan/kitty/internal/groups/store"
	"github.com/aussiebroadwan/kitty/pkg/idx"
	"github.com/aussiebroadwan/kitty/pkg/slogx"
)

// DefaultInviteTTL is used when GroupService.InviteTTL is unset.
const DefaultInviteTTL = 7 * 24 * time.Hour

// GroupService is the entry point for every group use-case. Each mutation
// authorizes and writes inside one transaction; notifications go out after
// commit.
type GroupService struct {
	Store       store.Store
	Invitations *InvitationService
	Guard       Guard
	Notifier    NotificationDispatcher

	// InviteTTL is the lifetime of an issued invite token.
	InviteTTL time.Duration

	// InviteBaseURL prefixes /invites/{token} in notifications.
	InviteBaseURL string

	Now func() time.Time
}

// GroupDetail is a group together with its members.
type GroupDetail struct {
	Group   domain.Group
	Members []domain.Membership
}

type SendInviteInput struct {
	GroupID    string
	Email      string
	CallerID   string
	CallerName string
}

type ResendInviteInput struct {
	GroupID    string
	InviteID   string
	CallerID   string
	CallerName string
}

func (s *GroupService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *GroupService) inviteTTL() time.Duration {
	if s.InviteTTL > 0 {
		return s.InviteTTL
	}
	return DefaultInviteTTL
}

// CreateGroup creates a group with a fresh invite code and makes creatorID
// its first admin.
func (s *GroupService) CreateGroup(ctx context.Context, name, creatorID string) (GroupDetail, error) {
	log := slogx.FromContext(ctx)

	name, err := normalizeName(name)
	if err != nil {
		return GroupDetail{}, err
	}
	if creatorID == "" {
		return GroupDetail{}, ErrInvalidUser
	}

	now := s.now()
	group := domain.Group{
		ID:        idx.NewAt(now).String(),
		Name:      name,
		CreatedBy: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	admin := domain.Membership{
		ID:        idx.NewAt(now).String(),
		GroupID:   group.ID,
		UserID:    creatorID,
		Role:      domain.RoleAdmin,
		JoinedAt:  now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Groups().CreateGroup(ctx, group); err != nil {
			return fmt.Errorf("create group: %w", err)
		}
		if err := tx.Memberships().CreateMembership(ctx, admin); err != nil {
			return fmt.Errorf("create admin membership: %w", err)
		}

		code, err := s.Invitations.RegenerateCodeInTx(ctx, tx, group.ID)
		if err != nil {
			return err
		}
		group.InviteCode = &code
		return nil
	})
	if err != nil {
		log.Error("failed to create group", slog.Any("error", err))
		return GroupDetail{}, err
	}

	groupsCreatedMetric.Inc()
	log.Info("group created",
		slog.String("group_id", group.ID),
		slog.String("creator_id", creatorID),
	)
	return GroupDetail{Group: group, Members: []domain.Membership{admin}}, nil
}

// GetGroup returns the group and its members to any member.
func (s *GroupService) GetGroup(ctx context.Context, groupID, callerID string) (GroupDetail, error) {
	var out GroupDetail
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		auth, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:  groupID,
			CallerID: callerID,
			Action:   domain.ActionView,
		})
		if err != nil {
			return err
		}

		members, err := tx.Memberships().ListMembershipsByGroup(ctx, groupID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}

		out = GroupDetail{Group: auth.Group, Members: members}
		return nil
	})
	return out, err
}

// ListGroups returns every group userID belongs to.
func (s *GroupService) ListGroups(ctx context.Context, userID string) ([]domain.Group, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}
	return s.Store.Groups().ListGroupsByUser(ctx, userID)
}

// UpdateGroup renames a group.
func (s *GroupService) UpdateGroup(ctx context.Context, groupID, name, callerID string) (domain.Group, error) {
	log := slogx.FromContext(ctx)

	name, err := normalizeName(name)
	if err != nil {
		return domain.Group{}, err
	}

	var group domain.Group
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		auth, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:  groupID,
			CallerID: callerID,
			Action:   domain.ActionEdit,
		})
		if err != nil {
			return err
		}

		now := s.now()
		if err := tx.Groups().UpdateGroupName(ctx, groupID, name, now); err != nil {
			return fmt.Errorf("rename group: %w", err)
		}

		group = auth.Group
		group.Name = name
		group.UpdatedAt = now
		return nil
	})
	if err != nil {
		s.logRejected(ctx, "update group", groupID, callerID, err)
		return domain.Group{}, err
	}

	log.Info("group renamed", slog.String("group_id", groupID), slog.String("caller_id", callerID))
	return group, nil
}

// DeleteGroup hard-deletes the group with all memberships and invites.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID, callerID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:  groupID,
			CallerID: callerID,
			Action:   domain.ActionDelete,
		}); err != nil {
			return err
		}

		if err := tx.Invites().DeleteInvitesByGroup(ctx, groupID); err != nil {
			return fmt.Errorf("delete invites: %w", err)
		}
		if err := tx.Memberships().DeleteMembershipsByGroup(ctx, groupID); err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}
		if err := tx.Groups().DeleteGroup(ctx, groupID); err != nil {
			return fmt.Errorf("delete group: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logRejected(ctx, "delete group", groupID, callerID, err)
		return err
	}

	slogx.FromContext(ctx).Info("group deleted",
		slog.String("group_id", groupID),
		slog.String("caller_id", callerID),
	)
	return nil
}

// JoinGroup admits userID through the group's invite code. Holding the code
// is the authorization.
func (s *GroupService) JoinGroup(ctx context.Context, code, userID string) (JoinResult, error) {
	return s.Invitations.JoinByCode(ctx, code, userID)
}

// RegenerateCode rotates the group's invite code.
func (s *GroupService) RegenerateCode(ctx context.Context, groupID, callerID string) (string, error) {
	var code string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:  groupID,
			CallerID: callerID,
			Action:   domain.ActionRegenerateCode,
		}); err != nil {
			return err
		}

		var err error
		code, err = s.Invitations.RegenerateCodeInTx(ctx, tx, groupID)
		return err
	})
	if err != nil {
		s.logRejected(ctx, "regenerate code", groupID, callerID, err)
		return "", err
	}

	slogx.FromContext(ctx).Info("invite code regenerated",
		slog.String("group_id", groupID),
		slog.String("caller_id", callerID),
	)
	return code, nil
}

// SendInvite issues an email invite and dispatches the notification. When
// dispatch fails the persisted invite is still returned alongside an error
// matching ErrDelivery.
func (s *GroupService) SendInvite(ctx context.Context, in SendInviteInput) (domain.Invite, error) {
	var (
		inv   domain.Invite
		group domain.Group
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		auth, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:  in.GroupID,
			CallerID: in.CallerID,
			Action:   domain.ActionSendInvite,
		})
		if err != nil {
			return err
		}
		group = auth.Group

		inv, err = s.Invitations.IssueEmailInviteInTx(ctx, tx, IssueInviteInput{
			GroupID:     in.GroupID,
			Email:       in.Email,
			TTL:         s.inviteTTL(),
			InviterID:   in.CallerID,
			InviterName: inviterName(in.CallerName, in.CallerID),
		})
		return err
	})
	if err != nil {
		s.logRejected(ctx, "send invite", in.GroupID, in.CallerID, err)
		return domain.Invite{}, err
	}

	return inv, s.dispatch(ctx, inv, group)
}

// ResendInvite re-issues a specific invite whatever its state, then
// dispatches a fresh notification.
func (s *GroupService) ResendInvite(ctx context.Context, in ResendInviteInput) (domain.Invite, error) {
	var (
		inv   domain.Invite
		group domain.Group
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		auth, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:  in.GroupID,
			CallerID: in.CallerID,
			Action:   domain.ActionResendInvite,
		})
		if err != nil {
			return err
		}
		group = auth.Group

		inv, err = s.Invitations.ReissueInviteInTx(ctx, tx,
			in.GroupID, in.InviteID, s.inviteTTL(),
			in.CallerID, inviterName(in.CallerName, in.CallerID),
		)
		return err
	})
	if err != nil {
		s.logRejected(ctx, "resend invite", in.GroupID, in.CallerID, err)
		return domain.Invite{}, err
	}

	return inv, s.dispatch(ctx, inv, group)
}

func (s *GroupService) dispatch(ctx context.Context, inv domain.Invite, group domain.Group) error {
	if s.Notifier == nil {
		return nil
	}

	err := s.Notifier.DispatchInvite(ctx, InviteNotification{
		Email:       inv.Email,
		Token:       inv.Token,
		GroupName:   group.Name,
		InviterName: inv.InviterName,
		InviteURL:   s.inviteURL(inv.Token),
	})
	if err != nil {
		slogx.FromContext(ctx).Error("invite notification failed",
			slog.String("invite_id", inv.ID),
			slog.String("group_id", inv.GroupID),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	return nil
}

func (s *GroupService) inviteURL(token string) string {
	base := strings.TrimSpace(s.InviteBaseURL)
	if base == "" {
		return "/invites/" + url.PathEscape(token)
	}
	u, err := url.JoinPath(base, "invites", token)
	if err != nil {
		return strings.TrimRight(base, "/") + "/invites/" + url.PathEscape(token)
	}
	return u
}

// ListInvites returns the group's invites to an admin, expiring any pending
// invite whose deadline has passed.
func (s *GroupService) ListInvites(ctx context.Context, groupID, callerID string) ([]domain.Invite, error) {
	var out []domain.Invite
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:  groupID,
			CallerID: callerID,
			Action:   domain.ActionSendInvite,
		}); err != nil {
			return err
		}

		invites, err := tx.Invites().ListInvitesByGroup(ctx, groupID)
		if err != nil {
			return fmt.Errorf("list invites: %w", err)
		}

		out = make([]domain.Invite, 0, len(invites))
		for _, inv := range invites {
			cur, err := s.Invitations.expireIfDue(ctx, tx, inv)
			if err != nil {
				return err
			}
			out = append(out, cur)
		}
		return nil
	})
	return out, err
}

// AcceptInvite consumes the invite and admits userID as a member.
func (s *GroupService) AcceptInvite(ctx context.Context, token, userID string) (domain.Invite, error) {
	return s.Invitations.Consume(ctx, token, domain.DecisionAccept, userID)
}

// DeclineInvite consumes the invite without admitting anyone.
func (s *GroupService) DeclineInvite(ctx context.Context, token, userID string) (domain.Invite, error) {
	return s.Invitations.Consume(ctx, token, domain.DecisionDecline, userID)
}

// InviteStateKind classifies an invite for the landing page.
type InviteStateKind string

const (
	InviteStateValidPending InviteStateKind = "valid-pending"
	InviteStateAccepted     InviteStateKind = "accepted"
	InviteStateDeclined     InviteStateKind = "declined"
	InviteStateExpired      InviteStateKind = "expired"
	InviteStateNotFound     InviteStateKind = "not-found"
)

// InviteState is the single classification every invite view renders from.
type InviteState struct {
	Kind        InviteStateKind
	Invite      domain.Invite
	GroupName   string
	InviterName string
}

// GetInviteState resolves token for display. An unknown token is a
// not-found state rather than an error.
func (s *GroupService) GetInviteState(ctx context.Context, token string) (InviteState, error) {
	var st InviteState
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := s.Invitations.ResolveInviteInTx(ctx, tx, token)
		if err != nil {
			return err
		}

		group, err := tx.Groups().GetGroupByID(ctx, inv.GroupID)
		if err != nil {
			return fmt.Errorf("load group: %w", err)
		}

		st = InviteState{
			Kind:        kindOf(inv.Status),
			Invite:      inv,
			GroupName:   group.Name,
			InviterName: inv.InviterName,
		}
		return nil
	})
	if errors.Is(err, ErrInviteNotFound) {
		return InviteState{Kind: InviteStateNotFound}, nil
	}
	return st, err
}

func kindOf(status domain.InviteStatus) InviteStateKind {
	switch status {
	case domain.InviteStatusPending:
		return InviteStateValidPending
	case domain.InviteStatusAccepted:
		return InviteStateAccepted
	case domain.InviteStatusDeclined:
		return InviteStateDeclined
	case domain.InviteStatusExpired:
		return InviteStateExpired
	default:
		return InviteStateNotFound
	}
}

// ToggleAdmin promotes a member to admin or demotes an admin to member.
func (s *GroupService) ToggleAdmin(ctx context.Context, groupID, targetUserID, callerID string) (domain.Membership, error) {
	var target domain.Membership
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		auth, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:      groupID,
			CallerID:     callerID,
			Action:       domain.ActionToggleAdmin,
			TargetUserID: targetUserID,
		})
		if err != nil {
			return err
		}

		target = auth.Target
		target.Role = domain.RoleAdmin
		if auth.Target.IsAdmin() {
			target.Role = domain.RoleMember
		}
		target.UpdatedAt = s.now()

		if err := tx.Memberships().UpdateRole(ctx, groupID, targetUserID, target.Role, target.UpdatedAt); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logRejected(ctx, "toggle admin", groupID, callerID, err)
		return domain.Membership{}, err
	}

	slogx.FromContext(ctx).Info("member role changed",
		slog.String("group_id", groupID),
		slog.String("target_id", targetUserID),
		slog.String("role", string(target.Role)),
		slog.String("caller_id", callerID),
	)
	return target, nil
}

// RemoveMember removes another member from the group.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, targetUserID, callerID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:      groupID,
			CallerID:     callerID,
			Action:       domain.ActionRemoveMember,
			TargetUserID: targetUserID,
		}); err != nil {
			return err
		}

		if err := tx.Memberships().DeleteMembership(ctx, groupID, targetUserID); err != nil {
			return fmt.Errorf("delete membership: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logRejected(ctx, "remove member", groupID, callerID, err)
		return err
	}

	slogx.FromContext(ctx).Info("member removed",
		slog.String("group_id", groupID),
		slog.String("target_id", targetUserID),
		slog.String("caller_id", callerID),
	)
	return nil
}

// LeaveGroup removes the caller's own membership. The sole admin has to
// promote someone else first.
func (s *GroupService) LeaveGroup(ctx context.Context, groupID, callerID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := s.Guard.Authorize(ctx, tx, AuthzRequest{
			GroupID:  groupID,
			CallerID: callerID,
			Action:   domain.ActionLeave,
		}); err != nil {
			return err
		}

		if err := tx.Memberships().DeleteMembership(ctx, groupID, callerID); err != nil {
			return fmt.Errorf("delete membership: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logRejected(ctx, "leave group", groupID, callerID, err)
		return err
	}

	slogx.FromContext(ctx).Info("member left group",
		slog.String("group_id", groupID),
		slog.String("user_id", callerID),
	)
	return nil
}

// logRejected logs business rejections at warn and anything else at error.
func (s *GroupService) logRejected(ctx context.Context, op, groupID, callerID string, err error) {
	log := slogx.FromContext(ctx)
	attrs := []any{
		slog.String("op", op),
		slog.String("group_id", groupID),
		slog.String("caller_id", callerID),
	}

	var se *Error
	if errors.As(err, &se) {
		log.Warn("group operation rejected", append(attrs, slog.String("reason", se.Msg))...)
		return
	}
	log.Error("group operation failed", append(attrs, slog.Any("error", err))...)
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > domain.GroupMaxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

func inviterName(name, id string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return id
}
