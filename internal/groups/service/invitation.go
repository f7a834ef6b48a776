package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/aussiebroadwan/kitty/internal/groups/store"
	"github.com/aussiebroadwan/kitty/pkg/cryptox"
	"github.com/aussiebroadwan/kitty/pkg/idx"
	"github.com/aussiebroadwan/kitty/pkg/slogx"
)

// maxCodeAttempts bounds regeneration when a fresh code collides with one
// held by another group.
const maxCodeAttempts = 5

// InvitationService owns the invite token and group code lifecycle. The
// ...InTx methods run against a transaction-scoped store so GroupService can
// authorize and mutate atomically; the plain methods open their own.
type InvitationService struct {
	Store      store.Store
	CodeLength int
	Now        func() time.Time
}

// IssueInviteInput describes an email invite to create or refresh.
type IssueInviteInput struct {
	GroupID     string
	Email       string
	TTL         time.Duration
	InviterID   string
	InviterName string
}

func (s *InvitationService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *InvitationService) codeLength() int {
	if s.CodeLength > 0 {
		return s.CodeLength
	}
	return cryptox.DefaultCodeLength
}

// IssueEmailInvite creates the invite for (group, email), or resets the
// existing one to pending with a fresh token and expiry.
func (s *InvitationService) IssueEmailInvite(ctx context.Context, in IssueInviteInput) (domain.Invite, error) {
	var inv domain.Invite
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		inv, err = s.IssueEmailInviteInTx(ctx, tx, in)
		return err
	})
	return inv, err
}

func (s *InvitationService) IssueEmailInviteInTx(
	ctx context.Context,
	tx store.Store,
	in IssueInviteInput,
) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	email, err := NormalizeEmail(in.Email)
	if err != nil {
		return domain.Invite{}, err
	}
	if in.TTL <= 0 {
		return domain.Invite{}, ErrInvalidTTL
	}

	if _, err := tx.Groups().GetGroupByID(ctx, in.GroupID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrGroupNotFound
		}
		return domain.Invite{}, fmt.Errorf("load group: %w", err)
	}

	existing, err := tx.Invites().GetInviteByGroupEmail(ctx, in.GroupID, email)
	switch {
	case err == nil:
		return s.reissue(ctx, tx, existing, in.TTL, in.InviterID, in.InviterName)
	case !errors.Is(err, store.ErrNotFound):
		return domain.Invite{}, fmt.Errorf("load invite: %w", err)
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Invite{}, err
	}

	now := s.now()
	inv := domain.Invite{
		ID:          idx.NewAt(now).String(),
		GroupID:     in.GroupID,
		Email:       email,
		TokenHash:   cryptox.FingerprintToken(token),
		Token:       token,
		Status:      domain.InviteStatusPending,
		InvitedBy:   in.InviterID,
		InviterName: in.InviterName,
		InvitedAt:   now,
		ExpiresAt:   now.Add(in.TTL),
		UpdatedAt:   now,
	}

	if err := tx.Invites().CreateInvite(ctx, inv); err != nil {
		log.Error("failed to create invite",
			slog.String("group_id", in.GroupID),
			slog.Any("error", err),
		)
		return domain.Invite{}, fmt.Errorf("create invite: %w", err)
	}

	invitesIssuedMetric.Inc()
	log.Info("invite issued",
		slog.String("invite_id", inv.ID),
		slog.String("group_id", inv.GroupID),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return inv, nil
}

// ReissueInviteInTx re-invites by invite id, whatever state the invite is in.
func (s *InvitationService) ReissueInviteInTx(
	ctx context.Context,
	tx store.Store,
	groupID, inviteID string,
	ttl time.Duration,
	inviterID, inviterName string,
) (domain.Invite, error) {
	if ttl <= 0 {
		return domain.Invite{}, ErrInvalidTTL
	}

	inv, err := tx.Invites().GetInviteByID(ctx, groupID, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		return domain.Invite{}, fmt.Errorf("load invite: %w", err)
	}

	return s.reissue(ctx, tx, inv, ttl, inviterID, inviterName)
}

func (s *InvitationService) reissue(
	ctx context.Context,
	tx store.Store,
	inv domain.Invite,
	ttl time.Duration,
	inviterID, inviterName string,
) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Invite{}, err
	}

	now := s.now()
	previous := inv.Status

	inv.TokenHash = cryptox.FingerprintToken(token)
	inv.Token = token
	inv.Status = domain.InviteStatusPending
	inv.InvitedBy = inviterID
	inv.InviterName = inviterName
	inv.AcceptedAt = nil
	inv.RespondedBy = ""
	inv.ExpiresAt = now.Add(ttl)
	inv.UpdatedAt = now

	if err := tx.Invites().ReissueInvite(ctx, inv); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		log.Error("failed to reissue invite",
			slog.String("invite_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invite{}, fmt.Errorf("reissue invite: %w", err)
	}

	invitesIssuedMetric.Inc()
	log.Info("invite reissued",
		slog.String("invite_id", inv.ID),
		slog.String("group_id", inv.GroupID),
		slog.String("previous_status", string(previous)),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return inv, nil
}

// ResolveInvite looks an invite up by raw token, expiring it first if its
// deadline has passed.
func (s *InvitationService) ResolveInvite(ctx context.Context, token string) (domain.Invite, error) {
	var inv domain.Invite
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		inv, err = s.ResolveInviteInTx(ctx, tx, token)
		return err
	})
	return inv, err
}

func (s *InvitationService) ResolveInviteInTx(ctx context.Context, tx store.Store, token string) (domain.Invite, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Invite{}, ErrInviteNotFound
	}

	inv, err := tx.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		return domain.Invite{}, fmt.Errorf("load invite: %w", err)
	}

	return s.expireIfDue(ctx, tx, inv)
}

// expireIfDue persists the pending -> expired transition for an invite past
// its deadline and returns the up to date record.
func (s *InvitationService) expireIfDue(ctx context.Context, tx store.Store, inv domain.Invite) (domain.Invite, error) {
	now := s.now()
	if !inv.ExpiredAt(now) {
		return inv, nil
	}

	err := tx.Invites().TransitionInviteStatus(ctx, store.InviteTransition{
		ID:   inv.ID,
		From: domain.InviteStatusPending,
		To:   domain.InviteStatusExpired,
		Now:  now,
	})
	switch {
	case err == nil:
		slogx.FromContext(ctx).Debug("invite lazily expired",
			slog.String("invite_id", inv.ID),
			slog.Time("expires_at", inv.ExpiresAt),
		)
		inv.Status = domain.InviteStatusExpired
		inv.UpdatedAt = now
		return inv, nil

	case errors.Is(err, store.ErrStale):
		// Someone else moved it first, report what they left behind.
		fresh, err := tx.Invites().GetInviteByID(ctx, inv.GroupID, inv.ID)
		if err != nil {
			return domain.Invite{}, fmt.Errorf("reload invite: %w", err)
		}
		return fresh, nil

	default:
		return domain.Invite{}, fmt.Errorf("expire invite: %w", err)
	}
}

// Consume accepts or declines the invite behind token exactly once. Accepting
// also admits userID to the group as a member in the same transaction.
func (s *InvitationService) Consume(
	ctx context.Context,
	token string,
	decision domain.Decision,
	userID string,
) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	if userID == "" {
		return domain.Invite{}, ErrInvalidUser
	}

	var (
		inv     domain.Invite
		outcome error
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		inv, outcome, err = s.consumeInTx(ctx, tx, token, decision, userID)
		return err
	})
	if err == nil {
		err = outcome
	}

	invitesConsumedMetric.WithLabelValues(string(decision), resultLabel(err)).Inc()

	if err != nil {
		if errors.Is(err, ErrConflict) || errors.Is(err, ErrNotFound) {
			log.Warn("invite consume rejected",
				slog.String("decision", string(decision)),
				slog.String("user_id", userID),
				slog.String("reason", err.Error()),
			)
		} else {
			log.Error("invite consume failed", slog.Any("error", err))
		}
		return inv, err
	}

	log.Info("invite consumed",
		slog.String("invite_id", inv.ID),
		slog.String("group_id", inv.GroupID),
		slog.String("decision", string(decision)),
		slog.String("user_id", userID),
	)
	return inv, nil
}

// consumeInTx returns business rejections as outcome with a nil err, so a
// lazy expiry performed on the way is still committed.
func (s *InvitationService) consumeInTx(
	ctx context.Context,
	tx store.Store,
	token string,
	decision domain.Decision,
	userID string,
) (inv domain.Invite, outcome error, err error) {
	inv, err = s.ResolveInviteInTx(ctx, tx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return inv, err, nil
		}
		return inv, nil, err
	}

	if inv.Status.Terminal() {
		return inv, statusConflict(inv.Status), nil
	}

	now := s.now()
	t := store.InviteTransition{
		ID:          inv.ID,
		From:        domain.InviteStatusPending,
		To:          decision.Status(),
		RespondedBy: userID,
		Now:         now,
	}
	if decision == domain.DecisionAccept {
		t.AcceptedAt = &now
	}

	if err := tx.Invites().TransitionInviteStatus(ctx, t); err != nil {
		if errors.Is(err, store.ErrStale) {
			return inv, ErrInviteConsumed, nil
		}
		return inv, nil, fmt.Errorf("transition invite: %w", err)
	}

	inv.Status = t.To
	inv.AcceptedAt = t.AcceptedAt
	inv.RespondedBy = userID
	inv.UpdatedAt = now

	if decision == domain.DecisionAccept {
		if _, err := s.admit(ctx, tx, inv.GroupID, userID, now); err != nil {
			return inv, nil, err
		}
	}

	return inv, nil, nil
}

// admit creates a member-role membership unless userID already belongs to the
// group, in which case the existing membership is kept as is.
func (s *InvitationService) admit(
	ctx context.Context,
	tx store.Store,
	groupID, userID string,
	now time.Time,
) (domain.Membership, error) {
	existing, err := tx.Memberships().GetMembership(ctx, groupID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Membership{}, fmt.Errorf("load membership: %w", err)
	}

	m := domain.Membership{
		ID:        idx.NewAt(now).String(),
		GroupID:   groupID,
		UserID:    userID,
		Role:      domain.RoleMember,
		JoinedAt:  now,
		UpdatedAt: now,
	}
	if err := tx.Memberships().CreateMembership(ctx, m); err != nil {
		return domain.Membership{}, fmt.Errorf("create membership: %w", err)
	}
	return m, nil
}

func statusConflict(status domain.InviteStatus) error {
	switch status {
	case domain.InviteStatusAccepted:
		return ErrInviteAlreadyAccepted
	case domain.InviteStatusDeclined:
		return ErrInviteAlreadyDeclined
	case domain.InviteStatusExpired:
		return ErrInviteExpired
	default:
		return ErrInviteConsumed
	}
}

// RegenerateCode replaces the group's invite code. The old code stops
// matching the moment the transaction commits.
func (s *InvitationService) RegenerateCode(ctx context.Context, groupID string) (string, error) {
	var code string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		code, err = s.RegenerateCodeInTx(ctx, tx, groupID)
		return err
	})
	return code, err
}

func (s *InvitationService) RegenerateCodeInTx(ctx context.Context, tx store.Store, groupID string) (string, error) {
	log := slogx.FromContext(ctx)

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := cryptox.GenerateCode(s.codeLength())
		if err != nil {
			return "", err
		}

		err = tx.Groups().UpdateInviteCode(ctx, groupID, code, s.now())
		switch {
		case err == nil:
			log.Debug("invite code assigned",
				slog.String("group_id", groupID),
				slog.Int("attempt", attempt),
			)
			return code, nil
		case errors.Is(err, store.ErrAlreadyExists):
			log.Warn("invite code collision, retrying",
				slog.String("group_id", groupID),
				slog.Int("attempt", attempt),
			)
			continue
		case errors.Is(err, store.ErrNotFound):
			return "", ErrGroupNotFound
		default:
			return "", fmt.Errorf("update invite code: %w", err)
		}
	}

	log.Error("exhausted invite code attempts", slog.String("group_id", groupID))
	return "", ErrCodeExhausted
}

// JoinResult reports the membership a join produced. Joined is false when the
// user was already a member.
type JoinResult struct {
	Group      domain.Group
	Membership domain.Membership
	Joined     bool
}

// JoinByCode admits userID to the group currently holding code.
func (s *InvitationService) JoinByCode(ctx context.Context, code, userID string) (JoinResult, error) {
	var res JoinResult
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		res, err = s.JoinByCodeInTx(ctx, tx, code, userID)
		return err
	})
	groupJoinsMetric.WithLabelValues(resultLabel(err)).Inc()
	return res, err
}

func (s *InvitationService) JoinByCodeInTx(
	ctx context.Context,
	tx store.Store,
	code, userID string,
) (JoinResult, error) {
	log := slogx.FromContext(ctx)

	if userID == "" {
		return JoinResult{}, ErrInvalidUser
	}

	code = cryptox.NormalizeCode(code)
	if code == "" {
		return JoinResult{}, ErrInvalidCode
	}

	group, err := tx.Groups().GetGroupByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("join attempted with unknown code", slog.String("user_id", userID))
			return JoinResult{}, ErrInvalidCode
		}
		return JoinResult{}, fmt.Errorf("load group by code: %w", err)
	}

	existing, err := tx.Memberships().GetMembership(ctx, group.ID, userID)
	if err == nil {
		return JoinResult{Group: group, Membership: existing}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return JoinResult{}, fmt.Errorf("load membership: %w", err)
	}

	now := s.now()
	m := domain.Membership{
		ID:        idx.NewAt(now).String(),
		GroupID:   group.ID,
		UserID:    userID,
		Role:      domain.RoleMember,
		JoinedAt:  now,
		UpdatedAt: now,
	}

	// The insert re-checks the code so a rotation that landed after the
	// lookup still wins.
	err = tx.Memberships().CreateMembershipWithCode(ctx, m, code)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrStale):
		return JoinResult{}, ErrInvalidCode
	case errors.Is(err, store.ErrAlreadyExists):
		existing, err := tx.Memberships().GetMembership(ctx, group.ID, userID)
		if err != nil {
			return JoinResult{}, fmt.Errorf("load membership: %w", err)
		}
		return JoinResult{Group: group, Membership: existing}, nil
	default:
		return JoinResult{}, fmt.Errorf("create membership: %w", err)
	}

	log.Info("user joined group by code",
		slog.String("group_id", group.ID),
		slog.String("user_id", userID),
	)
	return JoinResult{Group: group, Membership: m, Joined: true}, nil
}

// NormalizeEmail accepts a bare address and returns it lower-cased.
func NormalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Name != "" || addr.Address != raw {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
