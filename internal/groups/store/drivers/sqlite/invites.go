package sqlite

import (
	"context"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/aussiebroadwan/kitty/internal/groups/store"
	"github.com/aussiebroadwan/kitty/internal/groups/store/drivers/sqlite/gen"
)

type invitesRepo struct {
	q *gen.Queries
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	return mapWriteErr(r.q.CreateInvite(ctx, gen.CreateInviteParams{
		ID:          inv.ID,
		GroupID:     inv.GroupID,
		Email:       inv.Email,
		TokenHash:   inv.TokenHash,
		Status:      string(inv.Status),
		InvitedBy:   inv.InvitedBy,
		InviterName: inv.InviterName,
		InvitedAt:   inv.InvitedAt.UTC(),
		ExpiresAt:   inv.ExpiresAt.UTC(),
		UpdatedAt:   inv.UpdatedAt.UTC(),
	}))
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, groupID, id string) (domain.Invite, error) {
	row, err := r.q.GetInviteByID(ctx, gen.GetInviteByIDParams{GroupID: groupID, ID: id})
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return mapInvite(row), nil
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row, err := r.q.GetInviteByTokenHash(ctx, hash)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return mapInvite(row), nil
}

func (r *invitesRepo) GetInviteByGroupEmail(
	ctx context.Context,
	groupID, email string,
) (domain.Invite, error) {
	row, err := r.q.GetInviteByGroupEmail(ctx, gen.GetInviteByGroupEmailParams{
		GroupID: groupID,
		Email:   email,
	})
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return mapInvite(row), nil
}

func (r *invitesRepo) ListInvitesByGroup(ctx context.Context, groupID string) ([]domain.Invite, error) {
	rows, err := r.q.ListInvitesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Invite, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapInvite(row))
	}
	return out, nil
}

func (r *invitesRepo) ReissueInvite(ctx context.Context, inv domain.Invite) error {
	return expectOne(r.q.ReissueInvite(ctx, gen.ReissueInviteParams{
		TokenHash:   inv.TokenHash,
		InvitedBy:   inv.InvitedBy,
		InviterName: inv.InviterName,
		ExpiresAt:   inv.ExpiresAt.UTC(),
		UpdatedAt:   inv.UpdatedAt.UTC(),
		ID:          inv.ID,
	}))
}

func (r *invitesRepo) TransitionInviteStatus(ctx context.Context, t store.InviteTransition) error {
	n, err := r.q.TransitionInviteStatus(ctx, gen.TransitionInviteStatusParams{
		ToStatus:    string(t.To),
		AcceptedAt:  mapOptionalTime(t.AcceptedAt),
		RespondedBy: mapStringNull(t.RespondedBy),
		UpdatedAt:   t.Now.UTC(),
		ID:          t.ID,
		FromStatus:  string(t.From),
	})
	if err != nil {
		return mapWriteErr(err)
	}
	if n == 0 {
		return store.ErrStale
	}
	return nil
}

func (r *invitesRepo) DeleteInvitesByGroup(ctx context.Context, groupID string) error {
	return r.q.DeleteInvitesByGroup(ctx, groupID)
}
