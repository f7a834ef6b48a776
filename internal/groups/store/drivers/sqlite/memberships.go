package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/aussiebroadwan/kitty/internal/groups/store"
	"github.com/aussiebroadwan/kitty/internal/groups/store/drivers/sqlite/gen"
)

type membershipsRepo struct {
	q *gen.Queries
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	return mapWriteErr(r.q.CreateMembership(ctx, gen.CreateMembershipParams{
		ID:        m.ID,
		GroupID:   m.GroupID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		JoinedAt:  m.JoinedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}))
}

func (r *membershipsRepo) CreateMembershipWithCode(
	ctx context.Context,
	m domain.Membership,
	code string,
) error {
	n, err := r.q.CreateMembershipWithCode(ctx, gen.CreateMembershipWithCodeParams{
		ID:         m.ID,
		UserID:     m.UserID,
		Role:       string(m.Role),
		JoinedAt:   m.JoinedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
		GroupID:    m.GroupID,
		InviteCode: mapStringNull(code),
	})
	if err != nil {
		return mapWriteErr(err)
	}
	if n == 0 {
		return store.ErrStale
	}
	return nil
}

func (r *membershipsRepo) GetMembership(
	ctx context.Context,
	groupID, userID string,
) (domain.Membership, error) {
	row, err := r.q.GetMembership(ctx, gen.GetMembershipParams{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return mapMembership(row), nil
}

func (r *membershipsRepo) ListMembershipsByGroup(
	ctx context.Context,
	groupID string,
) ([]domain.Membership, error) {
	rows, err := r.q.ListMembershipsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return mapMemberships(rows), nil
}

func (r *membershipsRepo) UpdateRole(
	ctx context.Context,
	groupID, userID string,
	role domain.Role,
	now time.Time,
) error {
	return expectOne(r.q.UpdateMembershipRole(ctx, gen.UpdateMembershipRoleParams{
		Role:      string(role),
		UpdatedAt: now.UTC(),
		GroupID:   groupID,
		UserID:    userID,
	}))
}

func (r *membershipsRepo) CountAdmins(ctx context.Context, groupID string) (int, error) {
	n, err := r.q.CountAdmins(ctx, groupID)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, groupID, userID string) error {
	return expectOne(r.q.DeleteMembership(ctx, gen.DeleteMembershipParams{
		GroupID: groupID,
		UserID:  userID,
	}))
}

func (r *membershipsRepo) DeleteMembershipsByGroup(ctx context.Context, groupID string) error {
	return r.q.DeleteMembershipsByGroup(ctx, groupID)
}

func mapMemberships(rows []gen.Membership) []domain.Membership {
	out := make([]domain.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMembership(row))
	}
	return out
}
