package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/aussiebroadwan/kitty/internal/groups/store/drivers/sqlite/gen"
)

type groupsRepo struct {
	q *gen.Queries
}

func (r *groupsRepo) CreateGroup(ctx context.Context, g domain.Group) error {
	return mapWriteErr(r.q.CreateGroup(ctx, gen.CreateGroupParams{
		ID:         g.ID,
		Name:       g.Name,
		InviteCode: mapOptionalString(g.InviteCode),
		CreatedBy:  g.CreatedBy,
		CreatedAt:  g.CreatedAt.UTC(),
		UpdatedAt:  g.UpdatedAt.UTC(),
	}))
}

func (r *groupsRepo) GetGroupByID(ctx context.Context, id string) (domain.Group, error) {
	row, err := r.q.GetGroupByID(ctx, id)
	if err != nil {
		return domain.Group{}, mapNotFound(err)
	}
	return mapGroup(row), nil
}

func (r *groupsRepo) GetGroupByInviteCode(ctx context.Context, code string) (domain.Group, error) {
	row, err := r.q.GetGroupByInviteCode(ctx, sql.NullString{String: code, Valid: true})
	if err != nil {
		return domain.Group{}, mapNotFound(err)
	}
	return mapGroup(row), nil
}

func (r *groupsRepo) ListGroupsByUser(ctx context.Context, userID string) ([]domain.Group, error) {
	rows, err := r.q.ListGroupsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapGroup(row))
	}
	return out, nil
}

func (r *groupsRepo) UpdateGroupName(ctx context.Context, id, name string, now time.Time) error {
	return expectOne(r.q.UpdateGroupName(ctx, gen.UpdateGroupNameParams{
		Name:      name,
		UpdatedAt: now.UTC(),
		ID:        id,
	}))
}

func (r *groupsRepo) UpdateInviteCode(ctx context.Context, id, code string, now time.Time) error {
	return expectOne(r.q.UpdateInviteCode(ctx, gen.UpdateInviteCodeParams{
		InviteCode: mapStringNull(code),
		UpdatedAt:  now.UTC(),
		ID:         id,
	}))
}

func (r *groupsRepo) DeleteGroup(ctx context.Context, id string) error {
	return expectOne(r.q.DeleteGroup(ctx, id))
}
