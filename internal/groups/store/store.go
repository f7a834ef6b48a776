package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrStale is returned by conditional writes when the row no longer
	// matches the expected state (invite no longer pending, code rotated).
	ErrStale = errors.New("store: stale write")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories are exposed as methods so a Tx can hand out the same repos
// bound to its transaction, and nested transactions are refused.
type Store interface {
	Groups() Groups
	Memberships() Memberships
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Groups interface {
	// CreateGroup inserts a group. A duplicate invite code is ErrAlreadyExists.
	CreateGroup(ctx context.Context, g domain.Group) error

	GetGroupByID(ctx context.Context, id string) (domain.Group, error)

	// GetGroupByInviteCode looks up the group currently holding code.
	GetGroupByInviteCode(ctx context.Context, code string) (domain.Group, error)

	// ListGroupsByUser returns the groups userID belongs to, oldest first.
	ListGroupsByUser(ctx context.Context, userID string) ([]domain.Group, error)

	UpdateGroupName(ctx context.Context, id, name string, now time.Time) error

	// UpdateInviteCode replaces the code. A code held by another group is
	// ErrAlreadyExists.
	UpdateInviteCode(ctx context.Context, id, code string, now time.Time) error

	DeleteGroup(ctx context.Context, id string) error
}

type Memberships interface {
	// CreateMembership inserts a membership. A second membership for the same
	// (group, user) is ErrAlreadyExists.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// CreateMembershipWithCode inserts m only if the group's invite code is
	// still code at write time. Otherwise ErrStale.
	CreateMembershipWithCode(ctx context.Context, m domain.Membership, code string) error

	GetMembership(ctx context.Context, groupID, userID string) (domain.Membership, error)

	// ListMembershipsByGroup returns members ordered by join time.
	ListMembershipsByGroup(ctx context.Context, groupID string) ([]domain.Membership, error)

	UpdateRole(ctx context.Context, groupID, userID string, role domain.Role, now time.Time) error

	// CountAdmins returns the number of admin memberships in the group.
	CountAdmins(ctx context.Context, groupID string) (int, error)

	DeleteMembership(ctx context.Context, groupID, userID string) error

	DeleteMembershipsByGroup(ctx context.Context, groupID string) error
}

type Invites interface {
	// CreateInvite writes a new invite. A second invite for the same
	// (group, email) or a reused token hash is ErrAlreadyExists.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByID(ctx context.Context, groupID, id string) (domain.Invite, error)

	// GetInviteByTokenHash looks up an invite by the fingerprint of its
	// current token.
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	GetInviteByGroupEmail(ctx context.Context, groupID, email string) (domain.Invite, error)

	// ListInvitesByGroup returns invites newest first.
	ListInvitesByGroup(ctx context.Context, groupID string) ([]domain.Invite, error)

	// ReissueInvite resets an invite to pending with a new token hash and
	// expiry, clearing any response. invited_at is preserved.
	ReissueInvite(ctx context.Context, inv domain.Invite) error

	// TransitionInviteStatus moves an invite from one status to another.
	// It is a compare-and-swap: ErrStale when the current status is not from.
	TransitionInviteStatus(ctx context.Context, t InviteTransition) error

	DeleteInvitesByGroup(ctx context.Context, groupID string) error
}

// InviteTransition describes a conditional status change.
type InviteTransition struct {
	ID          string
	From        domain.InviteStatus
	To          domain.InviteStatus
	AcceptedAt  *time.Time
	RespondedBy string
	Now         time.Time
}
