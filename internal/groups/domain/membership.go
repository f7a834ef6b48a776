package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type Membership struct {
	ID        string
	GroupID   string
	UserID    string
	Role      Role
	JoinedAt  time.Time
	UpdatedAt time.Time
}

func (m Membership) IsAdmin() bool { return m.Role == RoleAdmin }
