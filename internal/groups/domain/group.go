package domain

import "time"

type Group struct {
	ID         string
	Name       string
	InviteCode *string // nil once the code has been cleared
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GroupMaxNameLength is counted in runes after trimming.
const GroupMaxNameLength = 100
