package domain

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
	InviteStatusExpired  InviteStatus = "expired"
)

// Terminal reports whether the status can no longer change for the current
// token. Only pending is non-terminal.
func (s InviteStatus) Terminal() bool {
	return s != InviteStatusPending
}

type Invite struct {
	ID          string
	GroupID     string
	Email       string
	TokenHash   string
	Token       string // raw token, only populated straight after issue
	Status      InviteStatus
	InvitedBy   string
	InviterName string
	InvitedAt   time.Time
	AcceptedAt  *time.Time
	RespondedBy string // user that accepted or declined, empty otherwise
	ExpiresAt   time.Time
	UpdatedAt   time.Time
}

// ExpiredAt reports whether a pending invite is past its deadline at now.
func (i Invite) ExpiredAt(now time.Time) bool {
	return i.Status == InviteStatusPending && now.After(i.ExpiresAt)
}

// Decision is the invitee's response to an invite.
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// Status returns the terminal status a decision moves an invite to.
func (d Decision) Status() InviteStatus {
	if d == DecisionAccept {
		return InviteStatusAccepted
	}
	return InviteStatusDeclined
}
