package groupsdk

import "time"

// ============================================================================
// Groups
// ============================================================================

// CreateGroupRequest is the body of POST /v1/groups.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// UpdateGroupRequest is the body of PATCH /v1/groups/{id}.
type UpdateGroupRequest struct {
	Name string `json:"name"`
}

// GroupResponse describes a group. Members is only filled by the detail
// endpoints.
type GroupResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	InviteCode string           `json:"invite_code,omitempty"`
	CreatedBy  string           `json:"created_by"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Members    []MemberResponse `json:"members,omitempty"`
}

// ListGroupsResponse is returned by GET /v1/groups.
type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// MemberResponse describes one membership.
type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// CodeResponse carries a freshly regenerated invite code.
type CodeResponse struct {
	InviteCode string `json:"invite_code"`
}

// JoinGroupRequest is the body of POST /v1/groups/join.
type JoinGroupRequest struct {
	Code string `json:"code"`
}

// JoinGroupResponse reports the joined group. Joined is false when the
// caller was already a member.
type JoinGroupResponse struct {
	Group  GroupResponse `json:"group"`
	Joined bool          `json:"joined"`
}

// ============================================================================
// Invites
// ============================================================================

// SendInviteRequest is the body of POST /v1/groups/{id}/invites.
type SendInviteRequest struct {
	Email string `json:"email"`
}

// InviteResponse describes an invite. Token is only present on the response
// to a send or resend.
type InviteResponse struct {
	ID          string     `json:"id"`
	GroupID     string     `json:"group_id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	InvitedBy   string     `json:"invited_by"`
	InviterName string     `json:"inviter_name,omitempty"`
	InvitedAt   time.Time  `json:"invited_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	Token       string     `json:"token,omitempty"`
}

// ListInvitesResponse is returned by GET /v1/groups/{id}/invites.
type ListInvitesResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// Invite landing states.
const (
	InviteStateValidPending = "valid-pending"
	InviteStateAccepted     = "accepted"
	InviteStateDeclined     = "declined"
	InviteStateExpired      = "expired"
	InviteStateNotFound     = "not-found"
)

// InviteStateResponse is returned by GET /v1/invites/{token}.
type InviteStateResponse struct {
	State       string     `json:"state"`
	GroupID     string     `json:"group_id,omitempty"`
	GroupName   string     `json:"group_name,omitempty"`
	InviterName string     `json:"inviter_name,omitempty"`
	Email       string     `json:"email,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

// HealthChecks reports the status of the service's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
