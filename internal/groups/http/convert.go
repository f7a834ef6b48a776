package http

import (
	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/pkg/groupsdk"
)

func toGroupResponse(g domain.Group, members []domain.Membership) groupsdk.GroupResponse {
	resp := groupsdk.GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	if g.InviteCode != nil {
		resp.InviteCode = *g.InviteCode
	}
	if len(members) > 0 {
		resp.Members = make([]groupsdk.MemberResponse, len(members))
		for i, m := range members {
			resp.Members[i] = toMemberResponse(m)
		}
	}
	return resp
}

func toMemberResponse(m domain.Membership) groupsdk.MemberResponse {
	return groupsdk.MemberResponse{
		UserID:   m.UserID,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// toInviteResponse never includes the token; callers that just issued one
// set it explicitly.
func toInviteResponse(inv domain.Invite) groupsdk.InviteResponse {
	return groupsdk.InviteResponse{
		ID:          inv.ID,
		GroupID:     inv.GroupID,
		Email:       inv.Email,
		Status:      string(inv.Status),
		InvitedBy:   inv.InvitedBy,
		InviterName: inv.InviterName,
		InvitedAt:   inv.InvitedAt,
		ExpiresAt:   inv.ExpiresAt,
		AcceptedAt:  inv.AcceptedAt,
	}
}

func toInviteStateResponse(st service.InviteState) groupsdk.InviteStateResponse {
	resp := groupsdk.InviteStateResponse{State: string(st.Kind)}
	if st.Kind == service.InviteStateNotFound {
		return resp
	}

	expires := st.Invite.ExpiresAt
	resp.GroupID = st.Invite.GroupID
	resp.GroupName = st.GroupName
	resp.InviterName = st.InviterName
	resp.Email = st.Invite.Email
	resp.ExpiresAt = &expires
	return resp
}
