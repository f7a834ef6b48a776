package groupsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListInvites lists a group's email invites.
func (c *Client) ListInvites(ctx context.Context, groupID string) (*ListInvitesResponse, error) {
	return do[ListInvitesResponse](ctx, c, http.MethodGet, groupPath(groupID)+"/invites", nil, http.StatusOK)
}

// SendInvite invites an email address to the group. The returned invite
// carries the plaintext token.
//
// When the notification could not be delivered the invite still exists; the
// returned *APIError has code delivery_failed and the invite attached.
func (c *Client) SendInvite(ctx context.Context, groupID string, req SendInviteRequest) (*InviteResponse, error) {
	return do[InviteResponse](ctx, c, http.MethodPost, groupPath(groupID)+"/invites", req, http.StatusCreated)
}

// ResendInvite issues a fresh token and deadline for an existing invite.
func (c *Client) ResendInvite(ctx context.Context, groupID, inviteID string) (*InviteResponse, error) {
	path := groupPath(groupID) + "/invites/" + url.PathEscape(inviteID) + "/resend"
	return do[InviteResponse](ctx, c, http.MethodPost, path, nil, http.StatusOK)
}

// GetInviteState reports what the landing page for token should show.
func (c *Client) GetInviteState(ctx context.Context, token string) (*InviteStateResponse, error) {
	return do[InviteStateResponse](ctx, c, http.MethodGet, invitePath(token), nil, http.StatusOK)
}

// AcceptInvite accepts the invite and joins its group.
func (c *Client) AcceptInvite(ctx context.Context, token string) (*InviteResponse, error) {
	return do[InviteResponse](ctx, c, http.MethodPost, invitePath(token)+"/accept", nil, http.StatusOK)
}

// DeclineInvite declines the invite.
func (c *Client) DeclineInvite(ctx context.Context, token string) (*InviteResponse, error) {
	return do[InviteResponse](ctx, c, http.MethodPost, invitePath(token)+"/decline", nil, http.StatusOK)
}

func invitePath(token string) string {
	return "/v1/invites/" + url.PathEscape(token)
}
