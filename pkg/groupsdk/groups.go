package groupsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateGroup creates a group with the caller as its first admin.
func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (*GroupResponse, error) {
	return do[GroupResponse](ctx, c, http.MethodPost, "/v1/groups", req, http.StatusCreated)
}

// ListGroups lists the groups the caller belongs to.
func (c *Client) ListGroups(ctx context.Context) (*ListGroupsResponse, error) {
	return do[ListGroupsResponse](ctx, c, http.MethodGet, "/v1/groups", nil, http.StatusOK)
}

// GetGroup returns a group with its members.
func (c *Client) GetGroup(ctx context.Context, groupID string) (*GroupResponse, error) {
	return do[GroupResponse](ctx, c, http.MethodGet, groupPath(groupID), nil, http.StatusOK)
}

// UpdateGroup renames a group.
func (c *Client) UpdateGroup(ctx context.Context, groupID string, req UpdateGroupRequest) (*GroupResponse, error) {
	return do[GroupResponse](ctx, c, http.MethodPatch, groupPath(groupID), req, http.StatusOK)
}

// DeleteGroup deletes a group with its memberships and invites.
func (c *Client) DeleteGroup(ctx context.Context, groupID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, groupPath(groupID), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RegenerateCode replaces the group's invite code.
func (c *Client) RegenerateCode(ctx context.Context, groupID string) (*CodeResponse, error) {
	return do[CodeResponse](ctx, c, http.MethodPost, groupPath(groupID)+"/code", nil, http.StatusOK)
}

// JoinGroup joins the group whose invite code is code.
func (c *Client) JoinGroup(ctx context.Context, code string) (*JoinGroupResponse, error) {
	return do[JoinGroupResponse](ctx, c, http.MethodPost, "/v1/groups/join", JoinGroupRequest{Code: code}, http.StatusOK)
}

// LeaveGroup removes the caller from the group.
func (c *Client) LeaveGroup(ctx context.Context, groupID string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, groupPath(groupID)+"/leave", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ToggleAdmin flips a member between admin and member.
func (c *Client) ToggleAdmin(ctx context.Context, groupID, userID string) (*MemberResponse, error) {
	return do[MemberResponse](ctx, c, http.MethodPost, memberPath(groupID, userID)+"/admin", nil, http.StatusOK)
}

// RemoveMember removes another member from the group.
func (c *Client) RemoveMember(ctx context.Context, groupID, userID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, memberPath(groupID, userID), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func groupPath(groupID string) string {
	return "/v1/groups/" + url.PathEscape(groupID)
}

func memberPath(groupID, userID string) string {
	return groupPath(groupID) + "/members/" + url.PathEscape(userID)
}
