package http

import (
	"net/http"

	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/pkg/groupsdk"
	"github.com/aussiebroadwan/kitty/pkg/httpx"
)

type GroupsHandler struct {
	Groups *service.GroupService
}

// HandleCreate godoc
//
//	@Summary		Create a group
//	@Description	Creates a group with the caller as its first admin and a fresh invite code.
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			request	body		groupsdk.CreateGroupRequest	true	"Group name"
//	@Success		201		{object}	groupsdk.GroupResponse
//	@Failure		400		{object}	groupsdk.APIError
//	@Failure		401		{object}	groupsdk.APIError
//	@Failure		403		{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups [post].
func (h *GroupsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	var req groupsdk.CreateGroupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	detail, err := h.Groups.CreateGroup(r.Context(), req.Name, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toGroupResponse(detail.Group, detail.Members))
}

// HandleList godoc
//
//	@Summary		List my groups
//	@Description	Lists the groups the caller is a member of.
//	@Tags			Groups
//	@Produce		json
//	@Success		200	{object}	groupsdk.ListGroupsResponse
//	@Failure		401	{object}	groupsdk.APIError
//	@Failure		403	{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups [get].
func (h *GroupsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	groups, err := h.Groups.ListGroups(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := groupsdk.ListGroupsResponse{Groups: make([]groupsdk.GroupResponse, len(groups))}
	for i, g := range groups {
		resp.Groups[i] = toGroupResponse(g, nil)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get a group
//	@Description	Returns a group with its members. The caller must be a member.
//	@Tags			Groups
//	@Produce		json
//	@Param			id	path		string	true	"Group ID"
//	@Success		200	{object}	groupsdk.GroupResponse
//	@Failure		403	{object}	groupsdk.APIError
//	@Failure		404	{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups/{id} [get].
func (h *GroupsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	detail, err := h.Groups.GetGroup(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGroupResponse(detail.Group, detail.Members))
}

// HandleUpdate godoc
//
//	@Summary		Rename a group
//	@Description	Renames a group. Requires the admin role.
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Group ID"
//	@Param			request	body		groupsdk.UpdateGroupRequest	true	"New name"
//	@Success		200		{object}	groupsdk.GroupResponse
//	@Failure		400		{object}	groupsdk.APIError
//	@Failure		403		{object}	groupsdk.APIError
//	@Failure		404		{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups/{id} [patch].
func (h *GroupsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	var req groupsdk.UpdateGroupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	g, err := h.Groups.UpdateGroup(r.Context(), r.PathValue("id"), req.Name, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGroupResponse(g, nil))
}

// HandleDelete godoc
//
//	@Summary		Delete a group
//	@Description	Deletes a group with all of its memberships and invites. Requires the admin role.
//	@Tags			Groups
//	@Param			id	path	string	true	"Group ID"
//	@Success		204
//	@Failure		403	{object}	groupsdk.APIError
//	@Failure		404	{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups/{id} [delete].
func (h *GroupsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	if err := h.Groups.DeleteGroup(r.Context(), r.PathValue("id"), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRegenerateCode godoc
//
//	@Summary		Regenerate the invite code
//	@Description	Replaces the group's invite code; the old code stops working immediately. Requires the admin role.
//	@Tags			Groups
//	@Produce		json
//	@Param			id	path		string	true	"Group ID"
//	@Success		200	{object}	groupsdk.CodeResponse
//	@Failure		403	{object}	groupsdk.APIError
//	@Failure		404	{object}	groupsdk.APIError
//	@Failure		409	{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups/{id}/code [post].
func (h *GroupsHandler) HandleRegenerateCode(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	code, err := h.Groups.RegenerateCode(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, groupsdk.CodeResponse{InviteCode: code})
}

// HandleJoin godoc
//
//	@Summary		Join by invite code
//	@Description	Joins the group currently holding the code. Joining a group you already belong to succeeds with joined=false.
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			request	body		groupsdk.JoinGroupRequest	true	"Invite code"
//	@Success		200		{object}	groupsdk.JoinGroupResponse
//	@Failure		400		{object}	groupsdk.APIError
//	@Failure		404		{object}	groupsdk.APIError	"Code not recognised"
//	@Security		BearerAuth
//	@Router			/v1/groups/join [post].
func (h *GroupsHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	var req groupsdk.JoinGroupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	res, err := h.Groups.JoinGroup(r.Context(), req.Code, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, groupsdk.JoinGroupResponse{
		Group:  toGroupResponse(res.Group, nil),
		Joined: res.Joined,
	})
}
