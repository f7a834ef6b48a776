package http

import (
	"net/http"

	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/pkg/httpx"
)

type MembersHandler struct {
	Groups *service.GroupService
}

// HandleLeave godoc
//
//	@Summary		Leave a group
//	@Description	Removes the caller from the group. The last admin cannot leave while other members remain.
//	@Tags			Members
//	@Param			id	path	string	true	"Group ID"
//	@Success		204
//	@Failure		403	{object}	groupsdk.APIError
//	@Failure		404	{object}	groupsdk.APIError
//	@Failure		409	{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups/{id}/leave [post].
func (h *MembersHandler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	if err := h.Groups.LeaveGroup(r.Context(), r.PathValue("id"), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleToggleAdmin godoc
//
//	@Summary		Toggle admin role
//	@Description	Promotes a member to admin or demotes an admin to member. Requires the admin role; you cannot target yourself.
//	@Tags			Members
//	@Produce		json
//	@Param			id		path		string	true	"Group ID"
//	@Param			userID	path		string	true	"Target user ID"
//	@Success		200		{object}	groupsdk.MemberResponse
//	@Failure		403		{object}	groupsdk.APIError
//	@Failure		404		{object}	groupsdk.APIError
//	@Failure		409		{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups/{id}/members/{userID}/admin [post].
func (h *MembersHandler) HandleToggleAdmin(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	m, err := h.Groups.ToggleAdmin(r.Context(), r.PathValue("id"), r.PathValue("userID"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMemberResponse(m))
}

// HandleRemove godoc
//
//	@Summary		Remove a member
//	@Description	Removes another member from the group. Requires the admin role.
//	@Tags			Members
//	@Param			id		path	string	true	"Group ID"
//	@Param			userID	path	string	true	"Target user ID"
//	@Success		204
//	@Failure		403	{object}	groupsdk.APIError
//	@Failure		404	{object}	groupsdk.APIError
//	@Failure		409	{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups/{id}/members/{userID} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	if err := h.Groups.RemoveMember(r.Context(), r.PathValue("id"), r.PathValue("userID"), userID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
