package http

import (
	"net/http"

	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/pkg/groupsdk"
	"github.com/aussiebroadwan/kitty/pkg/httpx"
)

type InvitesHandler struct {
	Groups *service.GroupService
}

// HandleList godoc
//
//	@Summary		List group invites
//	@Description	Lists the group's email invites. Pending invites past their deadline are reported as expired. Requires the admin role.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string	true	"Group ID"
//	@Success		200	{object}	groupsdk.ListInvitesResponse
//	@Failure		403	{object}	groupsdk.APIError
//	@Failure		404	{object}	groupsdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/groups/{id}/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	invites, err := h.Groups.ListInvites(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := groupsdk.ListInvitesResponse{Invites: make([]groupsdk.InviteResponse, len(invites))}
	for i, inv := range invites {
		resp.Invites[i] = toInviteResponse(inv)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleSend godoc
//
//	@Summary		Send an email invite
//	@Description	Issues (or refreshes) the invite for an email address and notifies it. Requires the admin role.
//	@Description	When the notification fails the invite is still stored and returned inside a 502 delivery_failed error.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Group ID"
//	@Param			request	body		groupsdk.SendInviteRequest	true	"Invitee email"
//	@Success		201		{object}	groupsdk.InviteResponse
//	@Failure		400		{object}	groupsdk.APIError
//	@Failure		403		{object}	groupsdk.APIError
//	@Failure		404		{object}	groupsdk.APIError
//	@Failure		502		{object}	groupsdk.APIError	"Invite stored, delivery failed"
//	@Security		BearerAuth
//	@Router			/v1/groups/{id}/invites [post].
func (h *InvitesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	userID, name, ok := caller(w, r)
	if !ok {
		return
	}

	var req groupsdk.SendInviteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	inv, err := h.Groups.SendInvite(r.Context(), service.SendInviteInput{
		GroupID:    r.PathValue("id"),
		Email:      req.Email,
		CallerID:   userID,
		CallerName: name,
	})
	writeInviteResult(w, r, inv, err, http.StatusCreated)
}

// HandleResend godoc
//
//	@Summary		Resend an invite
//	@Description	Issues a fresh token and deadline for an existing invite, reopening it if it was declined or expired. Requires the admin role.
//	@Tags			Invites
//	@Produce		json
//	@Param			id			path		string	true	"Group ID"
//	@Param			inviteID	path		string	true	"Invite ID"
//	@Success		200			{object}	groupsdk.InviteResponse
//	@Failure		403			{object}	groupsdk.APIError
//	@Failure		404			{object}	groupsdk.APIError
//	@Failure		502			{object}	groupsdk.APIError	"Invite stored, delivery failed"
//	@Security		BearerAuth
//	@Router			/v1/groups/{id}/invites/{inviteID}/resend [post].
func (h *InvitesHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	userID, name, ok := caller(w, r)
	if !ok {
		return
	}

	inv, err := h.Groups.ResendInvite(r.Context(), service.ResendInviteInput{
		GroupID:    r.PathValue("id"),
		InviteID:   r.PathValue("inviteID"),
		CallerID:   userID,
		CallerName: name,
	})
	writeInviteResult(w, r, inv, err, http.StatusOK)
}

// HandleState godoc
//
//	@Summary		Resolve an invite token
//	@Description	Classifies an invite for its landing page: valid-pending, accepted, declined, expired or not-found.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	path		string	true	"Invite token"
//	@Success		200		{object}	groupsdk.InviteStateResponse
//	@Security		BearerAuth
//	@Router			/v1/invites/{token} [get].
func (h *InvitesHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := caller(w, r); !ok {
		return
	}

	st, err := h.Groups.GetInviteState(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInviteStateResponse(st))
}

// HandleAccept godoc
//
//	@Summary		Accept an invite
//	@Description	Accepts a pending invite and joins its group. Accepting past the deadline marks the invite expired.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	path		string	true	"Invite token"
//	@Success		200		{object}	groupsdk.InviteResponse
//	@Failure		404		{object}	groupsdk.APIError
//	@Failure		409		{object}	groupsdk.APIError	"Already accepted or declined"
//	@Failure		410		{object}	groupsdk.APIError	"Expired"
//	@Security		BearerAuth
//	@Router			/v1/invites/{token}/accept [post].
func (h *InvitesHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	inv, err := h.Groups.AcceptInvite(r.Context(), r.PathValue("token"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInviteResponse(inv))
}

// HandleDecline godoc
//
//	@Summary		Decline an invite
//	@Description	Declines a pending invite.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	path		string	true	"Invite token"
//	@Success		200		{object}	groupsdk.InviteResponse
//	@Failure		404		{object}	groupsdk.APIError
//	@Failure		409		{object}	groupsdk.APIError	"Already accepted or declined"
//	@Failure		410		{object}	groupsdk.APIError	"Expired"
//	@Security		BearerAuth
//	@Router			/v1/invites/{token}/decline [post].
func (h *InvitesHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	inv, err := h.Groups.DeclineInvite(r.Context(), r.PathValue("token"), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInviteResponse(inv))
}
