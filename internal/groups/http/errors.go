package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/kitty/internal/groups/domain"
	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/pkg/groupsdk"
	"github.com/aussiebroadwan/kitty/pkg/httpx"
	"github.com/aussiebroadwan/kitty/pkg/slogx"
)

// writeServiceError maps a service error onto its HTTP status. Expired is
// checked before Conflict because an expired invite is both.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	desc := "internal server error"
	if errors.As(err, &svcErr) {
		desc = svcErr.Msg
	}

	var apiErr *groupsdk.APIError
	switch {
	case errors.Is(err, service.ErrExpired):
		apiErr = groupsdk.NewAPIError(http.StatusGone, groupsdk.ErrorCodeExpired, desc)
	case errors.Is(err, service.ErrNotFound):
		apiErr = groupsdk.NewAPIError(http.StatusNotFound, groupsdk.ErrorCodeNotFound, desc)
	case errors.Is(err, service.ErrForbidden):
		apiErr = groupsdk.NewAPIError(http.StatusForbidden, groupsdk.ErrorCodeForbidden, desc)
	case errors.Is(err, service.ErrConflict):
		apiErr = groupsdk.NewAPIError(http.StatusConflict, groupsdk.ErrorCodeConflict, desc)
	case errors.Is(err, service.ErrValidation):
		apiErr = groupsdk.NewAPIError(http.StatusBadRequest, groupsdk.ErrorCodeValidation, desc)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		apiErr = groupsdk.ErrServerError
	}
	apiErr.WriteError(w)
}

// writeInviteResult writes a freshly issued invite. A failed notification
// still returns the stored invite, under 502.
func writeInviteResult(w http.ResponseWriter, r *http.Request, inv domain.Invite, err error, okStatus int) {
	if err == nil {
		resp := toInviteResponse(inv)
		resp.Token = inv.Token
		httpx.WriteJSON(w, okStatus, resp)
		return
	}
	if !errors.Is(err, service.ErrDelivery) {
		writeServiceError(w, r, err)
		return
	}

	resp := toInviteResponse(inv)
	resp.Token = inv.Token
	apiErr := groupsdk.NewAPIError(http.StatusBadGateway, groupsdk.ErrorCodeDeliveryFailed,
		"invite stored but the notification could not be delivered")
	apiErr.Invite = &resp
	apiErr.WriteError(w)
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	groupsdk.NewAPIError(http.StatusBadRequest, groupsdk.ErrorCodeInvalidRequest, desc).WriteError(w)
}

// caller returns the authenticated user's id and display name.
func caller(w http.ResponseWriter, r *http.Request) (id, name string, ok bool) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok || claims.Subject == "" {
		groupsdk.NewAPIError(http.StatusUnauthorized, groupsdk.ErrorCodeInvalidToken,
			"authentication required").WriteError(w)
		return "", "", false
	}
	return claims.Subject, claims.DisplayName(), true
}
