package groupsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsBearerAndBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/groups", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body CreateGroupRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Roommates", body.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(GroupResponse{
			ID:         "g1",
			Name:       body.Name,
			InviteCode: "ABCD2345",
			CreatedAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/", "tok-1")
	g, err := c.CreateGroup(context.Background(), CreateGroupRequest{Name: "Roommates"})
	require.NoError(t, err)
	require.Equal(t, "g1", g.ID)
	require.Equal(t, "ABCD2345", g.InviteCode)
}

func TestClientEscapesPathSegments(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/invites/a%2Fb/accept", r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"i1","status":"accepted"}`))
	}))
	t.Cleanup(srv.Close)

	inv, err := NewClient(srv.URL, "tok").AcceptInvite(context.Background(), "a/b")
	require.NoError(t, err)
	require.Equal(t, "accepted", inv.Status)
}

func TestClientParsesAPIErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/invites/gone/accept":
			ErrExpired.WriteError(w)
		case "/v1/groups/g1/invites":
			e := NewAPIError(http.StatusBadGateway, ErrorCodeDeliveryFailed, "smtp down")
			e.Invite = &InviteResponse{ID: "i1", Email: "a@x.com", Status: "pending"}
			e.WriteError(w)
		default:
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("not json"))
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "tok")
	ctx := context.Background()

	_, err := c.AcceptInvite(ctx, "gone")
	require.ErrorIs(t, err, ErrExpired)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusGone, apiErr.StatusCode)

	_, err = c.SendInvite(ctx, "g1", SendInviteRequest{Email: "a@x.com"})
	require.ErrorIs(t, err, ErrDeliveryFailed)
	require.True(t, errors.As(err, &apiErr))
	require.NotNil(t, apiErr.Invite)
	require.Equal(t, "i1", apiErr.Invite.ID)

	err = c.DeleteGroup(ctx, "g2")
	require.ErrorIs(t, err, ErrServerError)
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusTeapot, apiErr.StatusCode)
}

func TestWithTokenCopiesClient(t *testing.T) {
	t.Parallel()

	a := NewClient("http://groups", "alice")
	b := a.WithToken("bob")
	require.Equal(t, "alice", a.AccessToken)
	require.Equal(t, "bob", b.AccessToken)
	require.Same(t, a.HTTPClient, b.HTTPClient)
}
