package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/pkg/slogx"
	"github.com/stretchr/testify/require"
)

var sample = service.InviteNotification{
	Email:       "a@x.com",
	Token:       "tok",
	GroupName:   "Roommates",
	InviterName: "Una",
	InviteURL:   "https://kitty.example/invites/tok",
}

func TestWebhookDispatcherPostsJSON(t *testing.T) {
	var (
		got   InvitePayload
		reqID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		reqID = r.Header.Get("X-Request-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	ctx := slogx.WithRequestID(context.Background(), "req-1")
	d := NewWebhookDispatcher(srv.URL)
	require.NoError(t, d.DispatchInvite(ctx, sample))

	require.Equal(t, "group.invite", got.Type)
	require.Equal(t, "a@x.com", got.Email)
	require.Equal(t, "Roommates", got.GroupName)
	require.Equal(t, "Una", got.InviterName)
	require.Equal(t, sample.InviteURL, got.InviteURL)
	require.Equal(t, "tok", got.Token)
	require.Equal(t, "req-1", reqID)
}

func TestWebhookDispatcherReportsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	err := NewWebhookDispatcher(srv.URL).DispatchInvite(context.Background(), sample)
	require.ErrorContains(t, err, "502")

	srv.Close()
	err = NewWebhookDispatcher(srv.URL).DispatchInvite(context.Background(), sample)
	require.Error(t, err)
}

func TestLogDispatcherNeverFails(t *testing.T) {
	var d service.NotificationDispatcher = LogDispatcher{}
	require.NoError(t, d.DispatchInvite(context.Background(), sample))
}
