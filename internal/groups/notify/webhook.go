package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/pkg/slogx"
)

// WebhookDispatcher POSTs invite notifications as JSON to URL, leaving
// delivery (email, push) to whatever sits behind it.
type WebhookDispatcher struct {
	URL        string
	HTTPClient *http.Client
}

// NewWebhookDispatcher returns a dispatcher with a bounded client timeout.
func NewWebhookDispatcher(url string) *WebhookDispatcher {
	return &WebhookDispatcher{
		URL: url,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// InvitePayload is the webhook request body.
type InvitePayload struct {
	Type        string `json:"type"`
	Email       string `json:"email"`
	GroupName   string `json:"group_name"`
	InviterName string `json:"inviter_name"`
	InviteURL   string `json:"invite_url"`
	Token       string `json:"token"`
}

const payloadTypeInvite = "group.invite"

func (d *WebhookDispatcher) DispatchInvite(ctx context.Context, n service.InviteNotification) error {
	body, err := json.Marshal(InvitePayload{
		Type:        payloadTypeInvite,
		Email:       n.Email,
		GroupName:   n.GroupName,
		InviterName: n.InviterName,
		InviteURL:   n.InviteURL,
		Token:       n.Token,
	})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id := slogx.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	client := d.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}

	slogx.FromContext(ctx).Debug("invite notification delivered",
		slog.String("email", n.Email),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}
