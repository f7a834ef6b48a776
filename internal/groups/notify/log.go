package notify

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/pkg/slogx"
)

// LogDispatcher writes invite notifications to the request logger instead of
// delivering them. Used when no webhook is configured.
type LogDispatcher struct{}

func (LogDispatcher) DispatchInvite(ctx context.Context, n service.InviteNotification) error {
	slogx.FromContext(ctx).Info("invite notification",
		slog.String("email", n.Email),
		slog.String("group_name", n.GroupName),
		slog.String("inviter_name", n.InviterName),
		slog.String("invite_url", n.InviteURL),
	)
	return nil
}
