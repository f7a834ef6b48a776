package service

import "context"

// InviteNotification is the intent emitted after an invite is persisted. The
// token is raw and only ever leaves the service through here.
type InviteNotification struct {
	Email       string
	Token       string
	GroupName   string
	InviterName string
	InviteURL   string
}

// NotificationDispatcher delivers invite notifications. Delivery is not
// retried by the services.
type NotificationDispatcher interface {
	DispatchInvite(ctx context.Context, n InviteNotification) error
}
