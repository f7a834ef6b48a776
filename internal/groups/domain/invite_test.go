package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInviteStatusTerminal(t *testing.T) {
	require.False(t, InviteStatusPending.Terminal())
	for _, s := range []InviteStatus{InviteStatusAccepted, InviteStatusDeclined, InviteStatusExpired} {
		require.True(t, s.Terminal(), s)
	}
}

func TestInviteExpiredAt(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	inv := Invite{Status: InviteStatusPending, ExpiresAt: deadline}

	require.False(t, inv.ExpiredAt(deadline))
	require.True(t, inv.ExpiredAt(deadline.Add(time.Second)))

	inv.Status = InviteStatusAccepted
	require.False(t, inv.ExpiredAt(deadline.Add(time.Hour)))
}

func TestDecisionStatus(t *testing.T) {
	require.Equal(t, InviteStatusAccepted, DecisionAccept.Status())
	require.Equal(t, InviteStatusDeclined, DecisionDecline.Status())
}
