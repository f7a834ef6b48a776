package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/kitty/internal/groups/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []InviteNotification
	err  error
}

func (n *recordingNotifier) DispatchInvite(_ context.Context, msg InviteNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

func (n *recordingNotifier) last(t *testing.T) InviteNotification {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.sent)
	return n.sent[len(n.sent)-1]
}

var errSMTPDown = errors.New("smtp down")

type fixture struct {
	store    *sqlite.Store
	clock    *testClock
	notifier *recordingNotifier
	groups   *GroupService
	invites  *InvitationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "groups.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clock := newTestClock()
	notifier := &recordingNotifier{}
	invites := &InvitationService{Store: st, Now: clock.Now}

	return &fixture{
		store:    st,
		clock:    clock,
		notifier: notifier,
		invites:  invites,
		groups: &GroupService{
			Store:         st,
			Invitations:   invites,
			Notifier:      notifier,
			InviteTTL:     time.Hour,
			InviteBaseURL: "https://kitty.example/app",
			Now:           clock.Now,
		},
	}
}
