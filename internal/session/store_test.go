package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	return NewStore(30*time.Minute, time.Minute, time.Minute, nil)
}

func TestGetOrCreate(t *testing.T) {
	s := testStore()

	sess, created := s.GetOrCreate("")
	require.True(t, created)
	require.NotEmpty(t, sess.ID())

	again, created := s.GetOrCreate(sess.ID())
	require.False(t, created)
	require.Same(t, sess, again)

	// an unknown id looks like an expired session: mint a fresh one
	other, created := s.GetOrCreate("no-such-session")
	require.True(t, created)
	require.NotEqual(t, sess.ID(), other.ID())
	require.Equal(t, 2, s.Len())
}

func TestEvictIdle(t *testing.T) {
	s := testStore()

	stale, _ := s.GetOrCreate("")
	fresh, _ := s.GetOrCreate("")
	require.Equal(t, 2, s.Len())

	// age out the first session only
	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	require.Equal(t, 1, s.evictIdle(time.Now()))
	_, ok := s.Get(stale.ID())
	require.False(t, ok)
	_, ok = s.Get(fresh.ID())
	require.True(t, ok)
}

func TestEvictionDropsState(t *testing.T) {
	s := testStore()

	sess, _ := s.GetOrCreate("")
	_, err := sess.AddToCart(item("Supreme Pizza", 1299), 1)
	require.NoError(t, err)

	sess.mu.Lock()
	sess.lastSeen = time.Now().Add(-time.Hour)
	sess.mu.Unlock()
	s.evictIdle(time.Now())

	// same id now resolves to a brand new, empty session
	reborn, created := s.GetOrCreate(sess.ID())
	require.True(t, created)
	lines, total := reborn.CartView()
	require.Empty(t, lines)
	require.Equal(t, 0, total)
}

func TestStoreShutdown(t *testing.T) {
	s := NewStore(time.Minute, 10*time.Millisecond, time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	_, _ = s.GetOrCreate("")
	s.Close()
	s.WaitClosed()
	require.Equal(t, 0, s.Len())
}
