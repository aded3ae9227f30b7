package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store keeps live sessions in memory, keyed by id. A janitor goroutine
// evicts sessions idle longer than the TTL; eviction is the only way state
// leaves the process.
type Store struct {
	ttl      time.Duration
	sweep    time.Duration
	toastTTL time.Duration
	log      *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	done    chan struct{}
	closeCh chan struct{}
}

func NewStore(ttl, sweep, toastTTL time.Duration, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		ttl:      ttl,
		sweep:    sweep,
		toastTTL: toastTTL,
		log:      log,
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
		closeCh:  make(chan struct{}),
	}
}

// Start launches the eviction janitor.
func (s *Store) Start(ctx context.Context) {
	go func() {
		t := time.NewTicker(s.sweep)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				s.shutdown()
				return
			case <-s.done:
				s.shutdown()
				return
			case now := <-t.C:
				if n := s.evictIdle(now); n > 0 {
					s.log.Info("evicted idle sessions", zap.Int("count", n))
				}
			}
		}
	}()
}

// Get returns the session for id, if it is still live.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// GetOrCreate resolves id to a live session, minting a fresh one when the
// id is empty or unknown (an expired session looks like a new visitor).
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := newSession(uuid.NewString(), s.toastTTL, time.Now())
	s.sessions[sess.ID()] = sess
	return sess, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) evictIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.idleSince()) > s.ttl {
			sess.close()
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Store) shutdown() {
	s.mu.Lock()
	for id, sess := range s.sessions {
		sess.close()
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	close(s.closeCh)
}

// Close stops the janitor and releases all sessions.
func (s *Store) Close() { close(s.done) }

// WaitClosed blocks until the janitor has finished shutting down.
func (s *Store) WaitClosed() { <-s.closeCh }
