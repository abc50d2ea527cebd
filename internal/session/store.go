// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"sync"
	"time"

	xglog "github.com/ManuGH/lookupbot/internal/log"
	"github.com/ManuGH/lookupbot/internal/metrics"
)

const (
	DefaultIdleTTL       = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Session is the dialog record of one conversation. Fields other than ID
// are only touched by the holder of the event lock.
type Session struct {
	ID string

	events  sync.Mutex
	pending Question

	// guarded by Store.mu
	lastActive time.Time
	inflight   int
}

// Pending returns the question the session is waiting on.
func (s *Session) Pending() Question {
	return s.pending
}

// EvictionPolicy decides whether an idle session may be dropped.
type EvictionPolicy func(id string, pending Question, lastActive, now time.Time) bool

// IdleFor evicts sessions inactive for at least ttl.
func IdleFor(ttl time.Duration) EvictionPolicy {
	return func(_ string, _ Question, lastActive, now time.Time) bool {
		return now.Sub(lastActive) >= ttl
	}
}

// StoreOptions configures a Store. Zero values fall back to defaults.
type StoreOptions struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
	Evict         EvictionPolicy
	Now           func() time.Time
}

// Store keeps sessions in memory and serializes events per session.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	evict    EvictionPolicy
	interval time.Duration
	now      func() time.Time
}

// NewStore builds an empty store. Call Run to start idle eviction.
func NewStore(opts StoreOptions) *Store {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}
	if opts.Evict == nil {
		opts.Evict = IdleFor(opts.IdleTTL)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		sessions: make(map[string]*Session),
		evict:    opts.Evict,
		interval: opts.SweepInterval,
		now:      opts.Now,
	}
}

// Acquire returns the session for id, creating it on first use, with its
// event lock held. Every Acquire must be paired with Release.
func (st *Store) Acquire(id string) *Session {
	st.mu.Lock()
	s, ok := st.sessions[id]
	if !ok {
		s = &Session{ID: id}
		st.sessions[id] = s
		metrics.SetActiveSessions(len(st.sessions))
	}
	s.inflight++
	s.lastActive = st.now()
	st.mu.Unlock()

	s.events.Lock()
	return s
}

// Release unlocks the session and refreshes its activity time.
func (st *Store) Release(s *Session) {
	s.events.Unlock()

	st.mu.Lock()
	s.inflight--
	s.lastActive = st.now()
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops every session the eviction policy selects, skipping sessions
// with an event in flight. It returns the number dropped.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	count := 0
	for id, s := range st.sessions {
		if s.inflight > 0 {
			continue
		}
		// No event holds the lock, so reading pending is safe here.
		if st.evict(id, s.pending, s.lastActive, now) {
			delete(st.sessions, id)
			count++
		}
	}
	if count > 0 {
		metrics.RecordSessionEvictions(count)
		metrics.SetActiveSessions(len(st.sessions))
	}
	return count
}

// Run sweeps on every interval until ctx is done.
func (st *Store) Run(ctx context.Context) error {
	logger := xglog.WithComponent("session")
	ticker := time.NewTicker(st.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				logger.Debug().
					Str(xglog.FieldEvent, "session.evicted").
					Int("count", n).
					Msg("evicted idle sessions")
			}
		case <-ctx.Done():
			return nil
		}
	}
}
