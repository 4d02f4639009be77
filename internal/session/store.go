// Package session holds the server's live login sessions in memory.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"
)

const (
	// IdleTimeout is how long a session survives without being used.
	IdleTimeout = 30 * time.Minute
	// SweepInterval is how often the background sweep evicts idle sessions.
	SweepInterval = 60 * time.Second
)

type record struct {
	username string
	lastUsed time.Time
}

// Store maps opaque tokens to logged-in accounts. All operations take the
// lock only for the in-memory lookup or mutation; nothing blocks while
// holding it.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*record
	now      func() time.Time
	logger   *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*record),
		now:      time.Now,
		logger:   logger,
	}
}

// Create opens a session for the given account and returns its token.
// The token is 32 crypto-random bytes, hex-encoded. An account may hold any
// number of concurrent sessions.
func (s *Store) Create(username string) string {
	tokenBytes := make([]byte, 32)
	rand.Read(tokenBytes)
	token := hex.EncodeToString(tokenBytes)

	s.mu.Lock()
	s.sessions[token] = &record{username: username, lastUsed: s.now()}
	s.mu.Unlock()
	return token
}

// TouchAndValidate looks up a token. A missing or idle-expired session
// reports false; otherwise the idle clock is reset and the owning account's
// username returned. Expiry is checked lazily here as well as by the sweep.
func (s *Store) TouchAndValidate(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[token]
	if !ok {
		return "", false
	}
	now := s.now()
	if now.Sub(rec.lastUsed) > IdleTimeout {
		return "", false
	}
	rec.lastUsed = now
	return rec.username, true
}

// Invalidate removes the session for the given token. Removing a token that
// does not exist is not an error.
func (s *Store) Invalidate(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of live (possibly expired but unswept) sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweep evicts sessions idle past the timeout and returns the eviction count.
// The cutoff comparison happens under the same lock TouchAndValidate uses, so
// a session refreshed after the sweep started is never lost.
func (s *Store) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-IdleTimeout)
	evicted := 0
	for token, rec := range s.sessions {
		if rec.lastUsed.Before(cutoff) {
			delete(s.sessions, token)
			evicted++
		}
	}
	return evicted
}

// Run sweeps the store on a fixed interval until ctx is cancelled. Meant to
// run as a background goroutine started from main.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				s.logger.Info("evicted idle sessions", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}
