// Package session tracks the authentication token and its derived
// authenticated flag, persisting the token across restarts.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
)

// Store holds the current token and authenticated flag. The flag is seeded
// from token presence and kept consistent on every login and logout
// transition; a failed login drops the flag without touching a prior token.
type Store struct {
	mu            sync.Mutex
	token         string
	authenticated bool
	store         localstore.Store
	logger        *slog.Logger
}

// New creates a Store seeded from the persisted token, if any. A missing key
// means an unauthenticated start; any other read failure is returned.
func New(ctx context.Context, store localstore.Store, logger *slog.Logger) (*Store, error) {
	s := &Store{store: store, logger: logger}

	token, err := store.Get(ctx, localstore.KeyToken)
	switch {
	case errors.Is(err, localstore.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("loading stored token: %w", err)
	default:
		s.token = token
		s.authenticated = token != ""
	}
	return s, nil
}

// Token returns the current token, empty when none is held.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether the session is considered logged in.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// SetToken stores a new token, persists it, and marks the session
// authenticated.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.store.Set(ctx, localstore.KeyToken, token); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

// Invalidate drops the authenticated flag without touching the token, the
// state after a rejected login attempt.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
}

// Clear drops the token and the flag. The in-memory state is always cleared;
// a failure to remove the persisted copy is logged but never blocks the
// transition.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.authenticated = false
	s.mu.Unlock()

	if err := s.store.Delete(ctx, localstore.KeyToken); err != nil {
		s.logger.Warn("failed to remove persisted token", "error", err)
	}
}
