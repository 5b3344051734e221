// Package auth is the gateway between credentials and the session store:
// login, registration, logout, and the cached display name.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/session"
)

// FallbackName is shown when the profile cannot be fetched.
const FallbackName = "User"

const logoutTimeout = 10 * time.Second

// API is the slice of the backend surface the gateway needs.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	User(ctx context.Context) (backend.UserProfile, error)
}

// Service performs authentication transitions against the backend and keeps
// the session store consistent.
type Service struct {
	api     API
	session *session.Store
	logger  *slog.Logger

	mu          sync.Mutex
	displayName string
}

// NewService creates an auth gateway.
func NewService(api API, store *session.Store, logger *slog.Logger) *Service {
	return &Service{api: api, session: store, logger: logger}
}

// Login exchanges credentials for a token and stores it. On failure the
// session is marked unauthenticated but a previously stored token is left in
// place, and the backend's message is surfaced to the caller.
func (s *Service) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.session.Invalidate()
		return describeAuthFailure(err, "Login Failed")
	}
	if err := s.session.SetToken(ctx, token); err != nil {
		return err
	}
	s.logger.Info("logged in", "email", email)
	return nil
}

// Register creates an account and logs in with the returned token. Failure
// semantics mirror Login.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	token, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		s.session.Invalidate()
		return describeAuthFailure(err, "Registration Failed")
	}
	if err := s.session.SetToken(ctx, token); err != nil {
		return err
	}
	s.logger.Info("registered", "email", email)
	return nil
}

// Logout clears the local session immediately and notifies the backend in
// the background. The local transition never waits on, or fails with, the
// network call.
func (s *Service) Logout(ctx context.Context) {
	token := s.session.Token()

	s.session.Clear(ctx)
	s.mu.Lock()
	s.displayName = ""
	s.mu.Unlock()

	if token == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
		defer cancel()
		if err := s.api.Logout(ctx, token); err != nil {
			s.logger.Warn("server-side logout failed", "error", err)
		}
	}()
}

// DisplayName returns the user's name, fetching and caching it on first use.
// Any failure yields the fallback name; this never errors.
func (s *Service) DisplayName(ctx context.Context) string {
	s.mu.Lock()
	cached := s.displayName
	s.mu.Unlock()
	if cached != "" {
		return cached
	}

	profile, err := s.api.User(ctx)
	if err != nil || strings.TrimSpace(profile.Name) == "" {
		if err != nil {
			s.logger.Warn("failed to fetch user profile", "error", err)
		}
		return FallbackName
	}

	s.mu.Lock()
	s.displayName = profile.Name
	s.mu.Unlock()
	return profile.Name
}

// Initials derives avatar initials from a name: the uppercased first letter
// of the first and last whitespace-delimited words, or a single letter for a
// one-word name.
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	first := []rune(fields[0])[0]
	if len(fields) == 1 {
		return string(unicode.ToUpper(first))
	}
	last := []rune(fields[len(fields)-1])[0]
	return string(unicode.ToUpper(first)) + string(unicode.ToUpper(last))
}

// describeAuthFailure keeps a server-provided message and replaces everything
// else with a generic one the UI can show.
func describeAuthFailure(err error, fallback string) error {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr
	}
	return &backend.APIError{Message: fallback}
}
