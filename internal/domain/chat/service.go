// Package chat manages the assistant conversation: transcript ordering,
// per-message delivery status, and the persisted session identifier.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Status tracks delivery of a user message.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Message is one transcript entry. Status is meaningful for user messages
// only; assistant messages are always delivered.
type Message struct {
	Role    Role
	Content string
	Status  Status
}

const (
	greeting        = "Hello! I am DocBot 🤖 — your AI-powered Document Analyzer. How can I assist you today?"
	clearedGreeting = "Chat cleared. Ready for a fresh start! 😊"
	apology         = "Oops! Something went wrong. Please try again."
)

// API is the slice of the backend surface the chat needs.
type API interface {
	Chat(ctx context.Context, message, sessionID string) (string, error)
	ClearSession(ctx context.Context, sessionID string) error
}

// Service holds the transcript and session id for one conversation.
type Service struct {
	api    API
	store  localstore.Store
	logger *slog.Logger

	mu        sync.Mutex
	sessionID string
	messages  []Message
	gen       int
}

// NewService creates a chat service, reusing the persisted session id when
// one exists and minting a fresh one otherwise. The transcript always opens
// with the assistant greeting.
func NewService(ctx context.Context, api API, store localstore.Store, logger *slog.Logger) (*Service, error) {
	s := &Service{
		api:      api,
		store:    store,
		logger:   logger,
		messages: []Message{{Role: RoleAssistant, Content: greeting, Status: StatusDelivered}},
	}

	id, err := store.Get(ctx, localstore.KeySessionID)
	switch {
	case errors.Is(err, localstore.ErrNotFound):
		id = newSessionID("")
		if err := store.Set(ctx, localstore.KeySessionID, id); err != nil {
			return nil, fmt.Errorf("persisting session id: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("loading session id: %w", err)
	}
	s.sessionID = id
	return s, nil
}

// SessionID returns the current conversation identifier.
func (s *Service) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Messages returns a copy of the transcript in order.
func (s *Service) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Send appends the user message and requests a reply. A blank message is a
// no-op. Delivery failures never surface as errors: the user message is
// marked failed and the assistant apologizes in the transcript instead.
func (s *Service) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	index := len(s.messages)
	gen := s.gen
	s.messages = append(s.messages, Message{Role: RoleUser, Content: text, Status: StatusPending})
	sessionID := s.sessionID
	s.mu.Unlock()

	reply, err := s.api.Chat(ctx, text, sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// The transcript was cleared while the request was in flight; the
		// reply belongs to the discarded conversation.
		return nil
	}
	if err != nil {
		s.logger.Warn("chat request failed", "error", err)
		s.messages[index].Status = StatusFailed
		s.messages = append(s.messages, Message{Role: RoleAssistant, Content: apology, Status: StatusDelivered})
		return nil
	}
	s.messages[index].Status = StatusDelivered
	s.messages = append(s.messages, Message{Role: RoleAssistant, Content: reply, Status: StatusDelivered})
	return nil
}

// Clear tears down the server-side session best-effort, rotates to a new
// session id distinct from the old one, and resets the transcript to the
// cleared greeting.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	old := s.sessionID
	s.mu.Unlock()

	if err := s.api.ClearSession(ctx, old); err != nil {
		s.logger.Warn("failed to clear server-side session", "error", err)
	}

	next := newSessionID(old)
	if err := s.store.Set(ctx, localstore.KeySessionID, next); err != nil {
		return fmt.Errorf("persisting session id: %w", err)
	}

	s.mu.Lock()
	s.sessionID = next
	s.gen++
	s.messages = []Message{{Role: RoleAssistant, Content: clearedGreeting, Status: StatusDelivered}}
	s.mu.Unlock()
	return nil
}

// newSessionID mints a millisecond-stamped id, bumped when it would collide
// with the previous one.
func newSessionID(previous string) string {
	millis := time.Now().UnixMilli()
	id := "session-" + strconv.FormatInt(millis, 10)
	if id == previous {
		id = "session-" + strconv.FormatInt(millis+1, 10)
	}
	return id
}
