// Package localstore holds durable client-side state: the auth token, the
// chat session id, user preferences, and the local analysis history log.
// It replaces the ambient key-value storage the web front-end relied on with
// an explicit store that callers receive via injection.
package localstore

import (
	"context"
	"errors"
	"time"
)

// Well-known keys. Token and session id names match what the web client
// persisted, so state survives a migration of the backing file.
const (
	KeyToken     = "token"
	KeySessionID = "sessionId"

	KeyPrefAutoSave      = "pref.autosave"
	KeyPrefNotifications = "pref.notifications"
	KeyPrefDarkMode      = "pref.darkmode"
)

// ErrNotFound indicates the key has no stored value.
var ErrNotFound = errors.New("key not found")

// Analysis is one row of the local analysis history log.
type Analysis struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists client state across runs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	AppendAnalysis(ctx context.Context, entry Analysis) error
	ListAnalyses(ctx context.Context, limit int) ([]Analysis, error)
}
