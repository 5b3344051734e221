// Package history lists analyzed documents, both the backend's stored
// copies and the local auto-saved log.
package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
)

const localLimit = 50

// API is the slice of the backend surface history needs.
type API interface {
	Documents(ctx context.Context) ([]backend.DocumentRef, error)
	Document(ctx context.Context, id string) (*backend.StoredDocument, error)
}

// Service reads document history.
type Service struct {
	api    API
	store  localstore.Store
	logger *slog.Logger
}

// NewService creates a history service.
func NewService(api API, store localstore.Store, logger *slog.Logger) *Service {
	return &Service{api: api, store: store, logger: logger}
}

// Remote lists documents stored by the backend, newest first as served.
func (s *Service) Remote(ctx context.Context) ([]backend.DocumentRef, error) {
	refs, err := s.api.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return refs, nil
}

// Detail fetches one stored document with its saved summary.
func (s *Service) Detail(ctx context.Context, id string) (*backend.StoredDocument, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	doc, err := s.api.Document(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching document %s: %w", id, err)
	}
	return doc, nil
}

// Local lists the auto-saved analysis log, newest first.
func (s *Service) Local(ctx context.Context) ([]localstore.Analysis, error) {
	entries, err := s.store.ListAnalyses(ctx, localLimit)
	if err != nil {
		return nil, fmt.Errorf("listing local analyses: %w", err)
	}
	return entries, nil
}
