// Package analyze validates document uploads, submits them for
// summarization, and records completed analyses locally.
package analyze

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
)

// Upload is a document selected for analysis.
type Upload struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// API is the slice of the backend surface analysis needs.
type API interface {
	Summarize(ctx context.Context, filename string, file io.Reader) (*backend.SummaryResult, error)
	DownloadPDF(ctx context.Context, payload any) ([]byte, error)
}

// Service runs document analysis. At most one analysis is in flight at a
// time; concurrent attempts are rejected rather than queued.
type Service struct {
	api    API
	store  localstore.Store
	logger *slog.Logger
	busy   atomic.Bool
}

// NewService creates an analysis service.
func NewService(api API, store localstore.Store, logger *slog.Logger) *Service {
	return &Service{api: api, store: store, logger: logger}
}

// Busy reports whether an analysis is currently in flight.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// Analyze validates the upload and submits it for summarization. Validation
// happens before any network traffic. On success the analysis is appended to
// the local history unless the auto-save preference is off.
func (s *Service) Analyze(ctx context.Context, upload *Upload) (*backend.SummaryResult, error) {
	if upload == nil || upload.Reader == nil || upload.Name == "" {
		return nil, ErrNoFile
	}
	if !strings.HasSuffix(strings.ToLower(upload.Name), ".pdf") {
		return nil, ErrUnsupportedType
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.busy.Store(false)

	start := time.Now()
	result, err := s.api.Summarize(ctx, upload.Name, upload.Reader)
	if err != nil {
		if backend.IsTimeout(err) {
			s.logger.Warn("analysis timed out", "filename", upload.Name)
			return nil, ErrTimedOut
		}
		return nil, err
	}
	s.logger.Info("analysis completed", "filename", upload.Name, "elapsed", time.Since(start))

	if s.autoSaveEnabled(ctx) {
		entry := localstore.Analysis{
			ID:        uuid.NewString(),
			Filename:  upload.Name,
			Status:    "Completed",
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.AppendAnalysis(ctx, entry); err != nil {
			s.logger.Warn("failed to record analysis locally", "error", err)
		}
	}
	return result, nil
}

// DownloadPDF renders an analysis result back to PDF bytes.
func (s *Service) DownloadPDF(ctx context.Context, result *backend.SummaryResult) ([]byte, error) {
	if result == nil {
		return nil, ErrNoFile
	}
	return s.api.DownloadPDF(ctx, result)
}

// autoSaveEnabled defaults to on when the preference was never set.
func (s *Service) autoSaveEnabled(ctx context.Context) bool {
	value, err := s.store.Get(ctx, localstore.KeyPrefAutoSave)
	if errors.Is(err, localstore.ErrNotFound) {
		return true
	}
	if err != nil {
		s.logger.Warn("failed to read auto-save preference", "error", err)
		return true
	}
	return value != "false"
}
