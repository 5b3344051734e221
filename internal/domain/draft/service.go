// Package draft fronts the clause-drafting system: readiness checks,
// one-time initialization, the contract-type catalog, and drafting queries.
package draft

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
)

// State is the drafting system's readiness as last observed.
type State string

const (
	StateUnknown  State = "unknown"
	StateChecking State = "checking"
	StateReady    State = "ready"
	StateNotReady State = "not_ready"
)

// API is the slice of the backend surface drafting needs.
type API interface {
	Health(ctx context.Context) (*backend.HealthStatus, error)
	Initialize(ctx context.Context, force bool) error
	ContractTypes(ctx context.Context) (*backend.ContractCatalog, error)
	Draft(ctx context.Context, query string) (*backend.DraftResult, error)
}

// Service gates drafting queries on system readiness.
type Service struct {
	api    API
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	catalog *backend.ContractCatalog
	busy    bool
}

// NewService creates a drafting service in the unknown state.
func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger, state: StateUnknown}
}

// State returns the last observed readiness.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Catalog returns the contract-type catalog, nil until fetched.
func (s *Service) Catalog() *backend.ContractCatalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// Refresh polls the health endpoint and updates the readiness state. When
// the system is ready the catalog is refreshed too; a catalog failure only
// logs, readiness stands on its own.
func (s *Service) Refresh(ctx context.Context) State {
	s.setState(StateChecking)

	health, err := s.api.Health(ctx)
	if err != nil {
		s.logger.Warn("health check failed", "error", err)
		s.setState(StateNotReady)
		return StateNotReady
	}
	if health.System != backend.SystemReady {
		s.setState(StateNotReady)
		return StateNotReady
	}

	catalog, err := s.api.ContractTypes(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch contract catalog", "error", err)
	}

	s.mu.Lock()
	s.state = StateReady
	if catalog != nil {
		s.catalog = catalog
	}
	s.mu.Unlock()
	return StateReady
}

// Initialize asks the backend to build the drafting system, then refreshes.
// An initialization failure leaves the current state untouched.
func (s *Service) Initialize(ctx context.Context) error {
	if err := s.api.Initialize(ctx, false); err != nil {
		s.logger.Warn("initialization failed", "error", err)
		return err
	}
	s.Refresh(ctx)
	return nil
}

// Draft submits a drafting query. The query must be non-blank and the system
// ready before any network traffic; concurrent queries are rejected.
func (s *Service) Draft(ctx context.Context, query string) (*backend.DraftResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return nil, ErrNotReady
	}
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	result, err := s.api.Draft(ctx, query)
	if err != nil {
		if backend.IsTimeout(err) {
			return nil, ErrTimedOut
		}
		return nil, err
	}
	return result, nil
}

func (s *Service) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
