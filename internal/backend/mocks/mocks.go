// Package mocks provides a testify mock of the backend API for service tests.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
)

// API mocks the backend client surface.
type API struct {
	mock.Mock
}

func (m *API) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *API) Register(ctx context.Context, name, email, password string) (string, error) {
	args := m.Called(ctx, name, email, password)
	return args.String(0), args.Error(1)
}

func (m *API) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *API) User(ctx context.Context) (backend.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(backend.UserProfile), args.Error(1)
}

func (m *API) Summarize(ctx context.Context, filename string, file io.Reader) (*backend.SummaryResult, error) {
	args := m.Called(ctx, filename, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.SummaryResult), args.Error(1)
}

func (m *API) Chat(ctx context.Context, message, sessionID string) (string, error) {
	args := m.Called(ctx, message, sessionID)
	return args.String(0), args.Error(1)
}

func (m *API) ClearSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *API) Documents(ctx context.Context) ([]backend.DocumentRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.DocumentRef), args.Error(1)
}

func (m *API) Document(ctx context.Context, id string) (*backend.StoredDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.StoredDocument), args.Error(1)
}

func (m *API) Health(ctx context.Context) (*backend.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.HealthStatus), args.Error(1)
}

func (m *API) Initialize(ctx context.Context, force bool) error {
	args := m.Called(ctx, force)
	return args.Error(0)
}

func (m *API) ContractTypes(ctx context.Context) (*backend.ContractCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.ContractCatalog), args.Error(1)
}

func (m *API) Draft(ctx context.Context, query string) (*backend.DraftResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.DraftResult), args.Error(1)
}

func (m *API) DownloadPDF(ctx context.Context, payload any) ([]byte, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
