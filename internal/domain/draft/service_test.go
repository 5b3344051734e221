package draft_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend/mocks"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/draft"
)

func newFixture(t *testing.T) (*draft.Service, *mocks.API) {
	t.Helper()
	api := &mocks.API{}
	svc := draft.NewService(api, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, api
}

func TestService_StartsUnknown(t *testing.T) {
	svc, _ := newFixture(t)
	require.Equal(t, draft.StateUnknown, svc.State())
}

func TestService_RefreshReady(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t)

	api.On("Health", ctx).Return(&backend.HealthStatus{Status: "healthy", System: backend.SystemReady}, nil)
	api.On("ContractTypes", ctx).Return(&backend.ContractCatalog{
		Status:         "success",
		TotalContracts: 5,
		ContractTypes:  []backend.ContractType{{Type: "NDA", Count: 5}},
	}, nil)

	require.Equal(t, draft.StateReady, svc.Refresh(ctx))
	require.Equal(t, draft.StateReady, svc.State())
	require.NotNil(t, svc.Catalog())
	require.Equal(t, 5, svc.Catalog().TotalContracts)
}

func TestService_RefreshNotReady(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t)

	api.On("Health", ctx).Return(&backend.HealthStatus{Status: "healthy", System: "initializing"}, nil)

	require.Equal(t, draft.StateNotReady, svc.Refresh(ctx))
	api.AssertNotCalled(t, "ContractTypes", mock.Anything)
}

func TestService_RefreshHealthFailure(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t)

	api.On("Health", ctx).Return(nil, errors.New("connection refused"))

	require.Equal(t, draft.StateNotReady, svc.Refresh(ctx))
}

func TestService_RefreshReadyDespiteCatalogFailure(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t)

	api.On("Health", ctx).Return(&backend.HealthStatus{System: backend.SystemReady}, nil)
	api.On("ContractTypes", ctx).Return(nil, errors.New("catalog unavailable"))

	require.Equal(t, draft.StateReady, svc.Refresh(ctx))
	require.Nil(t, svc.Catalog())
}

func TestService_Initialize(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t)

	api.On("Initialize", ctx, false).Return(nil)
	api.On("Health", ctx).Return(&backend.HealthStatus{System: backend.SystemReady}, nil)
	api.On("ContractTypes", ctx).Return(&backend.ContractCatalog{}, nil)

	require.NoError(t, svc.Initialize(ctx))
	require.Equal(t, draft.StateReady, svc.State())
}

func TestService_InitializeFailureLeavesState(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t)

	api.On("Initialize", ctx, false).Return(errors.New("corpus missing"))

	require.Error(t, svc.Initialize(ctx))
	require.Equal(t, draft.StateUnknown, svc.State())
	api.AssertNotCalled(t, "Health", mock.Anything)
}

func TestService_DraftValidation(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t)

	_, err := svc.Draft(ctx, "  ")
	require.ErrorIs(t, err, draft.ErrEmptyQuery)

	_, err = svc.Draft(ctx, "draft an indemnity clause")
	require.ErrorIs(t, err, draft.ErrNotReady)

	api.AssertNotCalled(t, "Draft", mock.Anything, mock.Anything)
}

func TestService_Draft(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t)

	api.On("Health", ctx).Return(&backend.HealthStatus{System: backend.SystemReady}, nil)
	api.On("ContractTypes", ctx).Return(&backend.ContractCatalog{}, nil)
	api.On("Draft", ctx, "draft an indemnity clause").Return(&backend.DraftResult{
		Query:           "draft an indemnity clause",
		GeneratedClause: "Each party shall indemnify...",
		Status:          "success",
	}, nil)

	svc.Refresh(ctx)
	result, err := svc.Draft(ctx, "draft an indemnity clause")
	require.NoError(t, err)
	require.Equal(t, "Each party shall indemnify...", result.GeneratedClause)
}

func TestService_DraftTimeout(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t)

	api.On("Health", ctx).Return(&backend.HealthStatus{System: backend.SystemReady}, nil)
	api.On("ContractTypes", ctx).Return(&backend.ContractCatalog{}, nil)
	api.On("Draft", ctx, "draft a clause").Return(nil, context.DeadlineExceeded)

	svc.Refresh(ctx)
	_, err := svc.Draft(ctx, "draft a clause")
	require.ErrorIs(t, err, draft.ErrTimedOut)
}
