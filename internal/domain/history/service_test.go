package history_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend/mocks"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/history"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
)

func newFixture(t *testing.T) (*history.Service, *localstore.Memory, *mocks.API) {
	t.Helper()
	api := &mocks.API{}
	store := localstore.NewMemory()
	svc := history.NewService(api, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, store, api
}

func TestService_Remote(t *testing.T) {
	ctx := context.Background()
	svc, _, api := newFixture(t)

	api.On("Documents", ctx).Return([]backend.DocumentRef{
		{ID: "doc-1", Filename: "nda.pdf"},
		{ID: "doc-2", Filename: "lease.pdf"},
	}, nil)

	refs, err := svc.Remote(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	require.Equal(t, "nda.pdf", refs[0].Filename)
}

func TestService_Detail(t *testing.T) {
	ctx := context.Background()
	svc, _, api := newFixture(t)

	api.On("Document", ctx, "doc-1").Return(&backend.StoredDocument{
		ID:       "doc-1",
		Filename: "nda.pdf",
		Summary:  backend.SummaryResult{ExecutiveSummary: "A mutual NDA."},
	}, nil)

	doc, err := svc.Detail(ctx, "doc-1")
	require.NoError(t, err)
	require.Equal(t, "A mutual NDA.", doc.Summary.ExecutiveSummary)
}

func TestService_DetailMissingID(t *testing.T) {
	svc, _, api := newFixture(t)

	_, err := svc.Detail(context.Background(), "")
	require.ErrorIs(t, err, history.ErrMissingID)
	api.AssertNotCalled(t, "Document", mock.Anything, mock.Anything)
}

func TestService_Local(t *testing.T) {
	ctx := context.Background()
	svc, store, api := newFixture(t)

	require.NoError(t, store.AppendAnalysis(ctx, localstore.Analysis{
		ID: "a-1", Filename: "nda.pdf", Status: "Completed", CreatedAt: time.Now(),
	}))

	entries, err := svc.Local(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "nda.pdf", entries[0].Filename)
	api.AssertNotCalled(t, "Documents", mock.Anything)
}
