package analyze_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend/mocks"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/analyze"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
)

func newFixture(t *testing.T) (*analyze.Service, *localstore.Memory, *mocks.API) {
	t.Helper()
	api := &mocks.API{}
	store := localstore.NewMemory()
	svc := analyze.NewService(api, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, store, api
}

func pdfUpload(content string) *analyze.Upload {
	return &analyze.Upload{
		Name:   "lease.pdf",
		Size:   int64(len(content)),
		Reader: strings.NewReader(content),
	}
}

func TestService_Analyze(t *testing.T) {
	ctx := context.Background()
	svc, store, api := newFixture(t)

	api.On("Summarize", ctx, "lease.pdf", mock.Anything).
		Return(&backend.SummaryResult{ExecutiveSummary: "A one year lease."}, nil)

	result, err := svc.Analyze(ctx, pdfUpload("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, "A one year lease.", result.ExecutiveSummary)

	// Auto-save defaults to on.
	entries, err := store.ListAnalyses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "lease.pdf", entries[0].Filename)
	require.Equal(t, "Completed", entries[0].Status)
	require.NotEmpty(t, entries[0].ID)
}

func TestService_AnalyzeNoFile(t *testing.T) {
	ctx := context.Background()
	svc, _, api := newFixture(t)

	_, err := svc.Analyze(ctx, nil)
	require.ErrorIs(t, err, analyze.ErrNoFile)
	api.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_AnalyzeRejectsNonPDF(t *testing.T) {
	ctx := context.Background()
	svc, _, api := newFixture(t)

	upload := &analyze.Upload{Name: "notes.txt", Size: 4, Reader: strings.NewReader("text")}
	_, err := svc.Analyze(ctx, upload)
	require.ErrorIs(t, err, analyze.ErrUnsupportedType)
	api.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_AnalyzeRejectsConcurrent(t *testing.T) {
	ctx := context.Background()
	svc, _, api := newFixture(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	api.On("Summarize", mock.Anything, "lease.pdf", mock.Anything).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(&backend.SummaryResult{}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Analyze(ctx, pdfUpload("%PDF-1.4"))
		require.NoError(t, err)
	}()

	<-entered
	require.True(t, svc.Busy())
	_, err := svc.Analyze(ctx, pdfUpload("%PDF-1.4"))
	require.ErrorIs(t, err, analyze.ErrBusy)

	close(release)
	wg.Wait()
	require.False(t, svc.Busy())
}

func TestService_AnalyzeRespectsAutoSaveOff(t *testing.T) {
	ctx := context.Background()
	svc, store, api := newFixture(t)
	require.NoError(t, store.Set(ctx, localstore.KeyPrefAutoSave, "false"))

	api.On("Summarize", ctx, "lease.pdf", mock.Anything).
		Return(&backend.SummaryResult{}, nil)

	_, err := svc.Analyze(ctx, pdfUpload("%PDF-1.4"))
	require.NoError(t, err)

	entries, err := store.ListAnalyses(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestService_AnalyzeTimeout(t *testing.T) {
	ctx := context.Background()
	svc, _, api := newFixture(t)

	api.On("Summarize", ctx, "lease.pdf", mock.Anything).
		Return(nil, context.DeadlineExceeded)

	_, err := svc.Analyze(ctx, pdfUpload("%PDF-1.4"))
	require.ErrorIs(t, err, analyze.ErrTimedOut)
	require.False(t, svc.Busy())
}

func TestService_DownloadPDF(t *testing.T) {
	ctx := context.Background()
	svc, _, api := newFixture(t)

	result := &backend.SummaryResult{ExecutiveSummary: "summary"}
	api.On("DownloadPDF", ctx, mock.Anything).Return([]byte("%PDF-1.4 rendered"), nil)

	data, err := svc.DownloadPDF(ctx, result)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4 rendered", string(data))
}
