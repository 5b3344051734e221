package localstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *localstore.DB {
	t.Helper()
	store, err := localstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDB_KVRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestDB(t)

	require.NoError(t, store.Set(ctx, localstore.KeyToken, "abc123"))

	value, err := store.Get(ctx, localstore.KeyToken)
	require.NoError(t, err)
	require.Equal(t, "abc123", value)

	// Overwrite replaces the previous value.
	require.NoError(t, store.Set(ctx, localstore.KeyToken, "def456"))
	value, err = store.Get(ctx, localstore.KeyToken)
	require.NoError(t, err)
	require.Equal(t, "def456", value)
}

func TestDB_GetMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestDB(t)

	_, err := store.Get(ctx, localstore.KeySessionID)
	require.ErrorIs(t, err, localstore.ErrNotFound)
}

func TestDB_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestDB(t)

	require.NoError(t, store.Set(ctx, localstore.KeyToken, "abc123"))
	require.NoError(t, store.Delete(ctx, localstore.KeyToken))
	require.NoError(t, store.Delete(ctx, localstore.KeyToken))

	_, err := store.Get(ctx, localstore.KeyToken)
	require.ErrorIs(t, err, localstore.ErrNotFound)
}

func TestDB_AnalysisLog(t *testing.T) {
	ctx := context.Background()
	store := newTestDB(t)

	base := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"nda.pdf", "lease.pdf", "msa.pdf"} {
		entry := localstore.Analysis{
			ID:        name,
			Filename:  name,
			Status:    "Completed",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.AppendAnalysis(ctx, entry))
	}

	entries, err := store.ListAnalyses(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "msa.pdf", entries[0].Filename)
	require.Equal(t, "lease.pdf", entries[1].Filename)
}
