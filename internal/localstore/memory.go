package localstore

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests.
type Memory struct {
	mu       sync.Mutex
	values   map[string]string
	analyses []Analysis
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) AppendAnalysis(_ context.Context, entry Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses = append(m.analyses, entry)
	return nil
}

func (m *Memory) ListAnalyses(_ context.Context, limit int) ([]Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.analyses) {
		limit = len(m.analyses)
	}
	// Newest first, matching the SQLite implementation.
	entries := make([]Analysis, 0, limit)
	for i := len(m.analyses) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, m.analyses[i])
	}
	return entries, nil
}
