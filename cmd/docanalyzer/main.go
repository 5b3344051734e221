package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/config"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/analyze"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/auth"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/chat"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/draft"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/history"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/session"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Stdout belongs to the TUI; logs go to a file when configured, and are
	// discarded otherwise.
	logWriter := io.Discard
	if logPath := os.Getenv("DOCANALYZER_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	store, err := localstore.Open(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open local store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	sessionStore, err := session.New(ctx, store, logger)
	if err != nil {
		logger.Error("failed to load session", "error", err)
		os.Exit(1)
	}

	api := backend.New(cfg.Backend.BaseURL, backend.Options{
		Timeout:        time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		Tokens:         sessionStore.Token,
		OnUnauthorized: func() { sessionStore.Clear(context.Background()) },
		Logger:         logger,
	})

	authSvc := auth.NewService(api, sessionStore, logger)
	analyzeSvc := analyze.NewService(api, store, logger)
	draftSvc := draft.NewService(api, logger)
	historySvc := history.NewService(api, store, logger)

	chatSvc, err := chat.NewService(ctx, api, store, logger)
	if err != nil {
		logger.Error("failed to start chat session", "error", err)
		os.Exit(1)
	}

	model := tui.NewModel(tui.Services{
		Session: sessionStore,
		Auth:    authSvc,
		Analyze: analyzeSvc,
		Chat:    chatSvc,
		Draft:   draftSvc,
		History: historySvc,
		Store:   store,
		Logger:  logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("tui error", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

type logFileWriter struct {
	path string
	file *os.File
	mu   sync.Mutex
}

func newLogFileWriter(path string) (*logFileWriter, *os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	writer := &logFileWriter{path: path, file: file}
	if err := writer.truncateIfNeeded(); err != nil {
		return nil, nil, err
	}
	return writer, file, nil
}

func (w *logFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.truncateIfNeeded(); err != nil {
		return n, err
	}
	return n, nil
}

// truncateIfNeeded keeps the tail of an oversized log file.
func (w *logFileWriter) truncateIfNeeded() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= maxLogSizeBytes {
		return nil
	}

	buf := make([]byte, keepLogSizeBytes)
	if _, err := w.file.Seek(size-keepLogSizeBytes, io.SeekStart); err != nil {
		return err
	}
	n, err := w.file.Read(buf)
	if err != nil && err != io.EOF {
		return err
	}
	buf = buf[:n]

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.file.Write(buf); err != nil {
		return err
	}
	_, err = w.file.Seek(0, io.SeekEnd)
	return err
}
