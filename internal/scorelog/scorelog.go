// Package scorelog records one audit event per scored resume and reads the log back.
package scorelog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventMessage is the log message of every scoring event.
const EventMessage = "Parsed resume"

// Entry is a single scoring event.
type Entry struct {
	ID       uuid.UUID `json:"event_id"`
	Time     time.Time `json:"time"`
	Filename string    `json:"filename"`
	Score    int       `json:"score"`
}

// Sink receives scoring events.
type Sink interface {
	Record(ctx context.Context, filename string, score int) error
}

// NopSink discards every event.
type NopSink struct{}

// Record implements Sink.
func (NopSink) Record(context.Context, string, int) error { return nil }

// FileSink appends scoring events as JSON lines to a file.
type FileSink struct {
	file   *os.File
	logger *slog.Logger
}

// NewFileSink opens (or creates) the log file at path in append mode.
// Missing parent directories are created.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	return &FileSink{
		file:   f,
		logger: slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}, nil
}

// Record writes one event line and reports any write failure.
func (s *FileSink) Record(ctx context.Context, filename string, score int) error {
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, EventMessage, 0)
	rec.AddAttrs(
		slog.String("event_id", uuid.NewString()),
		slog.String("filename", filename),
		slog.Int("score", score),
	)
	if err := s.logger.Handler().Handle(ctx, rec); err != nil {
		return fmt.Errorf("failed to write score event: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	return s.file.Close()
}

// MemorySink keeps events in memory.
type MemorySink struct {
	mu      sync.Mutex
	entries []Entry
}

// Record implements Sink.
func (s *MemorySink) Record(_ context.Context, filename string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{
		ID:       uuid.New(),
		Time:     time.Now(),
		Filename: filename,
		Score:    score,
	})
	return nil
}

// Entries returns a copy of the recorded events in arrival order.
func (s *MemorySink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}
