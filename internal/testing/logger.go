package testutil

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/wizzomafizzo/jsonsettings/internal/logging"
)

// LogBuffer collects log output and is safe for concurrent writers and readers.
type LogBuffer struct {
	buf strings.Builder
	mu  sync.Mutex
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p) //nolint:wrapcheck // strings.Builder never fails
}

// String returns everything written so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Count returns how many log lines contain substr.
func (b *LogBuffer) Count(substr string) int {
	n := 0
	for _, line := range strings.Split(b.String(), "\n") {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

// NewTestContext creates a context with logger for race-safe testing
// Returns a context with logger attached and the buffer receiving its output
func NewTestContext(t *testing.T) (context.Context, *LogBuffer) {
	t.Helper()

	logOutput := &LogBuffer{}

	ctx, err := logging.New(context.Background(), nil, logging.Config{
		Command: "test",
		Writer:  logOutput,
		Level:   zerolog.DebugLevel,
	})
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return ctx, logOutput
}
