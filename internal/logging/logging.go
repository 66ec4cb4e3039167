// Package logging builds the kratos logger shared by every component.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

const serviceName = "tabdo"

// New returns a logger writing to w, dropping records below level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) log.Logger {
	logger := log.With(log.NewStdLogger(w),
		"ts", log.Timestamp(time.DateTime),
		"service.name", serviceName,
	)
	return log.NewFilter(logger, log.FilterLevel(log.ParseLevel(level)))
}

// Open returns a logger appending to path. An empty path discards output.
// The returned closer must be called on shutdown.
func Open(path, level string) (log.Logger, io.Closer, error) {
	if path == "" {
		return New(io.Discard, level), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return New(f, level), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
