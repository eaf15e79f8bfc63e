// Package runlog writes a structured JSON log of each provisioning run to a
// file in the site directory.
package runlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileName is the log file created in the site directory.
const FileName = "provision.log"

// Setup opens the run log in dir and returns a logger plus a cleanup func
// that closes the underlying file.
func Setup(dir string) (*slog.Logger, func() error, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening run log %s: %w", path, err)
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	logger := slog.New(h)
	logger.Info("runlog.opened", "path", path)

	cleanup := func() error {
		return f.Close()
	}
	return logger, cleanup, nil
}
