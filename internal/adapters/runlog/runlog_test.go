package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	t.Run("creates the log file and writes JSON lines", func(t *testing.T) {
		dir := t.TempDir()

		logger, cleanup, err := Setup(dir)
		if err != nil {
			t.Fatalf("Setup() error = %v", err)
		}
		logger.Info("step.start", "step", "core-download")
		if err := cleanup(); err != nil {
			t.Fatalf("cleanup() error = %v", err)
		}

		b, err := os.ReadFile(filepath.Join(dir, FileName))
		if err != nil {
			t.Fatalf("reading log: %v", err)
		}
		out := string(b)
		if !strings.Contains(out, `"msg":"step.start"`) || !strings.Contains(out, `"step":"core-download"`) {
			t.Errorf("log content = %q", out)
		}
	})

	t.Run("appends across runs", func(t *testing.T) {
		dir := t.TempDir()

		for i := 0; i < 2; i++ {
			logger, cleanup, err := Setup(dir)
			if err != nil {
				t.Fatalf("Setup() error = %v", err)
			}
			logger.Info("run")
			if err := cleanup(); err != nil {
				t.Fatalf("cleanup() error = %v", err)
			}
		}

		b, err := os.ReadFile(filepath.Join(dir, FileName))
		if err != nil {
			t.Fatalf("reading log: %v", err)
		}
		if got := strings.Count(string(b), `"msg":"run"`); got != 2 {
			t.Errorf("run entries = %d, want 2", got)
		}
	})

	t.Run("unwritable directory is an error", func(t *testing.T) {
		if _, _, err := Setup(filepath.Join(t.TempDir(), "missing", "nested")); err == nil {
			t.Error("Setup() expected error for missing directory")
		}
	})
}
