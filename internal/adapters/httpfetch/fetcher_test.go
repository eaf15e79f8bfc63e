package httpfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Run("downloads the file to the destination", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("node_modules/\nwp-content/uploads/\n"))
		}))
		defer server.Close()

		dest := filepath.Join(t.TempDir(), ".gitignore")
		f := NewFetcher(5 * time.Second)

		if err := f.Fetch(context.Background(), server.URL, dest); err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}

		got, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("reading destination: %v", err)
		}
		if string(got) != "node_modules/\nwp-content/uploads/\n" {
			t.Errorf("destination content = %q", got)
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		dest := filepath.Join(t.TempDir(), "nested", "dir", "file.txt")
		f := NewFetcher(5 * time.Second)

		if err := f.Fetch(context.Background(), server.URL, dest); err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if _, err := os.Stat(dest); err != nil {
			t.Errorf("destination missing: %v", err)
		}
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		dest := filepath.Join(t.TempDir(), "out")
		f := NewFetcher(5 * time.Second)

		if err := f.Fetch(context.Background(), server.URL, dest); err == nil {
			t.Error("Fetch() expected error for 404 response")
		}
	})

	t.Run("cancelled context aborts the download", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dest := filepath.Join(t.TempDir(), "out")
		f := NewFetcher(5 * time.Second)

		if err := f.Fetch(ctx, server.URL, dest); err == nil {
			t.Error("Fetch() expected error for cancelled context")
		}
	})

	t.Run("invalid url is an error", func(t *testing.T) {
		f := NewFetcher(0)
		if err := f.Fetch(context.Background(), "://not-a-url", filepath.Join(t.TempDir(), "out")); err == nil {
			t.Error("Fetch() expected error for invalid url")
		}
	})
}
