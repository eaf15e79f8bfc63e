package provisioning

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLicensedPluginURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		key      string
		want     string
	}{
		{
			name:     "key substituted into placeholder",
			endpoint: "https://licenses.example.com/download?p=pro&k=%s",
			key:      "abc123",
			want:     "https://licenses.example.com/download?p=pro&k=abc123",
		},
		{
			name:     "empty key leaves placeholder empty",
			endpoint: "https://licenses.example.com/download?p=pro&k=%s",
			key:      "",
			want:     "https://licenses.example.com/download?p=pro&k=",
		},
		{
			name:     "key is query-escaped",
			endpoint: "https://licenses.example.com/download?k=%s",
			key:      "a b&c",
			want:     "https://licenses.example.com/download?k=a+b%26c",
		},
		{
			name:     "endpoint without placeholder used as-is",
			endpoint: "https://licenses.example.com/download",
			key:      "abc123",
			want:     "https://licenses.example.com/download",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := licensedPluginURL(tt.endpoint, tt.key); got != tt.want {
				t.Errorf("licensedPluginURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDedupeIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		want []int
	}{
		{name: "no duplicates", ids: []int{1, 2, 3}, want: []int{1, 2, 3}},
		{name: "duplicates removed keeping first order", ids: []int{3, 1, 3, 2, 1}, want: []int{3, 1, 2}},
		{name: "empty input", ids: []int{}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupeIDs(tt.ids); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupeIDs(%v) = %v, want %v", tt.ids, got, tt.want)
			}
		})
	}
}

func TestRewriteThemeName(t *testing.T) {
	t.Run("replaces the Theme Name header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "style.css")
		content := "/*\nTheme Name: Starter Theme\nAuthor: Someone\n*/\nbody {}\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing stylesheet: %v", err)
		}

		if err := rewriteThemeName(path, "My Site"); err != nil {
			t.Fatalf("rewriteThemeName() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading stylesheet: %v", err)
		}
		if !strings.Contains(string(got), "Theme Name: My Site") {
			t.Errorf("header not replaced, got:\n%s", got)
		}
		if !strings.Contains(string(got), "Author: Someone") {
			t.Errorf("unrelated header lines were modified, got:\n%s", got)
		}
	})

	t.Run("handles titles containing dollar signs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "style.css")
		if err := os.WriteFile(path, []byte("Theme Name: Starter\n"), 0o644); err != nil {
			t.Fatalf("writing stylesheet: %v", err)
		}

		if err := rewriteThemeName(path, "Cash $ Carry"); err != nil {
			t.Fatalf("rewriteThemeName() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if !strings.Contains(string(got), "Theme Name: Cash $ Carry") {
			t.Errorf("dollar sign mangled, got:\n%s", got)
		}
	})

	t.Run("errors when the header is missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "style.css")
		if err := os.WriteFile(path, []byte("body {}\n"), 0o644); err != nil {
			t.Fatalf("writing stylesheet: %v", err)
		}

		if err := rewriteThemeName(path, "My Site"); err == nil {
			t.Error("rewriteThemeName() expected error for missing header")
		}
	})

	t.Run("errors when the file does not exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.css")
		if err := rewriteThemeName(path, "My Site"); err == nil {
			t.Error("rewriteThemeName() expected error for missing file")
		}
	})
}
