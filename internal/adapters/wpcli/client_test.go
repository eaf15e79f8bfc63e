package wpcli

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kombee-technologies/wpsetup/internal/core/ports"
	"github.com/kombee-technologies/wpsetup/internal/core/testutil"
)

// recordingExecutor captures every invocation and replies with canned output.
func recordingExecutor(stdout string, err error) (*testutil.MockCommandExecutor, *[][]string) {
	var calls [][]string
	exec := &testutil.MockCommandExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			invocation := append([]string{name}, args...)
			calls = append(calls, invocation)
			return stdout, "", err
		},
	}
	return exec, &calls
}

func TestNewClient(t *testing.T) {
	t.Run("should panic if executor is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewClient did not panic with nil executor")
			}
		}()
		_ = NewClient(nil, ".", nil)
	})

	t.Run("empty dir defaults to current directory", func(t *testing.T) {
		exec, calls := recordingExecutor("", nil)
		c := NewClient(exec, "", nil)
		if err := c.DownloadCore(context.Background()); err != nil {
			t.Fatalf("DownloadCore() error = %v", err)
		}
		if got := (*calls)[0][1]; got != "--path=." {
			t.Errorf("path arg = %q, want %q", got, "--path=.")
		}
	})
}

func TestClient_Argv(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		call   func(c *Client) error
		want   []string
	}{
		{
			name: "DownloadCore",
			call: func(c *Client) error { return c.DownloadCore(context.Background()) },
			want: []string{"wp", "--path=/site", "core", "download"},
		},
		{
			name: "CreateDatabase",
			call: func(c *Client) error { return c.CreateDatabase(context.Background()) },
			want: []string{"wp", "--path=/site", "db", "create"},
		},
		{
			name: "InstallSite",
			call: func(c *Client) error {
				return c.InstallSite(context.Background(), ports.InstallSettings{
					URL:           "http://example.test",
					Title:         "Example",
					AdminUser:     "kombee",
					AdminPassword: "secret",
					AdminEmail:    "info@kombee.com",
				})
			},
			want: []string{"wp", "--path=/site", "core", "install",
				"--url=http://example.test", "--title=Example",
				"--admin_user=kombee", "--admin_password=secret",
				"--admin_email=info@kombee.com", "--skip-email"},
		},
		{
			name: "DeleteContent",
			call: func(c *Client) error { return c.DeleteContent(context.Background(), []int{1, 2}) },
			want: []string{"wp", "--path=/site", "post", "delete", "1", "2", "--force"},
		},
		{
			name: "UpdateOption",
			call: func(c *Client) error {
				return c.UpdateOption(context.Background(), "show_on_front", "page")
			},
			want: []string{"wp", "--path=/site", "option", "update", "show_on_front", "page"},
		},
		{
			name: "InstallPlugin with activation",
			call: func(c *Client) error { return c.InstallPlugin(context.Background(), "classic-editor", true) },
			want: []string{"wp", "--path=/site", "plugin", "install", "classic-editor", "--activate"},
		},
		{
			name: "InstallPlugin without activation",
			call: func(c *Client) error { return c.InstallPlugin(context.Background(), "classic-editor", false) },
			want: []string{"wp", "--path=/site", "plugin", "install", "classic-editor"},
		},
		{
			name: "DeletePlugins",
			call: func(c *Client) error {
				return c.DeletePlugins(context.Background(), []string{"akismet", "hello"})
			},
			want: []string{"wp", "--path=/site", "plugin", "delete", "akismet", "hello"},
		},
		{
			name: "DeleteThemes",
			call: func(c *Client) error {
				return c.DeleteThemes(context.Background(), []string{"twentytwentyfour"})
			},
			want: []string{"wp", "--path=/site", "theme", "delete", "twentytwentyfour"},
		},
		{
			name: "AssignMenuLocation",
			call: func(c *Client) error {
				return c.AssignMenuLocation(context.Background(), "Main Menu", "primary")
			},
			want: []string{"wp", "--path=/site", "menu", "location", "assign", "Main Menu", "primary"},
		},
		{
			name: "AddPageToMenu",
			call: func(c *Client) error { return c.AddPageToMenu(context.Background(), "Main Menu", 42) },
			want: []string{"wp", "--path=/site", "menu", "item", "add-post", "Main Menu", "42"},
		},
		{
			name: "SetPostMeta",
			call: func(c *Client) error {
				return c.SetPostMeta(context.Background(), 42, "_wp_page_template", "default")
			},
			want: []string{"wp", "--path=/site", "post", "meta", "set", "42", "_wp_page_template", "default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, calls := recordingExecutor(tt.stdout, nil)
			c := NewClient(exec, "/site", nil)

			if err := tt.call(c); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if len(*calls) != 1 {
				t.Fatalf("got %d invocations, want 1", len(*calls))
			}
			if !reflect.DeepEqual((*calls)[0], tt.want) {
				t.Errorf("argv = %v, want %v", (*calls)[0], tt.want)
			}
		})
	}
}

func TestClient_WriteConfig(t *testing.T) {
	exec, calls := recordingExecutor("", nil)
	c := NewClient(exec, "/site", nil)

	err := c.WriteConfig(context.Background(), ports.DatabaseSettings{
		Name:        "example_db",
		User:        "root",
		Password:    "root",
		Host:        "localhost",
		TablePrefix: "wp_",
	})
	if err != nil {
		t.Fatalf("WriteConfig() error = %v", err)
	}

	argv := (*calls)[0]
	for _, want := range []string{"--dbname=example_db", "--dbuser=root", "--dbprefix=wp_"} {
		if !containsArg(argv, want) {
			t.Errorf("argv %v missing %q", argv, want)
		}
	}
	extra := argv[len(argv)-1]
	if !strings.Contains(extra, "DISALLOW_FILE_EDIT") || !strings.Contains(extra, "WP_DEBUG") {
		t.Errorf("extra-php arg %q should define DISALLOW_FILE_EDIT and WP_DEBUG", extra)
	}
}

func TestClient_SetRewriteStructure(t *testing.T) {
	exec, calls := recordingExecutor("", nil)
	c := NewClient(exec, "/site", nil)

	if err := c.SetRewriteStructure(context.Background(), "/%postname%/"); err != nil {
		t.Fatalf("SetRewriteStructure() error = %v", err)
	}

	want := [][]string{
		{"wp", "--path=/site", "rewrite", "structure", "/%postname%/"},
		{"wp", "--path=/site", "rewrite", "flush", "--hard"},
	}
	if !reflect.DeepEqual(*calls, want) {
		t.Errorf("invocations = %v, want %v", *calls, want)
	}
}

func TestClient_IDCapture(t *testing.T) {
	t.Run("CreatePage parses porcelain output", func(t *testing.T) {
		exec, _ := recordingExecutor(" 42\n", nil)
		c := NewClient(exec, "/site", nil)

		id, err := c.CreatePage(context.Background(), "About")
		if err != nil {
			t.Fatalf("CreatePage() error = %v", err)
		}
		if id != 42 {
			t.Errorf("CreatePage() id = %d, want 42", id)
		}
	})

	t.Run("CreateMenu parses porcelain output", func(t *testing.T) {
		exec, calls := recordingExecutor("7\n", nil)
		c := NewClient(exec, "/site", nil)

		id, err := c.CreateMenu(context.Background(), "Main Menu")
		if err != nil {
			t.Fatalf("CreateMenu() error = %v", err)
		}
		if id != 7 {
			t.Errorf("CreateMenu() id = %d, want 7", id)
		}
		want := []string{"wp", "--path=/site", "menu", "create", "Main Menu", "--porcelain"}
		if !reflect.DeepEqual((*calls)[0], want) {
			t.Errorf("argv = %v, want %v", (*calls)[0], want)
		}
	})

	t.Run("CreatePage rejects non-numeric output", func(t *testing.T) {
		exec, _ := recordingExecutor("Success: created\n", nil)
		c := NewClient(exec, "/site", nil)

		if _, err := c.CreatePage(context.Background(), "About"); err == nil {
			t.Error("CreatePage() expected error for non-numeric output")
		}
	})
}

func TestClient_ListPublishedPageIDs(t *testing.T) {
	t.Run("parses space-separated ids", func(t *testing.T) {
		exec, calls := recordingExecutor("10 11 12\n", nil)
		c := NewClient(exec, "/site", nil)

		ids, err := c.ListPublishedPageIDs(context.Background())
		if err != nil {
			t.Fatalf("ListPublishedPageIDs() error = %v", err)
		}
		if want := []int{10, 11, 12}; !reflect.DeepEqual(ids, want) {
			t.Errorf("ids = %v, want %v", ids, want)
		}
		wantArgs := []string{"wp", "--path=/site", "post", "list",
			"--post_type=page", "--post_status=publish", "--format=ids"}
		if !reflect.DeepEqual((*calls)[0], wantArgs) {
			t.Errorf("argv = %v, want %v", (*calls)[0], wantArgs)
		}
	})

	t.Run("empty listing yields no ids", func(t *testing.T) {
		exec, _ := recordingExecutor("\n", nil)
		c := NewClient(exec, "/site", nil)

		ids, err := c.ListPublishedPageIDs(context.Background())
		if err != nil {
			t.Fatalf("ListPublishedPageIDs() error = %v", err)
		}
		if len(ids) != 0 {
			t.Errorf("ids = %v, want empty", ids)
		}
	})
}

func TestClient_GetOptionAndThemeRoot(t *testing.T) {
	t.Run("GetOption trims output", func(t *testing.T) {
		exec, _ := recordingExecutor("http://example.test\n", nil)
		c := NewClient(exec, "/site", nil)

		got, err := c.GetOption(context.Background(), "siteurl")
		if err != nil {
			t.Fatalf("GetOption() error = %v", err)
		}
		if got != "http://example.test" {
			t.Errorf("GetOption() = %q, want %q", got, "http://example.test")
		}
	})

	t.Run("ThemeRoot trims output", func(t *testing.T) {
		exec, calls := recordingExecutor("/site/wp-content/themes/starter\n", nil)
		c := NewClient(exec, "/site", nil)

		got, err := c.ThemeRoot(context.Background(), "starter")
		if err != nil {
			t.Fatalf("ThemeRoot() error = %v", err)
		}
		if got != "/site/wp-content/themes/starter" {
			t.Errorf("ThemeRoot() = %q", got)
		}
		want := []string{"wp", "--path=/site", "theme", "path", "starter", "--dir"}
		if !reflect.DeepEqual((*calls)[0], want) {
			t.Errorf("argv = %v, want %v", (*calls)[0], want)
		}
	})
}

func TestClient_NoOpCalls(t *testing.T) {
	exec, calls := recordingExecutor("", nil)
	c := NewClient(exec, "/site", nil)

	if err := c.DeleteContent(context.Background(), nil); err != nil {
		t.Fatalf("DeleteContent() error = %v", err)
	}
	if err := c.DeletePlugins(context.Background(), nil); err != nil {
		t.Fatalf("DeletePlugins() error = %v", err)
	}
	if err := c.DeleteThemes(context.Background(), nil); err != nil {
		t.Fatalf("DeleteThemes() error = %v", err)
	}
	if len(*calls) != 0 {
		t.Errorf("empty inputs should issue no invocations, got %v", *calls)
	}
}

func TestClient_ErrorPropagation(t *testing.T) {
	execErr := errors.New("command failed")
	exec, _ := recordingExecutor("", execErr)
	c := NewClient(exec, "/site", nil)

	err := c.DownloadCore(context.Background())
	if err == nil {
		t.Fatal("DownloadCore() expected error")
	}
	if !errors.Is(err, execErr) {
		t.Errorf("error = %v, want wrapped %v", err, execErr)
	}
	if !strings.Contains(err.Error(), "wp core") {
		t.Errorf("error %q should identify the failed command", err)
	}
}

func containsArg(argv []string, want string) bool {
	for _, a := range argv {
		if a == want {
			return true
		}
	}
	return false
}
