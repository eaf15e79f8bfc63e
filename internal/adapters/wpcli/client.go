/*
Package wpcli implements the SiteAdmin port by shelling out to the WP-CLI
binary. Every operation is rendered to a single `wp ...` invocation; generated
IDs are captured with --porcelain and listings with --format=ids.
*/
package wpcli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/kombee-technologies/wpsetup/internal/core/ports"
)

// Binary is the administrative tool invoked for every operation.
const Binary = "wp"

// Client drives WP-CLI through a CommandExecutor.
type Client struct {
	exec ports.CommandExecutor
	// dir is the site directory, passed as --path on every invocation.
	dir string
	log *slog.Logger
}

// NewClient creates a SiteAdmin backed by WP-CLI. The executor must not be
// nil; logger may be nil to disable command logging.
func NewClient(exec ports.CommandExecutor, dir string, logger *slog.Logger) *Client {
	if exec == nil {
		panic("wpcli: executor cannot be nil")
	}
	if dir == "" {
		dir = "."
	}
	return &Client{exec: exec, dir: dir, log: logger}
}

// run executes one wp invocation and returns its stdout.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	full := append([]string{"--path=" + c.dir}, args...)
	if c.log != nil {
		c.log.Info("wp.exec", "args", args)
	}
	stdout, stderr, err := c.exec.Execute(ctx, Binary, full...)
	if err != nil {
		if c.log != nil {
			c.log.Error("wp.exec.failed", "args", args, "stderr", stderr, "err", err.Error())
		}
		return stdout, fmt.Errorf("wp %s: %w", args[0], err)
	}
	return stdout, nil
}

// runID executes one wp invocation whose stdout is a single generated ID.
func (c *Client) runID(ctx context.Context, args ...string) (int, error) {
	stdout, err := c.run(ctx, args...)
	if err != nil {
		return 0, err
	}
	id, err := parseID(stdout)
	if err != nil {
		return 0, fmt.Errorf("wp %s: %w", args[0], err)
	}
	return id, nil
}

func (c *Client) DownloadCore(ctx context.Context) error {
	_, err := c.run(ctx, "core", "download")
	return err
}

func (c *Client) WriteConfig(ctx context.Context, db ports.DatabaseSettings) error {
	// DISALLOW_FILE_EDIT and WP_DEBUG are baked into every generated config.
	_, err := c.run(ctx, "config", "create",
		"--dbname="+db.Name,
		"--dbuser="+db.User,
		"--dbpass="+db.Password,
		"--dbhost="+db.Host,
		"--dbprefix="+db.TablePrefix,
		"--extra-php=define( 'DISALLOW_FILE_EDIT', true );\ndefine( 'WP_DEBUG', false );",
	)
	return err
}

func (c *Client) CreateDatabase(ctx context.Context) error {
	_, err := c.run(ctx, "db", "create")
	return err
}

func (c *Client) InstallSite(ctx context.Context, install ports.InstallSettings) error {
	_, err := c.run(ctx, "core", "install",
		"--url="+install.URL,
		"--title="+install.Title,
		"--admin_user="+install.AdminUser,
		"--admin_password="+install.AdminPassword,
		"--admin_email="+install.AdminEmail,
		"--skip-email",
	)
	return err
}

func (c *Client) DeleteContent(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	args := []string{"post", "delete"}
	for _, id := range ids {
		args = append(args, strconv.Itoa(id))
	}
	args = append(args, "--force")
	_, err := c.run(ctx, args...)
	return err
}

func (c *Client) CreatePage(ctx context.Context, title string) (int, error) {
	return c.runID(ctx, "post", "create",
		"--post_type=page",
		"--post_title="+title,
		"--post_status=publish",
		"--porcelain",
	)
}

func (c *Client) CreatePost(ctx context.Context, title string) (int, error) {
	return c.runID(ctx, "post", "create",
		"--post_type=post",
		"--post_title="+title,
		"--post_status=publish",
		"--porcelain",
	)
}

func (c *Client) ListPublishedPageIDs(ctx context.Context) ([]int, error) {
	stdout, err := c.run(ctx, "post", "list",
		"--post_type=page",
		"--post_status=publish",
		"--format=ids",
	)
	if err != nil {
		return nil, err
	}
	ids, err := parseIDList(stdout)
	if err != nil {
		return nil, fmt.Errorf("wp post list: %w", err)
	}
	return ids, nil
}

func (c *Client) GetOption(ctx context.Context, name string) (string, error) {
	stdout, err := c.run(ctx, "option", "get", name)
	if err != nil {
		return "", err
	}
	return trimOutput(stdout), nil
}

func (c *Client) UpdateOption(ctx context.Context, name, value string) error {
	_, err := c.run(ctx, "option", "update", name, value)
	return err
}

func (c *Client) SetRewriteStructure(ctx context.Context, structure string) error {
	if _, err := c.run(ctx, "rewrite", "structure", structure); err != nil {
		return err
	}
	_, err := c.run(ctx, "rewrite", "flush", "--hard")
	return err
}

func (c *Client) InstallPlugin(ctx context.Context, slug string, activate bool) error {
	args := []string{"plugin", "install", slug}
	if activate {
		args = append(args, "--activate")
	}
	_, err := c.run(ctx, args...)
	return err
}

func (c *Client) InstallPluginArchive(ctx context.Context, path string, activate bool) error {
	args := []string{"plugin", "install", path}
	if activate {
		args = append(args, "--activate")
	}
	_, err := c.run(ctx, args...)
	return err
}

func (c *Client) DeletePlugins(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}
	args := append([]string{"plugin", "delete"}, slugs...)
	_, err := c.run(ctx, args...)
	return err
}

func (c *Client) InstallThemeArchive(ctx context.Context, path string, activate bool) error {
	args := []string{"theme", "install", path}
	if activate {
		args = append(args, "--activate")
	}
	_, err := c.run(ctx, args...)
	return err
}

func (c *Client) DeleteThemes(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}
	args := append([]string{"theme", "delete"}, slugs...)
	_, err := c.run(ctx, args...)
	return err
}

func (c *Client) ThemeRoot(ctx context.Context, slug string) (string, error) {
	stdout, err := c.run(ctx, "theme", "path", slug, "--dir")
	if err != nil {
		return "", err
	}
	return trimOutput(stdout), nil
}

func (c *Client) CreateMenu(ctx context.Context, name string) (int, error) {
	return c.runID(ctx, "menu", "create", name, "--porcelain")
}

func (c *Client) AssignMenuLocation(ctx context.Context, menu, location string) error {
	_, err := c.run(ctx, "menu", "location", "assign", menu, location)
	return err
}

func (c *Client) AddPageToMenu(ctx context.Context, menu string, pageID int) error {
	_, err := c.run(ctx, "menu", "item", "add-post", menu, strconv.Itoa(pageID))
	return err
}

func (c *Client) SetPostMeta(ctx context.Context, pageID int, key, value string) error {
	_, err := c.run(ctx, "post", "meta", "set", strconv.Itoa(pageID), key, value)
	return err
}

// Compile-time check that Client satisfies the port.
var _ ports.SiteAdmin = (*Client)(nil)
