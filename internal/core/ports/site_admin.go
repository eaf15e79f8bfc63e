package ports

import "context"

// DatabaseSettings carries what the config-write step needs.
type DatabaseSettings struct {
	Name        string
	User        string
	Password    string
	Host        string
	TablePrefix string
}

// InstallSettings carries what the site install step needs.
type InstallSettings struct {
	URL           string
	Title         string
	AdminUser     string
	AdminPassword string
	AdminEmail    string
}

/*
SiteAdmin is the narrow contract over the external site-administration tool.
Every method maps to one administrative operation; implementations shell out
to the real tool, tests substitute a mock.
*/
type SiteAdmin interface {
	// DownloadCore fetches the platform core files into the site directory.
	DownloadCore(ctx context.Context) error
	// WriteConfig writes the site configuration file with file editing and
	// debug output disabled.
	WriteConfig(ctx context.Context, db DatabaseSettings) error
	// CreateDatabase creates the configured database.
	CreateDatabase(ctx context.Context) error
	// InstallSite runs the installer.
	InstallSite(ctx context.Context, install InstallSettings) error

	// DeleteContent force-deletes the given content items.
	DeleteContent(ctx context.Context, ids []int) error
	// CreatePage creates a published page and returns its generated ID.
	CreatePage(ctx context.Context, title string) (int, error)
	// CreatePost creates a published post and returns its generated ID.
	CreatePost(ctx context.Context, title string) (int, error)
	// ListPublishedPageIDs returns the IDs of all published pages.
	ListPublishedPageIDs(ctx context.Context) ([]int, error)

	// GetOption reads a site option value.
	GetOption(ctx context.Context, name string) (string, error)
	// UpdateOption sets a site option value.
	UpdateOption(ctx context.Context, name, value string) error
	// SetRewriteStructure sets the permalink structure and flushes the
	// rewrite rules.
	SetRewriteStructure(ctx context.Context, structure string) error

	// InstallPlugin installs a plugin from the plugin directory.
	InstallPlugin(ctx context.Context, slug string, activate bool) error
	// InstallPluginArchive installs a plugin from a local archive file.
	InstallPluginArchive(ctx context.Context, path string, activate bool) error
	// DeletePlugins deletes installed plugins by slug.
	DeletePlugins(ctx context.Context, slugs []string) error

	// InstallThemeArchive installs a theme from a local archive file.
	InstallThemeArchive(ctx context.Context, path string, activate bool) error
	// DeleteThemes deletes installed themes by slug.
	DeleteThemes(ctx context.Context, slugs []string) error
	// ThemeRoot returns the filesystem directory of an installed theme.
	ThemeRoot(ctx context.Context, slug string) (string, error)

	// CreateMenu creates a navigation menu and returns its generated ID.
	CreateMenu(ctx context.Context, name string) (int, error)
	// AssignMenuLocation assigns a menu to a theme location.
	AssignMenuLocation(ctx context.Context, menu, location string) error
	// AddPageToMenu appends a page to a menu.
	AddPageToMenu(ctx context.Context, menu string, pageID int) error

	// SetPostMeta sets a single post meta value.
	SetPostMeta(ctx context.Context, pageID int, key, value string) error
}
