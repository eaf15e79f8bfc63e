package provisioning

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kombee-technologies/wpsetup/internal/core/domain/site"
	"github.com/kombee-technologies/wpsetup/internal/core/ports"
)

// Local archive names for downloaded packages; removed after install.
const (
	licensedPluginArchive = "licensed-plugin.zip"
	starterThemeArchive   = "starter-theme.zip"
)

// Destination names for the auxiliary static files.
const (
	gitignoreFileName    = ".gitignore"
	verificationFileName = "google-site-verification.html"
)

// step is one named unit of the pipeline.
type step struct {
	name string
	fn   func(ctx context.Context) (detail string, err error)
}

// run carries the mutable state of a single pipeline execution: the IDs
// generated along the way that later steps reference.
type run struct {
	svc      *service
	cfg      site.Config
	manifest site.Manifest

	homeID int
	blogID int
}

// steps returns the pipeline in its fixed order. The starter-theme step is
// present only when the operator opted in.
func (r *run) steps() []step {
	steps := []step{
		{"core-download", r.downloadCore},
		{"config-write", r.writeConfig},
		{"db-create", r.createDatabase},
		{"install", r.installSite},
		{"sample-cleanup", r.deleteSampleContent},
		{"baseline-pages", r.createBaselinePages},
		{"front-page", r.setFrontPage},
		{"pages", r.createPages},
		{"posts", r.createPosts},
		{"site-options", r.applyOptions},
		{"permalinks", r.setPermalinks},
		{"plugin-cleanup", r.removeBundledPlugins},
		{"licensed-plugin", r.installLicensedPlugin},
		{"plugins", r.installPlugins},
	}
	if r.cfg.InstallStarter {
		steps = append(steps, step{"starter-theme", r.installStarterTheme})
	}
	steps = append(steps,
		step{"menu", r.buildMenu},
		step{"theme-cleanup", r.removeBundledThemes},
		step{"aux-files", r.fetchAuxFiles},
		step{"summary", r.readBackSiteURL},
	)
	return steps
}

func (r *run) downloadCore(ctx context.Context) (string, error) {
	return "", r.svc.admin.DownloadCore(ctx)
}

func (r *run) writeConfig(ctx context.Context) (string, error) {
	db := ports.DatabaseSettings{
		Name:        r.cfg.DBName,
		User:        r.svc.settings.DBUser,
		Password:    r.svc.settings.DBPassword,
		Host:        r.svc.settings.DBHost,
		TablePrefix: r.svc.settings.TablePrefix,
	}
	return "", r.svc.admin.WriteConfig(ctx, db)
}

func (r *run) createDatabase(ctx context.Context) (string, error) {
	return "", r.svc.admin.CreateDatabase(ctx)
}

func (r *run) installSite(ctx context.Context) (string, error) {
	install := ports.InstallSettings{
		URL:           r.cfg.URL(),
		Title:         r.cfg.Title,
		AdminUser:     r.svc.settings.AdminUser,
		AdminPassword: r.cfg.AdminPassword,
		AdminEmail:    r.svc.settings.AdminEmail,
	}
	return r.cfg.URL(), r.svc.admin.InstallSite(ctx, install)
}

func (r *run) deleteSampleContent(ctx context.Context) (string, error) {
	return "", r.svc.admin.DeleteContent(ctx, site.SampleContentIDs)
}

func (r *run) createBaselinePages(ctx context.Context) (string, error) {
	homeID, err := r.svc.admin.CreatePage(ctx, site.HomePageTitle)
	if err != nil {
		return "", fmt.Errorf("creating %s page: %w", site.HomePageTitle, err)
	}
	blogID, err := r.svc.admin.CreatePage(ctx, site.BlogPageTitle)
	if err != nil {
		return "", fmt.Errorf("creating %s page: %w", site.BlogPageTitle, err)
	}
	r.homeID = homeID
	r.blogID = blogID
	return fmt.Sprintf("home=%d blog=%d", homeID, blogID), nil
}

func (r *run) setFrontPage(ctx context.Context) (string, error) {
	if err := r.svc.admin.UpdateOption(ctx, "show_on_front", "page"); err != nil {
		return "", err
	}
	if err := r.svc.admin.UpdateOption(ctx, "page_on_front", strconv.Itoa(r.homeID)); err != nil {
		return "", err
	}
	if err := r.svc.admin.UpdateOption(ctx, "page_for_posts", strconv.Itoa(r.blogID)); err != nil {
		return "", err
	}
	return "", nil
}

func (r *run) createPages(ctx context.Context) (string, error) {
	for _, title := range r.cfg.PageTitles {
		if _, err := r.svc.admin.CreatePage(ctx, title); err != nil {
			return "", fmt.Errorf("creating page %q: %w", title, err)
		}
	}
	return fmt.Sprintf("created=%d", len(r.cfg.PageTitles)), nil
}

func (r *run) createPosts(ctx context.Context) (string, error) {
	for _, title := range r.cfg.PostTitles {
		if _, err := r.svc.admin.CreatePost(ctx, title); err != nil {
			return "", fmt.Errorf("creating post %q: %w", title, err)
		}
	}
	return fmt.Sprintf("created=%d", len(r.cfg.PostTitles)), nil
}

func (r *run) applyOptions(ctx context.Context) (string, error) {
	for _, opt := range r.manifest.Options {
		if err := r.svc.admin.UpdateOption(ctx, opt.Name, opt.Value); err != nil {
			return "", fmt.Errorf("setting option %s: %w", opt.Name, err)
		}
	}
	return fmt.Sprintf("applied=%d", len(r.manifest.Options)), nil
}

func (r *run) setPermalinks(ctx context.Context) (string, error) {
	structure := r.svc.settings.PermalinkStructure
	return structure, r.svc.admin.SetRewriteStructure(ctx, structure)
}

func (r *run) removeBundledPlugins(ctx context.Context) (string, error) {
	return fmt.Sprintf("removed=%d", len(r.manifest.RemovePlugins)),
		r.svc.admin.DeletePlugins(ctx, r.manifest.RemovePlugins)
}

func (r *run) installLicensedPlugin(ctx context.Context) (string, error) {
	url := licensedPluginURL(r.svc.settings.LicensedPluginURL, r.svc.settings.LicenseKey)
	dest := filepath.Join(r.svc.dir, licensedPluginArchive)

	if err := r.svc.fetcher.Fetch(ctx, url, dest); err != nil {
		return "", fmt.Errorf("downloading licensed plugin: %w", err)
	}
	if err := r.svc.admin.InstallPluginArchive(ctx, dest, true); err != nil {
		return "", err
	}
	if err := os.Remove(dest); err != nil {
		return "", fmt.Errorf("removing %s: %w", dest, err)
	}
	return "", nil
}

func (r *run) installPlugins(ctx context.Context) (string, error) {
	for _, plugin := range r.manifest.Plugins {
		if err := r.svc.admin.InstallPlugin(ctx, plugin.Slug, plugin.Activate); err != nil {
			return "", fmt.Errorf("installing plugin %s: %w", plugin.Slug, err)
		}
	}
	return fmt.Sprintf("installed=%d", len(r.manifest.Plugins)), nil
}

func (r *run) installStarterTheme(ctx context.Context) (string, error) {
	dest := filepath.Join(r.svc.dir, starterThemeArchive)

	if err := r.svc.fetcher.Fetch(ctx, r.svc.settings.StarterThemeURL, dest); err != nil {
		return "", fmt.Errorf("downloading starter theme: %w", err)
	}
	if err := r.svc.admin.InstallThemeArchive(ctx, dest, true); err != nil {
		return "", err
	}
	if err := os.Remove(dest); err != nil {
		return "", fmt.Errorf("removing %s: %w", dest, err)
	}

	root, err := r.svc.admin.ThemeRoot(ctx, r.svc.settings.StarterThemeSlug)
	if err != nil {
		return "", err
	}
	stylesheet := filepath.Join(root, "style.css")
	if err := rewriteThemeName(stylesheet, r.cfg.Title); err != nil {
		return "", fmt.Errorf("renaming starter theme: %w", err)
	}
	return r.svc.settings.StarterThemeSlug, nil
}

func (r *run) buildMenu(ctx context.Context) (string, error) {
	name := r.svc.settings.MenuName

	menuID, err := r.svc.admin.CreateMenu(ctx, name)
	if err != nil {
		return "", fmt.Errorf("creating menu %q: %w", name, err)
	}
	if err := r.svc.admin.AssignMenuLocation(ctx, name, r.svc.settings.MenuLocation); err != nil {
		return "", err
	}

	pageIDs, err := r.svc.admin.ListPublishedPageIDs(ctx)
	if err != nil {
		return "", err
	}
	for _, id := range dedupeIDs(pageIDs) {
		if err := r.svc.admin.AddPageToMenu(ctx, name, id); err != nil {
			return "", fmt.Errorf("adding page %d to menu: %w", id, err)
		}
		if err := r.svc.admin.SetPostMeta(ctx, id, site.PageTemplateMetaKey, site.DefaultPageTemplate); err != nil {
			return "", fmt.Errorf("setting template for page %d: %w", id, err)
		}
	}
	return fmt.Sprintf("menu=%d pages=%d", menuID, len(dedupeIDs(pageIDs))), nil
}

func (r *run) removeBundledThemes(ctx context.Context) (string, error) {
	return fmt.Sprintf("removed=%d", len(r.manifest.RemoveThemes)),
		r.svc.admin.DeleteThemes(ctx, r.manifest.RemoveThemes)
}

func (r *run) fetchAuxFiles(ctx context.Context) (string, error) {
	if err := r.svc.fetcher.Fetch(ctx, r.svc.settings.GitignoreURL, filepath.Join(r.svc.dir, gitignoreFileName)); err != nil {
		return "", fmt.Errorf("fetching gitignore template: %w", err)
	}
	if err := r.svc.fetcher.Fetch(ctx, r.svc.settings.VerificationURL, filepath.Join(r.svc.dir, verificationFileName)); err != nil {
		return "", fmt.Errorf("fetching site verification file: %w", err)
	}
	return "", nil
}

func (r *run) readBackSiteURL(ctx context.Context) (string, error) {
	url, err := r.svc.admin.GetOption(ctx, "siteurl")
	if err != nil {
		return "", err
	}
	return url, nil
}
