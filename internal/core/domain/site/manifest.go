package site

// Option is a single site option to apply, as a name/value pair.
type Option struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Plugin identifies a plugin to install from the plugin directory.
type Plugin struct {
	Slug     string `yaml:"slug"`
	Activate bool   `yaml:"activate"`
}

/*
Manifest is the plugin/theme/option block applied during provisioning. The
built-in defaults match the standard agency install; an optional YAML manifest
file can override any of the four lists wholesale.
*/
type Manifest struct {
	Plugins       []Plugin `yaml:"plugins"`
	RemovePlugins []string `yaml:"remove_plugins"`
	RemoveThemes  []string `yaml:"remove_themes"`
	Options       []Option `yaml:"options"`
}

// Baseline page titles, always created before any operator content.
const (
	HomePageTitle = "Home"
	BlogPageTitle = "Blog"
)

// PageTemplateMetaKey is the post meta key holding a page's template;
// DefaultPageTemplate is the stock template value.
const (
	PageTemplateMetaKey = "_wp_page_template"
	DefaultPageTemplate = "default"
)

// SampleContentIDs are the IDs of the sample post and sample page that every
// fresh install ships with. They are force-deleted unconditionally.
var SampleContentIDs = []int{1, 2}

// DefaultManifest returns the built-in install manifest.
func DefaultManifest() Manifest {
	return Manifest{
		Plugins: []Plugin{
			{Slug: "classic-editor", Activate: true},
			{Slug: "contact-form-7", Activate: true},
			{Slug: "wordpress-seo", Activate: true},
			{Slug: "wp-mail-smtp", Activate: true},
			{Slug: "duplicate-page", Activate: true},
			{Slug: "svg-support", Activate: true},
		},
		RemovePlugins: []string{"akismet", "hello"},
		RemoveThemes: []string{
			"twentytwentythree",
			"twentytwentyfour",
			"twentytwentyfive",
		},
		Options: []Option{
			{Name: "blogdescription", Value: ""},
			{Name: "timezone_string", Value: "Asia/Kolkata"},
			{Name: "date_format", Value: "d/m/Y"},
			{Name: "time_format", Value: "H:i"},
			{Name: "default_comment_status", Value: "closed"},
			{Name: "default_ping_status", Value: "closed"},
			{Name: "blog_public", Value: "0"},
			{Name: "uploads_use_yearmonth_folders", Value: "1"},
		},
	}
}
