package site

// Settings carries the fixed install configuration: the admin identity,
// database credentials, remote endpoints and naming conventions that do not
// come from the interactive prompts. Values are resolved by internal/config.
type Settings struct {
	AdminUser  string
	AdminEmail string

	DBUser      string
	DBPassword  string
	DBHost      string
	TablePrefix string

	// LicensedPluginURL is the signed download endpoint for the licensed
	// plugin archive; LicenseKey may be empty.
	LicensedPluginURL string
	LicenseKey        string

	StarterThemeURL  string
	StarterThemeSlug string

	GitignoreURL    string
	VerificationURL string

	MenuName     string
	MenuLocation string

	PermalinkStructure string
}
