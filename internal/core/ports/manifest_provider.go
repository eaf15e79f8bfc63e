package ports

import "github.com/kombee-technologies/wpsetup/internal/core/domain/site"

// ManifestProvider supplies the plugin/theme/option manifest for a run.
type ManifestProvider interface {
	// GetManifest returns the manifest to apply. Implementations fall back
	// to the built-in defaults when no override file exists.
	GetManifest() (site.Manifest, error)
}
