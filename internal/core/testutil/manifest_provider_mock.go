package testutil

import "github.com/kombee-technologies/wpsetup/internal/core/domain/site"

// MockManifestProvider is a mock implementation of ports.ManifestProvider.
// When GetManifestFunc is unset it returns the built-in default manifest.
type MockManifestProvider struct {
	GetManifestFunc func() (site.Manifest, error)
}

// GetManifest calls the mock GetManifestFunc.
func (m *MockManifestProvider) GetManifest() (site.Manifest, error) {
	if m.GetManifestFunc != nil {
		return m.GetManifestFunc()
	}
	return site.DefaultManifest(), nil
}
