package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kombee-technologies/wpsetup/internal/core/domain/site"
	"github.com/kombee-technologies/wpsetup/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the ManifestProvider interface by reading the
// plugin/theme manifest from a YAML file, falling back to the built-in
// defaults when the file does not exist.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML manifest file; it may point to a file
// that does not exist.
func NewYAMLProvider(filePath string) (ports.ManifestProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("manifest file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetManifest reads and parses the manifest from the configured YAML file.
// A missing or empty file yields the default manifest. Lists present in the
// file replace the corresponding default list wholesale.
func (p *YAMLProvider) GetManifest() (site.Manifest, error) {
	manifest := site.DefaultManifest()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No override file means the defaults apply.
			return manifest, nil
		}
		return site.Manifest{}, fmt.Errorf("failed to read manifest file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return manifest, nil
	}

	var override site.Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&override); err != nil {
		// A file containing only comments or "---" decodes to EOF; treat it
		// the same as an empty file.
		if errors.Is(err, io.EOF) {
			return manifest, nil
		}
		return site.Manifest{}, fmt.Errorf("failed to unmarshal manifest from %s: %w", p.filePath, err)
	}

	if override.Plugins != nil {
		manifest.Plugins = override.Plugins
	}
	if override.RemovePlugins != nil {
		manifest.RemovePlugins = override.RemovePlugins
	}
	if override.RemoveThemes != nil {
		manifest.RemoveThemes = override.RemoveThemes
	}
	if override.Options != nil {
		manifest.Options = override.Options
	}
	return manifest, nil
}
