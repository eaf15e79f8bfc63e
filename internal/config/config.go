// Package config resolves the fixed install settings from built-in defaults,
// an optional config file, and WPSETUP_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/kombee-technologies/wpsetup/internal/core/domain/site"
)

var v *viper.Viper

// Init initializes the configuration system. configPath may be empty, in
// which case only defaults and environment variables apply.
func Init(configPath string) error {
	v = viper.New()

	setDefaults()

	v.SetEnvPrefix("WPSETUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("failed to read config %s: %w", configPath, err)
			}
		}
	}

	return nil
}

func setDefaults() {
	// Admin identity
	v.SetDefault("admin.user", "kombee")
	v.SetDefault("admin.email", "info@kombee.com")

	// Database connection
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.table_prefix", "wp_")

	// Licensed plugin download endpoint; %s is replaced by the license key.
	v.SetDefault("acf.download_url", "https://connect.advancedcustomfields.com/index.php?a=download&p=pro&t=latest&k=%s")
	v.SetDefault("acf.license_key", "")

	// Starter theme package
	v.SetDefault("starter.url", "https://github.com/kombee-technologies/kombee-starter-theme/archive/refs/heads/main.zip")
	v.SetDefault("starter.slug", "kombee-starter-theme")

	// Auxiliary static files
	v.SetDefault("aux.gitignore_url", "https://gist.githubusercontent.com/kombee-technologies/4b52ae6ea1601dea74505b4b5bb79d25/raw/.gitignore")
	v.SetDefault("aux.verification_url", "https://gist.githubusercontent.com/kombee-technologies/8f3d6db0a9c1e6ab3e74b5f81f0c8a17/raw/google-site-verification.html")

	// Navigation
	v.SetDefault("menu.name", "Main Menu")
	v.SetDefault("menu.location", "primary")

	// Permalinks
	v.SetDefault("permalink.structure", "/%postname%/")

	// Manifest override file
	v.SetDefault("manifest.path", "wpsetup-manifest.yaml")
}

// Settings returns the resolved install settings as a domain value.
func Settings() site.Settings {
	return site.Settings{
		AdminUser:  v.GetString("admin.user"),
		AdminEmail: v.GetString("admin.email"),

		DBUser:      v.GetString("database.user"),
		DBPassword:  v.GetString("database.password"),
		DBHost:      v.GetString("database.host"),
		TablePrefix: v.GetString("database.table_prefix"),

		LicensedPluginURL: v.GetString("acf.download_url"),
		LicenseKey:        v.GetString("acf.license_key"),

		StarterThemeURL:  v.GetString("starter.url"),
		StarterThemeSlug: v.GetString("starter.slug"),

		GitignoreURL:    v.GetString("aux.gitignore_url"),
		VerificationURL: v.GetString("aux.verification_url"),

		MenuName:     v.GetString("menu.name"),
		MenuLocation: v.GetString("menu.location"),

		PermalinkStructure: v.GetString("permalink.structure"),
	}
}

// ManifestPath returns the path of the optional manifest override file.
func ManifestPath() string {
	return v.GetString("manifest.path")
}
