/*
Package site defines the core domain types for a provisioning run: the
operator-supplied site configuration, the fixed install settings, and the
plugin/theme manifest.
*/
package site

import (
	"fmt"
	"strings"
)

/*
Config holds everything the operator answers interactively. It is built once
by the CLI handler and passed to the orchestrator as an immutable value.
*/
type Config struct {
	// Host is the site URL host fragment, without a scheme, e.g. "example.test".
	Host string
	// Title is the human-readable site title.
	Title string
	// AdminPassword is the password for the fixed admin account.
	AdminPassword string
	// DBName is the database to create for this install.
	DBName string
	// PageTitles and PostTitles are the parsed, trimmed title lists.
	PageTitles []string
	PostTitles []string
	// InstallStarter enables the optional starter theme steps.
	InstallStarter bool
}

// URL returns the full site URL for the install step.
func (c Config) URL() string {
	return "http://" + c.Host
}

// Validate checks that every required answer is present. Per the original
// tool's contract there is no validation beyond presence.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Host) == "":
		return fmt.Errorf("site URL cannot be empty")
	case strings.TrimSpace(c.Title) == "":
		return fmt.Errorf("site title cannot be empty")
	case c.AdminPassword == "":
		return fmt.Errorf("admin password cannot be empty")
	case strings.TrimSpace(c.DBName) == "":
		return fmt.Errorf("database name cannot be empty")
	}
	return nil
}

/*
SplitTitles parses a comma-separated title list into a slice of trimmed,
non-empty titles. " About , Contact Us " yields ["About", "Contact Us"].
*/
func SplitTitles(raw string) []string {
	titles := []string{}
	for _, part := range strings.Split(raw, ",") {
		title := strings.TrimSpace(part)
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}
	return titles
}
