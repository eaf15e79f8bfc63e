package provisioning

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
)

// licensedPluginURL renders the licensed-plugin download URL. The endpoint
// template may carry a %s placeholder for the license key; without one the
// endpoint is used as-is.
func licensedPluginURL(endpoint, licenseKey string) string {
	if strings.Contains(endpoint, "%s") {
		return fmt.Sprintf(endpoint, url.QueryEscape(licenseKey))
	}
	return endpoint
}

// dedupeIDs removes duplicate IDs while preserving first-seen order.
func dedupeIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

var themeNameLine = regexp.MustCompile(`(?m)^(\s*\*?\s*Theme Name:\s*).*$`)

// rewriteThemeName replaces the Theme Name header in a theme stylesheet with
// the given title.
func rewriteThemeName(stylesheetPath, title string) error {
	b, err := os.ReadFile(stylesheetPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", stylesheetPath, err)
	}

	if !themeNameLine.Match(b) {
		return fmt.Errorf("no Theme Name header found in %s", stylesheetPath)
	}
	// Escape $ so the title is not treated as a template reference.
	replacement := "${1}" + strings.ReplaceAll(title, "$", "$$")
	updated := themeNameLine.ReplaceAll(b, []byte(replacement))

	if err := os.WriteFile(stylesheetPath, updated, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", stylesheetPath, err)
	}
	return nil
}
