package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kombee-technologies/wpsetup/internal/core/domain/provision"
	"github.com/kombee-technologies/wpsetup/internal/core/domain/site"
	"github.com/kombee-technologies/wpsetup/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

// collectSiteConfig walks the operator through the fixed prompt sequence and
// returns the resulting configuration. confirmed is false when the operator
// answers 'n' to the final confirmation; in that case nothing must run.
func collectSiteConfig(in io.Reader, out io.Writer) (site.Config, bool, error) {
	reader := bufio.NewReader(in)

	host, err := promptLine(reader, out, "Site URL (without http://, e.g. example.test): ")
	if err != nil {
		return site.Config{}, false, err
	}
	title, err := promptLine(reader, out, "Site title: ")
	if err != nil {
		return site.Config{}, false, err
	}
	password, err := promptLine(reader, out, "Admin password: ")
	if err != nil {
		return site.Config{}, false, err
	}
	dbName, err := promptLine(reader, out, "Database name: ")
	if err != nil {
		return site.Config{}, false, err
	}
	rawPages, err := promptLine(reader, out, "Page titles (comma separated): ")
	if err != nil {
		return site.Config{}, false, err
	}
	rawPosts, err := promptLine(reader, out, "Post titles (comma separated): ")
	if err != nil {
		return site.Config{}, false, err
	}
	starter, err := promptLine(reader, out, "Install starter theme? (y/n): ")
	if err != nil {
		return site.Config{}, false, err
	}

	cfg := site.Config{
		Host:           host,
		Title:          title,
		AdminPassword:  password,
		DBName:         dbName,
		PageTitles:     site.SplitTitles(rawPages),
		PostTitles:     site.SplitTitles(rawPosts),
		InstallStarter: strings.EqualFold(starter, "y"),
	}

	confirm, err := promptLine(reader, out, "Run provisioning now? (anything but 'n' proceeds): ")
	if err != nil {
		return site.Config{}, false, err
	}
	if strings.EqualFold(confirm, "n") {
		return cfg, false, nil
	}
	return cfg, true, nil
}

// promptLine prints a prompt and reads one trimmed line of input.
func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, ui.PromptColor(prompt))
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// printReport renders the per-step outcome table.
func printReport(out io.Writer, report provision.Report) {
	if len(report.Results) == 0 {
		return
	}

	fmt.Fprintln(out, ui.HeaderColor("\nProvisioning summary:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Step", "Status", "Detail"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, res := range report.Results {
		detail := res.Detail
		if res.Err != nil {
			detail = res.Err.Error()
		}
		table.Append([]string{ui.StepNameColor(res.Name), statusLabel(res.Status), detail})
	}
	table.Render()
}

// statusLabel colors a step status for the summary table.
func statusLabel(status provision.Status) string {
	switch status {
	case provision.StatusFailed:
		return ui.StepFailedColor(string(status))
	case provision.StatusSkipped:
		return ui.WarningColor(string(status))
	default:
		return ui.SuccessColor(string(status))
	}
}
