package cli

import (
	"fmt"

	"github.com/kombee-technologies/wpsetup/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(version string, provisionService ports.ProvisionService) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "wpsetup",
		Short: "wpsetup provisions a new WordPress site end to end.",
		Long: `wpsetup collects the site details interactively, then drives WP-CLI
through the full install sequence: core download, configuration, database,
content, options, plugins, themes, navigation menu, and auxiliary files.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if provisionService == nil && (cmd.Name() == "provision" || cmd.Name() == "plan") {
				return fmt.Errorf("provision service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewProvisionCommand(provisionService))
	rootCmd.AddCommand(NewPlanCommand(provisionService))

	return rootCmd
}
