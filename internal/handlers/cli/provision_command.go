package cli

import (
	"fmt"
	"os"

	"github.com/kombee-technologies/wpsetup/internal/core/domain/provision"
	"github.com/kombee-technologies/wpsetup/internal/core/ports"
	"github.com/kombee-technologies/wpsetup/internal/handlers/ui"
	"github.com/spf13/cobra"
)

func NewProvisionCommand(provisionService ports.ProvisionService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Interactively provision a new site in the current directory.",
		Long: `Prompts for the site details, asks for a final confirmation, then runs
the full provisioning sequence. By default the run stops at the first failed
step; --keep-going records failures and continues, matching the behavior of
the legacy setup script.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvisionCmd(cmd, args, provisionService)
		},
	}

	cmd.Flags().BoolP("keep-going", "k", false, "Continue past failed steps instead of stopping.")

	return cmd
}

func runProvisionCmd(
	cmd *cobra.Command,
	_ []string,
	provisionService ports.ProvisionService,
) error {
	if provisionService == nil {
		return fmt.Errorf("provision service not initialized for provision command")
	}

	keepGoing, _ := cmd.Flags().GetBool("keep-going")

	cfg, confirmed, err := collectSiteConfig(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("could not read site details: %w", err)
	}
	if !confirmed {
		fmt.Println(ui.InfoColor("Aborted. Nothing was changed."))
		return nil
	}

	fmt.Println(ui.InfoColor(fmt.Sprintf("Provisioning %s ...", cfg.URL())))

	report, runErr := provisionService.Run(cmd.Context(), cfg, provision.Options{KeepGoing: keepGoing})

	printReport(os.Stdout, report)

	if runErr != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Provisioning failed: %v", runErr)))
		return runErr
	}

	fmt.Println(ui.SuccessColor(fmt.Sprintf("\nSite %s provisioned successfully.", cfg.URL())))
	return nil
}
