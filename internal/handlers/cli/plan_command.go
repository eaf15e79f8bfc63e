package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kombee-technologies/wpsetup/internal/core/domain/site"
	"github.com/kombee-technologies/wpsetup/internal/core/ports"
	"github.com/kombee-technologies/wpsetup/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPlanCommand creates the 'plan' subcommand, which lists the steps a run
// would execute without touching anything.
func NewPlanCommand(provisionService ports.ProvisionService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the provisioning steps without running them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanCmd(cmd, args, provisionService)
		},
	}

	cmd.Flags().Bool("starter", false, "Include the optional starter-theme step in the plan.")

	return cmd
}

func runPlanCmd(
	cmd *cobra.Command,
	_ []string,
	provisionService ports.ProvisionService,
) error {
	if provisionService == nil {
		return fmt.Errorf("provision service not initialized for plan command")
	}

	starter, _ := cmd.Flags().GetBool("starter")
	names := provisionService.Plan(site.Config{InstallStarter: starter})

	fmt.Println(ui.HeaderColor("Provisioning plan:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Step"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for i, name := range names {
		table.Append([]string{strconv.Itoa(i + 1), name})
	}
	table.Render()

	fmt.Println(ui.DetailColor("Run 'wpsetup provision' to execute."))
	return nil
}
