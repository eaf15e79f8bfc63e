package ports

import (
	"context"

	"github.com/kombee-technologies/wpsetup/internal/core/domain/provision"
	"github.com/kombee-technologies/wpsetup/internal/core/domain/site"
)

// ProvisionService defines the contract for running the provisioning pipeline.
type ProvisionService interface {
	// Plan returns the ordered step names a run with this configuration
	// would execute, without side effects.
	Plan(cfg site.Config) []string

	// Run executes the pipeline in order and returns the per-step report.
	// By default it stops at the first failed step; opts.KeepGoing makes it
	// record failures and continue.
	Run(ctx context.Context, cfg site.Config, opts provision.Options) (provision.Report, error)
}
