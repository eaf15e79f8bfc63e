/*
Package provisioning implements the ordered provisioning pipeline. Each step
wraps one or more administrative operations behind the SiteAdmin port and
produces a StepResult; the run report collects them in order.
*/
package provisioning

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kombee-technologies/wpsetup/internal/core/domain/provision"
	"github.com/kombee-technologies/wpsetup/internal/core/domain/site"
	"github.com/kombee-technologies/wpsetup/internal/core/ports"
)

type service struct {
	admin    ports.SiteAdmin
	fetcher  ports.FileFetcher
	manifest ports.ManifestProvider
	settings site.Settings
	// dir is the site directory downloads and cleanup operate in.
	dir string
	out io.Writer
	log *slog.Logger
}

// NewService creates the provisioning service.
// It panics if admin, fetcher, or manifestProvider is nil.
func NewService(
	admin ports.SiteAdmin,
	fetcher ports.FileFetcher,
	manifestProvider ports.ManifestProvider,
	settings site.Settings,
	dir string,
	out io.Writer,
	logger *slog.Logger,
) ports.ProvisionService {
	if admin == nil {
		panic("admin cannot be nil")
	}
	if fetcher == nil {
		panic("fetcher cannot be nil")
	}
	if manifestProvider == nil {
		panic("manifestProvider cannot be nil")
	}
	if dir == "" {
		dir = "."
	}
	if out == nil {
		out = io.Discard
	}
	return &service{
		admin:    admin,
		fetcher:  fetcher,
		manifest: manifestProvider,
		settings: settings,
		dir:      dir,
		out:      out,
		log:      logger,
	}
}

// Plan returns the ordered step names for this configuration.
func (s *service) Plan(cfg site.Config) []string {
	r := &run{svc: s, cfg: cfg}
	steps := r.steps()
	names := make([]string, len(steps))
	for i, st := range steps {
		names[i] = st.name
	}
	return names
}

// Run executes the pipeline. In the default mode the first failed step stops
// the run and the remaining steps are reported as skipped; with
// opts.KeepGoing every step runs and failures accumulate in the report.
func (s *service) Run(ctx context.Context, cfg site.Config, opts provision.Options) (provision.Report, error) {
	var report provision.Report

	if err := cfg.Validate(); err != nil {
		return report, fmt.Errorf("invalid site configuration: %w", err)
	}

	manifest, err := s.manifest.GetManifest()
	if err != nil {
		return report, fmt.Errorf("could not load manifest: %w", err)
	}

	r := &run{svc: s, cfg: cfg, manifest: manifest}
	steps := r.steps()

	for i, st := range steps {
		fmt.Fprintf(s.out, "==> %s\n", st.name)
		if s.log != nil {
			s.log.Info("step.start", "step", st.name)
		}

		detail, stepErr := st.fn(ctx)
		if stepErr != nil {
			if s.log != nil {
				s.log.Error("step.failed", "step", st.name, "err", stepErr.Error())
			}
			report.Results = append(report.Results, provision.StepResult{
				Name:   st.name,
				Status: provision.StatusFailed,
				Detail: detail,
				Err:    stepErr,
			})
			if opts.KeepGoing {
				continue
			}
			// Record what never ran so the summary shows the full picture.
			for _, rest := range steps[i+1:] {
				report.Results = append(report.Results, provision.StepResult{
					Name:   rest.name,
					Status: provision.StatusSkipped,
				})
			}
			return report, fmt.Errorf("step %s failed: %w", st.name, stepErr)
		}

		if s.log != nil {
			s.log.Info("step.done", "step", st.name, "detail", detail)
		}
		report.Results = append(report.Results, provision.StepResult{
			Name:   st.name,
			Status: provision.StatusOK,
			Detail: detail,
		})
	}

	if n := report.Failed(); n > 0 {
		return report, fmt.Errorf("provisioning finished with %d failed step(s)", n)
	}
	return report, nil
}
