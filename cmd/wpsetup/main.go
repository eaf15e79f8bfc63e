package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kombee-technologies/wpsetup/internal/adapters/httpfetch"
	"github.com/kombee-technologies/wpsetup/internal/adapters/manifest"
	"github.com/kombee-technologies/wpsetup/internal/adapters/oscommand"
	"github.com/kombee-technologies/wpsetup/internal/adapters/runlog"
	"github.com/kombee-technologies/wpsetup/internal/adapters/wpcli"
	"github.com/kombee-technologies/wpsetup/internal/config"
	"github.com/kombee-technologies/wpsetup/internal/core/services/provisioning"
	"github.com/kombee-technologies/wpsetup/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

// siteDir is the directory the site is provisioned into. The tool always
// operates on the current working directory, like the legacy setup script.
const siteDir = "."

func main() {
	if err := config.Init(os.Getenv("WPSETUP_CONFIG")); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	settings := config.Settings()

	logger, closeLog, err := runlog.Setup(siteDir)
	if err != nil {
		// A missing run log is not fatal; commands still print to the console.
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v. Continuing without it.\n", err)
		logger = nil
	} else {
		defer func() {
			if cerr := closeLog(); cerr != nil {
				fmt.Fprintf(os.Stderr, "Warning: closing run log: %v\n", cerr)
			}
		}()
	}

	cmdExec := oscommand.NewOSCommandExecutor()
	admin := wpcli.NewClient(cmdExec, siteDir, logger)
	fetcher := httpfetch.NewFetcher(2 * time.Minute)

	manifestProvider, err := manifest.NewYAMLProvider(config.ManifestPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing manifest provider: %v\n", err)
		os.Exit(1)
	}

	provisionSvc := provisioning.NewService(admin, fetcher, manifestProvider, settings, siteDir, os.Stdout, logger)
	rootCmd := cli.NewRootCommand(Version, provisionSvc)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
