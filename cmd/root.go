package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"siaugesmat-entrypoint/config"
	"siaugesmat-entrypoint/launch"
	"siaugesmat-entrypoint/probe"
	"siaugesmat-entrypoint/role"
	"siaugesmat-entrypoint/utils"
)

// rootCmd is the entrypoint proper: invoked with no subcommand it reads the
// role, waits for the role's dependencies, and execs the role's command.
var rootCmd = &cobra.Command{
	Use:          "entrypoint",
	Short:        "Role-based container entrypoint for the SIAUGESMAT deployment",
	Long:         "Reads CONTAINER_ROLE, blocks until the role's dependencies accept connections, then replaces this process with the role's long-running command.",
	SilenceUsage: true,
	RunE:         runEntrypoint,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true    // hide the 'completion' subcommand
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true}) // hide the 'help' subcommand

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEntrypoint(cmd *cobra.Command, args []string) error {
	utils.InitLogging()
	cfg := config.LoadConfig()

	r, err := role.Parse(cfg.Role)
	if err != nil {
		return err
	}
	utils.LogInfo(fmt.Sprintf("starting container as role %q (probe strategy: %s)", r, cfg.ProbeStrategy))

	if err := waitForDependencies(cmd.Context(), r.Dependencies(cfg), cfg); err != nil {
		return err
	}

	spec := r.Launch(cfg)
	utils.LogInfo("launching: " + spec.String())

	if cfg.ExecMode == config.ExecModeSupervise {
		code, err := launch.Supervise(spec)
		if err != nil {
			return err
		}
		// The child's exit code is ours: the entrypoint adds nothing after
		// the handoff.
		os.Exit(code)
	}

	// Never returns on success.
	return launch.Replace(spec)
}

// waitForDependencies runs the readiness checks strictly in order, one at a
// time. A dependency that never comes up blocks forever under the default
// policy; the orchestrator owns the overall startup timeout.
func waitForDependencies(ctx context.Context, deps []role.Dependency, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	policy := probe.PolicyFromConfig(cfg)
	for _, dep := range deps {
		if err := probe.WaitUntilReady(ctx, probe.ForDependency(dep, cfg), policy); err != nil {
			return err
		}
	}
	return nil
}
