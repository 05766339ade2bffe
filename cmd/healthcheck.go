package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"siaugesmat-entrypoint/config"
	"siaugesmat-entrypoint/probe"
	"siaugesmat-entrypoint/role"
	"siaugesmat-entrypoint/utils"
)

var healthcheckTimeout time.Duration

// healthcheckCmd probes the role's dependencies exactly once, for use as a
// Docker HEALTHCHECK or Kubernetes exec probe. Unlike the entrypoint wait it
// never blocks: an unreachable dependency is an immediate non-zero exit.
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Probe the role's dependencies once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		utils.InitLogging()
		cfg := config.LoadConfig()

		r, err := role.Parse(cfg.Role)
		if err != nil {
			return err
		}

		policy := probe.RetryPolicy{
			ConnectTimeout: healthcheckTimeout,
			MaxAttempts:    1,
		}
		for _, dep := range r.Dependencies(cfg) {
			if err := probe.WaitUntilReady(cmd.Context(), probe.ForDependency(dep, cfg), policy); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().DurationVar(&healthcheckTimeout, "timeout", 2*time.Second, "per-dependency probe timeout")
}
