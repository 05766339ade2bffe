package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"siaugesmat-entrypoint/config"
	"siaugesmat-entrypoint/role"
	"siaugesmat-entrypoint/utils"
)

var waitDeps string

// waitCmd runs only the readiness waits and exits, for use as an
// init-container command or from scripts that start the service themselves.
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Block until dependencies are reachable, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		utils.InitLogging()
		cfg := config.LoadConfig()

		var deps []role.Dependency
		if waitDeps != "" {
			for _, raw := range strings.Split(waitDeps, ",") {
				dep, err := role.ParseDependency(raw)
				if err != nil {
					return err
				}
				deps = append(deps, dep)
			}
		} else {
			r, err := role.Parse(cfg.Role)
			if err != nil {
				return err
			}
			deps = r.Dependencies(cfg)
		}

		if err := waitForDependencies(cmd.Context(), deps, cfg); err != nil {
			return err
		}
		utils.LogInfo("all dependencies ready")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().StringVar(&waitDeps, "deps", "", "comma-separated dependencies to wait for instead of the role's list (database, cache)")
}
