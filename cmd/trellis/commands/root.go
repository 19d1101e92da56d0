// Package commands implements the trellis CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/trellis-research/trellis/config"
	"github.com/trellis-research/trellis/logger"
)

var (
	verbosity  int
	jsonOutput bool
)

// RootCmd is the trellis entry command
var RootCmd = &cobra.Command{
	Use:   "trellis",
	Short: "Trellis graph rendering engine tools",
	Long: `Trellis turns raw knowledge-graph snapshots into render-ready
attributes: filtered node sets, degree-scaled sizes, force-simulation
parameters and level-of-detail settings. This CLI exercises the engine,
mainly through the benchmark harness.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return logger.Initialize(jsonOutput || cfg.Log.JSON, verbosity)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v, -vv, -vvv)")
	RootCmd.PersistentFlags().BoolVar(&jsonOutput, "json-logs", false, "Emit logs as JSON lines")

	RootCmd.AddCommand(BenchCmd)
	RootCmd.AddCommand(VersionCmd)
}
