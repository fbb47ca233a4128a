// Package commands wires the mrpctl cobra tree: plan, batch, version.
package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sporadicmrp/engine/internal/config"
	"github.com/sporadicmrp/engine/internal/logging"
	"github.com/sporadicmrp/engine/pkg/mrp"
)

var (
	Version = "dev"
	Commit  = "none"

	verbose bool
	cfg     *config.HostConfig
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mrpctl",
	Short: "mrpctl runs the sporadic-demand MRP planning engine",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.Init(verbose)

		loaded, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
		cfg = loaded
		if cfg.Verbose && !verbose {
			log = logging.Init(true)
		}

		log.Debug().Str("version", Version).Str("commit", Commit).Msg("mrpctl starting")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned from Execute to a process exit code
// per spec.md §6's CLI contract: 0 success (never reaches here), 2 for
// invalid input or an infeasible window, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if pe, ok := mrp.AsPlanningError(err); ok {
		switch pe.Kind {
		case mrp.KindInvalidInput, mrp.KindInfeasibleWindow:
			return 2
		}
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}
