// SPDX-License-Identifier: MIT

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mafx/internal/config"
	"github.com/katalvlaran/mafx/internal/logging"
)

// app carries the resolved settings shared by every subcommand.
type app struct {
	configFile string
	output     string
	verbose    bool
	lu         bool

	cfg     config.Config
	cfgUsed string
	log     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "mafx",
		Short: "Dense matrix algebra on text matrix files",
		Long: `mafx reads matrices in the whitespace text format (one row per line)
and prints results in the same format or as a LaTeX bmatrix.

Settings come from mafx.yaml (working directory or user config dir),
MAFX_* environment variables and flags, in increasing precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	addGlobalFlags(root.PersistentFlags(), a)

	root.AddCommand(
		a.detCmd(),
		a.invCmd(),
		a.unaryMatrixCmd("rref", "Reduced row echelon form", rrefOp),
		a.unaryMatrixCmd("transpose", "Transpose", transposeOp),
		a.rankCmd(),
		a.traceCmd(),
		a.propsCmd(),
		a.latexCmd(),
		a.binaryCmd("add", "Element-wise sum A + B", addOp),
		a.binaryCmd("sub", "Element-wise difference A - B", subOp),
		a.binaryCmd("mul", "Matrix product A·B", mulOp),
		a.binaryCmd("div", "Right division A·B⁻¹", divOp),
		a.powCmd(),
		a.scaleCmd(),
		a.randomCmd(),
		a.identityCmd(),
		a.configCmd(),
	)

	return root
}

// addGlobalFlags registers the persistent flags; names match config keys
// so config.Load can bind them.
func addGlobalFlags(fs *pflag.FlagSet, a *app) {
	def := config.Default()
	fs.StringVar(&a.configFile, "config", "", "config file (default: ./mafx.yaml, then <user config dir>/mafx/mafx.yaml)")
	fs.StringVarP(&a.output, "output", "o", "", "write the resulting matrix to this file instead of stdout")
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	fs.String("format", def.Format, "output format: text or latex")
	fs.Int("precision", def.Precision, "significant digits for non-integral values (-1 = shortest round-trip)")
	fs.Float64("epsilon", def.Epsilon, "tolerance for rank, orthogonality and nilpotency")
	fs.String("log-level", def.LogLevel, "log level: trace, debug, info, warn, error")
}

// setup resolves the configuration and logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, used, err := config.Load(config.LoadOptions{ConfigFile: a.configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	a.cfg, a.cfgUsed = cfg, used

	if a.log, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, a.verbose); err != nil {
		return err
	}
	a.log.Debug().Str("config", used).Str("format", cfg.Format).Int("precision", cfg.Precision).Msg("configuration loaded")

	return nil
}
