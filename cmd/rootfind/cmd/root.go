// SPDX-License-Identifier: MIT

// Package cmd implements the rootfind command tree.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/finance"
	"github.com/katalvlaran/rootfind/internal/config"
	"github.com/katalvlaran/rootfind/newton"
)

// app carries the state shared by subcommands after PersistentPreRunE.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the command tree until it returns or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rootfind",
		Short: "Newton-Raphson root finding with multi-start fallback",
		Long: `rootfind solves f(x) = 0 with Newton-Raphson and, when the first
guess fails, scans a set of seed ranges until a residual below the
acceptance threshold is found.

Commands:
  irr      - internal rate of return of periodic cash flows
  xirr     - internal rate of return of dated cash flows
  version  - build information

Negative amounts must follow "--" so they are not read as flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "",
		fmt.Sprintf("solver profile (.yaml/.yml/.toml; default: $%s)", config.EnvPath))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every seed at debug level")

	root.AddCommand(
		newIRRCmd(a),
		newXIRRCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the solver profile and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level, err := a.cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}))

	return nil
}

// calculator builds a finance.Calculator from the loaded profile.
func (a *app) calculator() (*finance.Calculator, error) {
	return finance.NewCalculator(a.cfg.NewtonRanges(), a.cfg.Options(newton.WithLogger(a.logger))...)
}
