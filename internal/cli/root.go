// SPDX-License-Identifier: MIT

// Package cli implements the linsteps command tree.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsteps/calc"
	"github.com/katalvlaran/linsteps/i18n"
	"github.com/katalvlaran/linsteps/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool
	output  string
	lang    string

	cfg config.Config
	log *slog.Logger
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "linsteps",
		Short: "Step-by-step linear algebra in exact fractions",
		Long: `linsteps computes matrix results with exact rational arithmetic and
prints the full derivation, step by step.

Tools:
  inverse      - inverse by the adjugate method
  determinant  - determinant by cofactor expansion
  rref         - reduced row echelon form (Gauss-Jordan)
  rank         - rank from the RREF
  multiply     - matrix product A x B
  solve        - linear system Ax = b by elimination
  cramer       - linear system Ax = b by Cramer's rule
  power        - integer matrix power
  mcp          - serve every tool over the Model Context Protocol (stdio)

Matrices are written row by row: --matrix "1, 2; 3, 4".
Entries may be integers, fractions (1/3) or decimals (0.25).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.PathEnv+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&a.lang, "lang", "", "language of the step text: en or es")

	root.AddCommand(
		a.inverseCmd(),
		a.determinantCmd(),
		a.rrefCmd(),
		a.rankCmd(),
		a.multiplyCmd(),
		a.solveCmd(),
		a.cramerCmd(),
		a.powerCmd(),
		a.mcpCmd(),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
	}
	if a.lang != "" {
		cfg.Language = a.lang
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.SlogLevel() // validated above
	a.log = newLogger(cmd.ErrOrStderr(), lvl)
	a.log.Debug("configuration loaded", "output", cfg.Output, "language", cfg.Language,
		"max_cofactor_size", cfg.MaxCofactorSize, "max_exponent", cfg.MaxExponent)

	return nil
}

func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// options returns the engine options for this invocation.
func (a *app) options() []calc.Option {
	return append(a.cfg.CalcOptions(), calc.WithLanguage(i18n.Match(a.cfg.Language)))
}
