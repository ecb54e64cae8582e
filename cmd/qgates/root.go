package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qgates/internal/config"
	"github.com/katalvlaran/qgates/internal/logging"
	"github.com/katalvlaran/qgates/internal/ui"
)

// app carries the per-invocation state shared by subcommands.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg *config.Config
	log *zap.Logger
	out *ui.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "qgates",
		Short: "Inspect the single-qubit gate catalogue",
		Long: `qgates prints the canonical single-qubit gate matrices (ID, H, NegH,
X, Y, Z, S, T and the phase shift R(θ)) and verifies that each one is unitary.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a qgates.yaml config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger
// and printer.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	cfg.Normalize()
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.out = ui.NewPrinter(cmd.OutOrStdout(), !cfg.Output.Color)
	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("level", cfg.Log.Level),
		zap.Float64("epsilon", cfg.Check.Epsilon),
	)

	return nil
}
