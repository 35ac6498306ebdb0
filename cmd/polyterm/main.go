package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/polyterm/internal/config"
	"github.com/san-kum/polyterm/internal/logging"
	"github.com/san-kum/polyterm/internal/tui"
)

var (
	configFile string
	dataDir    string
	capacity   int
	strict     bool
	theme      string
	debug      bool
	// render
	raw   bool
	color bool
	// plot
	plotHeight int
	plotWidth  int
	plotName   string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires every subcommand. With no subcommand the interactive
// prompt starts.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "polyterm",
		Short:             "sparse polynomial parser and renderer",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(cfg, logger)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved polynomials")
	pf.IntVar(&capacity, "capacity", config.DefaultCapacity, "initial term capacity")
	pf.BoolVar(&strict, "strict", false, "fail on input that could not be parsed")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme (plain, neon, mono)")
	pf.BoolVar(&debug, "debug", false, "debug logging on stderr")

	renderCmd := &cobra.Command{
		Use:   "render [coef exp ...]",
		Short: "render a polynomial from arguments or one line of stdin",
		RunE:  renderPolynomial,
	}
	renderCmd.Flags().BoolVar(&raw, "raw", false, "print each stored term as <coef>x^<exp>")
	renderCmd.Flags().BoolVar(&color, "color", false, "highlight the output with the theme")
	renderCmd.Flags().SetInterspersed(false)

	plotCmd := &cobra.Command{
		Use:   "plot [coef exp ...]",
		Short: "chart coefficients by exponent",
		RunE:  plotPolynomial,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "chart height")
	plotCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "chart width")
	plotCmd.Flags().StringVar(&plotName, "name", "", "plot a saved polynomial instead of input")
	plotCmd.Flags().SetInterspersed(false)

	saveCmd := &cobra.Command{
		Use:   "save [name] [coef exp ...]",
		Short: "parse and save a polynomial",
		Args:  cobra.MinimumNArgs(1),
		RunE:  savePolynomial,
	}
	saveCmd.Flags().SetInterspersed(false)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved polynomials",
		Args:  cobra.NoArgs,
		RunE:  listPolynomials,
	}

	showCmd := &cobra.Command{
		Use:   "show [name]",
		Short: "show a saved polynomial and its terms",
		Args:  cobra.ExactArgs(1),
		RunE:  showPolynomial,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "delete a saved polynomial",
		Args:  cobra.ExactArgs(1),
		RunE:  deletePolynomial,
	}

	exportCmd := &cobra.Command{
		Use:   "export [name] [path]",
		Short: "export a saved polynomial to JSON",
		Args:  cobra.ExactArgs(2),
		RunE:  exportPolynomial,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list sample inputs, or render one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPresets,
	}

	rootCmd.AddCommand(renderCmd, plotCmd, saveCmd, listCmd, showCmd, deleteCmd, exportCmd, presetsCmd)
	return rootCmd
}

// setup loads the config file, applies explicitly set flags on top and builds
// the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	logger, err = logging.New(debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	cfg = config.DefaultConfig()
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configFile, err)
		}
		logger.Debug("config loaded", zap.String("path", configFile))
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("height") {
		cfg.Plot.Height = plotHeight
	}
	if flags.Changed("width") {
		cfg.Plot.Width = plotWidth
	}
	return cfg.Validate()
}
