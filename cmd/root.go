package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guimove/workmap/internal/config"
	"github.com/guimove/workmap/internal/orchestrator"
	"github.com/guimove/workmap/internal/units"
)

var (
	cfgFile string
	cfg     config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "workmap [workers block-size]",
	Short: "Simulate static and dynamic work mapping strategies",
	Long: `workmap reads a sequence of positive work-unit costs from standard input
(or --input) and distributes them across a fixed pool of workers using the
block, cyclic, block-cyclic and dynamic (greedy) mappings.

For every mapping it reports the unit-to-worker assignment, the load per
worker, the maximum load, the speedup over serial processing and the
efficiency. Worker count and block size default to 4 and 2; when given,
both must be positive integers.`,
	Example: `  seq 1 20 | workmap
  workmap 3 4 --input units.txt --output markdown
  workmap 8 2 --metrics-file run.prom --plot loads.png < units.txt`,
	Args:              positionalArgs,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: runSimulation,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: workmap.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	f := rootCmd.Flags()
	f.String("input", "", "file with work-unit costs (default: stdin)")
	f.String("output", "", "output format: table, json, markdown")
	f.StringSlice("strategies", nil, "mappings to run: block, cyclic, block-cyclic, dynamic (default: all)")
	f.String("metrics-file", "", "write Prometheus text-format metrics to this file")
	f.String("plot", "", "write a per-worker load chart (png, svg, pdf)")
	f.Int("max-units", 0, "cap on the unit buffer capacity (0 = unlimited)")

	_ = viper.BindPFlag("input.path", f.Lookup("input"))
	_ = viper.BindPFlag("input.max_units", f.Lookup("max-units"))
	_ = viper.BindPFlag("output.format", f.Lookup("output"))
	_ = viper.BindPFlag("output.metrics_file", f.Lookup("metrics-file"))
	_ = viper.BindPFlag("output.plot_file", f.Lookup("plot"))
	_ = viper.BindPFlag("simulation.strategies", f.Lookup("strategies"))
}

// positionalArgs accepts either no arguments or worker count and block
// size together.
func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("%w: expected worker count and block size together, got %d argument(s)",
			config.ErrInvalidConfig, len(args))
	}
	return nil
}

func loadConfig() error {
	// Start with defaults
	cfg = config.Default()
	setDefaults(cfg)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("workmap")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.workmap")
	}

	// Environment variable overrides, e.g. WORKMAP_SIMULATION_WORKERS
	viper.SetEnvPrefix("WORKMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file (not an error if missing)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

func setDefaults(c config.Config) {
	viper.SetDefault("simulation.workers", c.Simulation.Workers)
	viper.SetDefault("simulation.block_size", c.Simulation.BlockSize)
	viper.SetDefault("simulation.strategies", c.Simulation.Strategies)
	viper.SetDefault("input.path", c.Input.Path)
	viper.SetDefault("input.max_units", c.Input.MaxUnits)
	viper.SetDefault("output.format", c.Output.Format)
	viper.SetDefault("output.metrics_file", c.Output.MetricsFile)
	viper.SetDefault("output.plot_file", c.Output.PlotFile)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	// Positional arguments win over config file and environment
	if err := cfg.ApplyArgs(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "workmap"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var source units.Source
	if cfg.Input.Path != "" {
		source = units.NewFileSource(cfg.Input.Path)
	} else {
		source = units.NewReaderSource("stdin", cmd.InOrStdin())
	}

	orch := orchestrator.New(cfg, source)
	orch.Writer = cmd.OutOrStdout()
	orch.Logger = logger

	_, err := orch.Run(cmd.Context())
	return err
}
