// Package cli provides the command-line interface for ftcalc.
package cli

import (
	"fmt"
	"strconv"

	"github.com/runoshun/ft-calc/internal/app"
	"github.com/runoshun/ft-calc/internal/domain"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupCalc  = "calc"
	groupSetup = "setup"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	Catalog    string
	ConfigPath string
	LogLevel   string
	PlowCost   uint32
	MaxUnits   uint32
}

// NewRootCommand creates the root command for ftcalc.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts globalOptions

	root := &cobra.Command{
		Use:   "ftcalc [money time]",
		Short: "Crop profit calculator",
		Long: `ftcalc finds the crop that turns a money and time budget into the most profit.

Crops are read from a catalog file (.json, .yaml, .toml or .xlsx).
Each unit costs its purchase price plus a plow cost; the number of units
is capped per crop. Crops that take longer than the time budget, cost more
than the money budget or never sell above their effective cost are skipped.

Running ftcalc with two arguments is a shorthand for "ftcalc rank".`,
		Example: `  # Rank crops for 200 coins and 20 time units
  ftcalc 200 20

  # Same, with a different catalog
  ftcalc --catalog crops.yaml rank --money 200 --time 20`,
		Version: version,
		Args:    cobra.RangeArgs(0, 2),
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			return loadSettings(cmd, c, &opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return cmd.Help()
			case 2:
				money, err := parseBudget("money", args[0])
				if err != nil {
					return err
				}
				timeBudget, err := parseBudget("time", args[1])
				if err != nil {
					return err
				}
				return runRank(cmd, c, rankOptions{
					Money:  money,
					Time:   timeBudget,
					Format: c.Settings.Output.Format,
					Top:    c.Settings.Output.Top,
				})
			default:
				return fmt.Errorf("expected <money> <time>, got %d argument(s)", len(args))
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.Catalog, "catalog", "", "Crop catalog file (default from config, then crops.json)")
	pf.StringVar(&opts.ConfigPath, "config", "", "Config file to use instead of ./ftcalc.toml")
	pf.Uint32Var(&opts.PlowCost, "plow-cost", domain.DefaultPlowCost, "Overhead added to each unit's cost")
	pf.Uint32Var(&opts.MaxUnits, "max-units", domain.DefaultMaxUnits, "Maximum units bought per crop")
	pf.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddGroup(
		&cobra.Group{ID: groupCalc, Title: "Calculation Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	rankCmd := newRankCommand(c)
	rankCmd.GroupID = groupCalc

	bestCmd := newBestCommand(c)
	bestCmd.GroupID = groupCalc

	cropsCmd := newCropsCommand(c)
	cropsCmd.GroupID = groupCalc

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupCalc

	checkCmd := newCheckCommand(c)
	checkCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		rankCmd,
		bestCmd,
		cropsCmd,
		exportCmd,
		checkCmd,
		configCmd,
	)

	return root
}

// loadSettings resolves the effective configuration with flag overrides
// and prints config warnings.
func loadSettings(cmd *cobra.Command, c *app.Container, opts *globalOptions) error {
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("config") {
		c.SetConfigPath(opts.ConfigPath)
	}

	cfg, err := c.LoadSettings(func(cfg *domain.Config) {
		if flags.Changed("catalog") {
			cfg.Catalog.Path = opts.Catalog
		}
		if flags.Changed("plow-cost") {
			cfg.Evaluator.PlowCost = opts.PlowCost
		}
		if flags.Changed("max-units") {
			cfg.Evaluator.MaxUnits = opts.MaxUnits
		}
		if flags.Changed("log-level") {
			cfg.Log.Level = opts.LogLevel
		}
	})
	if err != nil {
		return err
	}

	for _, w := range cfg.Warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	return nil
}

// parseBudget parses a positional budget argument.
func parseBudget(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidBudgetValue, name, s)
	}
	return uint32(v), nil
}
