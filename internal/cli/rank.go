package cli

import (
	"github.com/runoshun/ft-calc/internal/app"
	"github.com/runoshun/ft-calc/internal/usecase"
	"github.com/spf13/cobra"
)

// rankOptions holds the flags of the rank command.
type rankOptions struct {
	Where  string
	Format string
	Top    int
	Money  uint32
	Time   uint32
}

// newRankCommand creates the rank command.
func newRankCommand(c *app.Container) *cobra.Command {
	var opts rankOptions

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank crops by total profit",
		Long: `Rank every crop that fits the budget by the total profit it yields.

For each crop the number of units is the money budget divided by the
effective unit cost (cost + plow cost), capped at max units. Profit is
(sale price - effective cost) * units. The most profitable crop is listed first;
crops with equal profit keep catalog order.

Filter expressions see the fields name, cost, time and sale_price.`,
		Example: `  # Rank for 2000 coins and 50 time units
  ftcalc rank --money 2000 --time 50

  # Top 3 crops that sell for more than 100, as a table
  ftcalc rank --money 2000 --time 50 --top 3 --where 'sale_price > 100' --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				opts.Format = c.Settings.Output.Format
			}
			if !cmd.Flags().Changed("top") {
				opts.Top = c.Settings.Output.Top
			}
			return runRank(cmd, c, opts)
		},
	}

	cmd.Flags().Uint32Var(&opts.Money, "money", 0, "Money budget")
	cmd.Flags().Uint32Var(&opts.Time, "time", 0, "Time budget")
	cmd.Flags().IntVar(&opts.Top, "top", 0, "Show only the first N crops (0 = all)")
	cmd.Flags().StringVar(&opts.Where, "where", "", "Filter expression applied to the catalog")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json, yaml, table")
	_ = cmd.MarkFlagRequired("money")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

// runRank ranks the configured catalog and prints the result.
func runRank(cmd *cobra.Command, c *app.Container, opts rankOptions) error {
	if err := checkFormat(opts.Format); err != nil {
		return err
	}

	uc := c.RankCropsUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.RankCropsInput{
		CatalogPath: c.Settings.Catalog.Path,
		Filter:      opts.Where,
		Evaluator:   c.Settings.Evaluator,
		Top:         opts.Top,
		MoneyBudget: opts.Money,
		TimeBudget:  opts.Time,
	})
	if err != nil {
		return err
	}

	return writeRanking(cmd.OutOrStdout(), opts.Format, out.Ranking)
}
