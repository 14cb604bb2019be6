package cli

import (
	"fmt"

	"github.com/runoshun/ft-calc/internal/app"
	"github.com/runoshun/ft-calc/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
		Where  string
		Top    int
		Money  uint32
		Time   uint32
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a ranking to an Excel workbook",
		Long: `Rank the catalog like "ftcalc rank" and write the result to an .xlsx file.

The workbook has a single "Ranking" sheet with one row per crop.
An existing file is replaced.`,
		Example: `  ftcalc export --money 2000 --time 50 -o ranking.xlsx`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ExportRankingUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportRankingInput{
				Path: opts.Output,
				Rank: usecase.RankCropsInput{
					CatalogPath: c.Settings.Catalog.Path,
					Filter:      opts.Where,
					Evaluator:   c.Settings.Evaluator,
					Top:         opts.Top,
					MoneyBudget: opts.Money,
					TimeBudget:  opts.Time,
				},
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d crops to %s\n", out.Count, out.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Destination .xlsx file")
	cmd.Flags().Uint32Var(&opts.Money, "money", 0, "Money budget")
	cmd.Flags().Uint32Var(&opts.Time, "time", 0, "Time budget")
	cmd.Flags().IntVar(&opts.Top, "top", 0, "Export only the first N crops (0 = all)")
	cmd.Flags().StringVar(&opts.Where, "where", "", "Filter expression applied to the catalog")
	_ = cmd.MarkFlagRequired("money")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}
