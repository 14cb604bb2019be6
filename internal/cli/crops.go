package cli

import (
	"github.com/runoshun/ft-calc/internal/app"
	"github.com/runoshun/ft-calc/internal/usecase"
	"github.com/spf13/cobra"
)

// newCropsCommand creates the crops command.
func newCropsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Where  string
		Format string
	}

	cmd := &cobra.Command{
		Use:     "crops",
		Aliases: []string{"ls"},
		Short:   "List the crop catalog",
		Long:    `List the crops in the catalog in file order, optionally filtered.`,
		Example: `  ftcalc crops --where 'time <= 20'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				opts.Format = c.Settings.Output.Format
			}
			if err := checkFormat(opts.Format); err != nil {
				return err
			}

			uc := c.ListCropsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListCropsInput{
				CatalogPath: c.Settings.Catalog.Path,
				Filter:      opts.Where,
			})
			if err != nil {
				return err
			}

			return writeCrops(cmd.OutOrStdout(), opts.Format, out.Crops)
		},
	}

	cmd.Flags().StringVar(&opts.Where, "where", "", "Filter expression applied to the catalog")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json, yaml, table")

	return cmd
}
