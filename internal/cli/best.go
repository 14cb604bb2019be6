package cli

import (
	"github.com/runoshun/ft-calc/internal/app"
	"github.com/runoshun/ft-calc/internal/usecase"
	"github.com/spf13/cobra"
)

// newBestCommand creates the best command.
func newBestCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Where  string
		Format string
	}

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Show the crop with the highest sale price",
		Long: `Show the crop with the highest sale price, ignoring budgets and costs.

When several crops share the highest price, the first one in the catalog wins.
An empty catalog is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				opts.Format = c.Settings.Output.Format
			}
			if err := checkFormat(opts.Format); err != nil {
				return err
			}

			uc := c.BestCropUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.BestCropInput{
				CatalogPath: c.Settings.Catalog.Path,
				Filter:      opts.Where,
			})
			if err != nil {
				return err
			}

			return writeBest(cmd.OutOrStdout(), opts.Format, out.Crop)
		},
	}

	cmd.Flags().StringVar(&opts.Where, "where", "", "Filter expression applied to the catalog")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json, yaml, table")

	return cmd
}
