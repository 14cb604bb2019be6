package cli

import (
	"fmt"

	"github.com/runoshun/ft-calc/internal/app"
	"github.com/runoshun/ft-calc/internal/usecase"
	"github.com/spf13/cobra"
)

// newCheckCommand creates the check command.
func newCheckCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the crop catalog",
		Long: `Validate the crop catalog against its schema.

Structural problems (missing fields, negative or oversized numbers, bad
types) are errors. Duplicate names and crops that can never turn a profit
with the configured plow cost are reported as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.CheckCatalogUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CheckCatalogInput{
				CatalogPath: c.Settings.Catalog.Path,
				Evaluator:   c.Settings.Evaluator,
			})
			if err != nil {
				return err
			}

			for _, w := range out.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d crops OK (%d warnings)\n",
				c.Settings.Catalog.Path, out.Count, len(out.Warnings))
			return nil
		},
	}

	return cmd
}
