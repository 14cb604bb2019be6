package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/ft-calc/internal/domain"
)

// CheckCatalogInput contains the parameters for checking a catalog.
type CheckCatalogInput struct {
	CatalogPath string                 // Catalog file (required)
	Evaluator   domain.EvaluatorConfig // Used to report crops that can never turn a profit
}

// CheckCatalogOutput contains the result of checking a catalog.
type CheckCatalogOutput struct {
	Warnings []string // Suspicious but loadable entries
	Count    int      // Number of crops in the catalog
}

// CheckCatalog is the use case for validating a catalog file.
// Structural problems are errors; questionable entries are warnings.
type CheckCatalog struct {
	catalog domain.CatalogLoader
	logger  domain.Logger
}

// NewCheckCatalog creates a new CheckCatalog use case.
func NewCheckCatalog(catalog domain.CatalogLoader, logger domain.Logger) *CheckCatalog {
	return &CheckCatalog{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute loads the catalog and reports duplicate names and non-viable crops.
func (uc *CheckCatalog) Execute(_ context.Context, in CheckCatalogInput) (*CheckCatalogOutput, error) {
	crops, err := uc.catalog.Load(in.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var warnings []string
	seen := make(map[string]int, len(crops))
	for i, c := range crops {
		if first, ok := seen[c.Name]; ok {
			warnings = append(warnings, fmt.Sprintf("crop %d: duplicate name %q (first at %d)", i, c.Name, first))
		} else {
			seen[c.Name] = i
		}
		if !c.Viable(in.Evaluator.PlowCost) {
			warnings = append(warnings, fmt.Sprintf("crop %d: %q never profits (sale_price %d <= cost %d + plow_cost %d)",
				i, c.Name, c.SalePrice, c.Cost, in.Evaluator.PlowCost))
		}
	}

	for _, w := range warnings {
		uc.logger.Warn("catalog", w)
	}

	return &CheckCatalogOutput{
		Count:    len(crops),
		Warnings: warnings,
	}, nil
}
