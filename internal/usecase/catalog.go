package usecase

import (
	"fmt"

	"github.com/runoshun/ft-calc/internal/domain"
)

// loadCatalog reads the catalog and applies an optional filter expression.
func loadCatalog(loader domain.CatalogLoader, path, filter string) ([]domain.Crop, error) {
	f, err := domain.CompileCropFilter(filter)
	if err != nil {
		return nil, err
	}

	crops, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	crops, err = f.Apply(crops)
	if err != nil {
		return nil, fmt.Errorf("filter catalog: %w", err)
	}
	return crops, nil
}
