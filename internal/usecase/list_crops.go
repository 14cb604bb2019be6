package usecase

import (
	"context"

	"github.com/runoshun/ft-calc/internal/domain"
)

// ListCropsInput contains the parameters for listing the catalog.
type ListCropsInput struct {
	CatalogPath string // Catalog file (required)
	Filter      string // Optional filter expression
}

// ListCropsOutput contains the catalog entries.
type ListCropsOutput struct {
	Crops []domain.Crop
}

// ListCrops is the use case for listing catalog entries.
type ListCrops struct {
	catalog domain.CatalogLoader
}

// NewListCrops creates a new ListCrops use case.
func NewListCrops(catalog domain.CatalogLoader) *ListCrops {
	return &ListCrops{
		catalog: catalog,
	}
}

// Execute returns the (filtered) catalog in file order.
func (uc *ListCrops) Execute(_ context.Context, in ListCropsInput) (*ListCropsOutput, error) {
	crops, err := loadCatalog(uc.catalog, in.CatalogPath, in.Filter)
	if err != nil {
		return nil, err
	}
	return &ListCropsOutput{Crops: crops}, nil
}
