package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/ft-calc/internal/domain"
)

// BestCropInput contains the parameters for finding the most valuable crop.
type BestCropInput struct {
	CatalogPath string // Catalog file (required)
	Filter      string // Optional filter expression
}

// BestCropOutput contains the crop with the highest sale price.
type BestCropOutput struct {
	Crop  domain.Crop
	Index int // Position in the filtered catalog
}

// BestCrop is the use case for finding the crop with the highest sale price,
// regardless of budget.
type BestCrop struct {
	catalog domain.CatalogLoader
	logger  domain.Logger
}

// NewBestCrop creates a new BestCrop use case.
func NewBestCrop(catalog domain.CatalogLoader, logger domain.Logger) *BestCrop {
	return &BestCrop{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute returns the first crop with the greatest sale price.
func (uc *BestCrop) Execute(_ context.Context, in BestCropInput) (*BestCropOutput, error) {
	crops, err := loadCatalog(uc.catalog, in.CatalogPath, in.Filter)
	if err != nil {
		return nil, err
	}

	idx, err := domain.HighestSalePrice(crops)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("best", fmt.Sprintf("catalog=%s crops=%d best=%s sale_price=%d",
		in.CatalogPath, len(crops), crops[idx].Name, crops[idx].SalePrice))

	return &BestCropOutput{
		Crop:  crops[idx],
		Index: idx,
	}, nil
}
