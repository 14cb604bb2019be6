package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/ft-calc/internal/domain"
)

// RankCropsInput contains the parameters for ranking crops.
type RankCropsInput struct {
	CatalogPath string                 // Catalog file (required)
	Filter      string                 // Optional filter expression applied before evaluation
	Evaluator   domain.EvaluatorConfig // Plow cost and unit cap
	Top         int                    // Keep only the first N entries (0 = all)
	TimeBudget  uint32
	MoneyBudget uint32
}

// RankCropsOutput contains the result of ranking crops.
type RankCropsOutput struct {
	Crops   []domain.Crop       // Catalog after filtering; Ranking points into it
	Ranking []domain.Evaluation // Most profitable first
	Total   int                 // Number of ranked crops before Top was applied
}

// RankCrops is the use case for ranking crops by total profit.
type RankCrops struct {
	catalog domain.CatalogLoader
	logger  domain.Logger
}

// NewRankCrops creates a new RankCrops use case.
func NewRankCrops(catalog domain.CatalogLoader, logger domain.Logger) *RankCrops {
	return &RankCrops{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute loads the catalog and ranks every feasible, viable crop.
func (uc *RankCrops) Execute(_ context.Context, in RankCropsInput) (*RankCropsOutput, error) {
	evaluator, err := domain.NewEvaluator(in.Evaluator)
	if err != nil {
		return nil, err
	}

	crops, err := loadCatalog(uc.catalog, in.CatalogPath, in.Filter)
	if err != nil {
		return nil, err
	}

	ranking, err := evaluator.RankByEfficiency(crops, in.TimeBudget, in.MoneyBudget)
	if err != nil {
		uc.logger.Error("rank", err.Error())
		return nil, fmt.Errorf("rank crops: %w", err)
	}

	total := len(ranking)
	if in.Top > 0 && in.Top < total {
		ranking = ranking[:in.Top]
	}

	uc.logger.Info("rank", fmt.Sprintf("catalog=%s crops=%d ranked=%d money=%d time=%d plow_cost=%d max_units=%d",
		in.CatalogPath, len(crops), total, in.MoneyBudget, in.TimeBudget, evaluator.PlowCost(), evaluator.MaxUnits()))
	if total > 0 {
		best := ranking[0]
		uc.logger.Debug("rank", fmt.Sprintf("best=%s units=%d profit=%d", best.Crop.Name, best.Units, best.Profit))
	}

	return &RankCropsOutput{
		Crops:   crops,
		Ranking: ranking,
		Total:   total,
	}, nil
}
