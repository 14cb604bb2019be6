package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/ft-calc/internal/domain"
)

// ExportRankingInput contains the parameters for exporting a ranking.
type ExportRankingInput struct {
	Path string // Destination workbook (required)
	Rank RankCropsInput
}

// ExportRankingOutput contains the result of exporting a ranking.
type ExportRankingOutput struct {
	Path  string
	Count int // Number of rows written
}

// ExportRanking is the use case for writing a ranking to a workbook.
type ExportRanking struct {
	rank     *RankCrops
	exporter domain.RankingExporter
	logger   domain.Logger
}

// NewExportRanking creates a new ExportRanking use case.
func NewExportRanking(rank *RankCrops, exporter domain.RankingExporter, logger domain.Logger) *ExportRanking {
	return &ExportRanking{
		rank:     rank,
		exporter: exporter,
		logger:   logger,
	}
}

// Execute ranks the catalog and writes the result.
func (uc *ExportRanking) Execute(ctx context.Context, in ExportRankingInput) (*ExportRankingOutput, error) {
	if in.Path == "" {
		return nil, domain.ErrNoExportPath
	}

	out, err := uc.rank.Execute(ctx, in.Rank)
	if err != nil {
		return nil, err
	}

	if err := uc.exporter.Export(in.Path, out.Ranking); err != nil {
		return nil, fmt.Errorf("export ranking: %w", err)
	}

	uc.logger.Info("export", fmt.Sprintf("wrote %d rows to %s", len(out.Ranking), in.Path))

	return &ExportRankingOutput{
		Path:  in.Path,
		Count: len(out.Ranking),
	}, nil
}
