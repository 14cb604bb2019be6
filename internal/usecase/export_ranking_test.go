package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/ft-calc/internal/domain"
	"github.com/runoshun/ft-calc/internal/testutil"
	"github.com/runoshun/ft-calc/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRanking_Execute(t *testing.T) {
	logger := testutil.NewMockLogger()
	exporter := &testutil.MockRankingExporter{}
	uc := usecase.NewExportRanking(usecase.NewRankCrops(testCatalog(), logger), exporter, logger)

	out, err := uc.Execute(context.Background(), usecase.ExportRankingInput{
		Path: "ranking.xlsx",
		Rank: usecase.RankCropsInput{
			CatalogPath: "crops.json",
			Evaluator:   defaultEvaluatorConfig(),
			MoneyBudget: 2000,
			TimeBudget:  50,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "ranking.xlsx", out.Path)
	assert.Equal(t, 2, out.Count)
	assert.True(t, exporter.Called)
	assert.Equal(t, "ranking.xlsx", exporter.Path)
	require.Len(t, exporter.Ranking, 2)
	assert.Equal(t, "Lettuce", exporter.Ranking[0].Crop.Name)
}

func TestExportRanking_Execute_NoPath(t *testing.T) {
	exporter := &testutil.MockRankingExporter{}
	logger := testutil.NewMockLogger()
	uc := usecase.NewExportRanking(usecase.NewRankCrops(testCatalog(), logger), exporter, logger)

	_, err := uc.Execute(context.Background(), usecase.ExportRankingInput{})

	assert.ErrorIs(t, err, domain.ErrNoExportPath)
	assert.False(t, exporter.Called)
}

func TestExportRanking_Execute_ExportError(t *testing.T) {
	exporter := &testutil.MockRankingExporter{ExportErr: errors.New("disk full")}
	logger := testutil.NewMockLogger()
	uc := usecase.NewExportRanking(usecase.NewRankCrops(testCatalog(), logger), exporter, logger)

	_, err := uc.Execute(context.Background(), usecase.ExportRankingInput{
		Path: "ranking.xlsx",
		Rank: usecase.RankCropsInput{CatalogPath: "crops.json", Evaluator: defaultEvaluatorConfig()},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "export ranking")
}
