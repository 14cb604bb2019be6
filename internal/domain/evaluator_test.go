package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCrops() []Crop {
	return []Crop{
		{Name: "Lettuce", Cost: 15, Time: 10, SalePrice: 30},
		{Name: "Leek", Cost: 1250, Time: 45, SalePrice: 1380},
	}
}

func newDefaultEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	e, err := NewEvaluator(EvaluatorConfig{PlowCost: DefaultPlowCost, MaxUnits: DefaultMaxUnits})
	require.NoError(t, err)
	return e
}

func TestNewEvaluator_ZeroMaxUnits(t *testing.T) {
	_, err := NewEvaluator(EvaluatorConfig{PlowCost: 10, MaxUnits: 0})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewEvaluator_KeepsConfig(t *testing.T) {
	e, err := NewEvaluator(EvaluatorConfig{PlowCost: 3, MaxUnits: 7})
	require.NoError(t, err)
	assert.Equal(t, uint32(3), e.PlowCost())
	assert.Equal(t, uint32(7), e.MaxUnits())
}

func TestRankByEfficiency_SmallBudget(t *testing.T) {
	crops := testCrops()
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(crops, 20, 200)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Same(t, &crops[0], got[0].Crop)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, uint32(8), got[0].Units)
	assert.Equal(t, int64(40), got[0].Profit)
}

func TestRankByEfficiency_LargeBudget(t *testing.T) {
	crops := testCrops()
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(crops, 50, 2000)

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Lettuce", got[0].Crop.Name)
	assert.Equal(t, uint32(80), got[0].Units)
	assert.Equal(t, int64(400), got[0].Profit)

	assert.Equal(t, "Leek", got[1].Crop.Name)
	assert.Equal(t, uint32(1), got[1].Units)
	assert.Equal(t, int64(120), got[1].Profit)
}

func TestRankByEfficiency_CapsUnits(t *testing.T) {
	crops := []Crop{{Name: "Radish", Cost: 0, Time: 1, SalePrice: 12}}
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(crops, 1, 100000)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(DefaultMaxUnits), got[0].Units)
	assert.Equal(t, int64(2*DefaultMaxUnits), got[0].Profit)
}

func TestRankByEfficiency_CustomConstants(t *testing.T) {
	crops := []Crop{{Name: "Lettuce", Cost: 15, Time: 10, SalePrice: 30}}
	e, err := NewEvaluator(EvaluatorConfig{PlowCost: 0, MaxUnits: 5})
	require.NoError(t, err)

	got, err := e.RankByEfficiency(crops, 10, 200)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(5), got[0].Units)
	assert.Equal(t, int64(75), got[0].Profit)
}

func TestRankByEfficiency_EmptyInput(t *testing.T) {
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(nil, 100, 100)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankByEfficiency_NothingFeasible(t *testing.T) {
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(testCrops(), 5, 10)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRankByEfficiency_ZeroMoney(t *testing.T) {
	crops := []Crop{
		{Name: "Free", Cost: 0, Time: 5, SalePrice: 50},
		{Name: "Slow", Cost: 0, Time: 50, SalePrice: 50},
		{Name: "Paid", Cost: 1, Time: 1, SalePrice: 50},
	}
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(crops, 10, 0)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Free", got[0].Crop.Name)
	assert.Equal(t, uint32(0), got[0].Units)
	assert.Equal(t, int64(0), got[0].Profit)
}

func TestRankByEfficiency_RawCostEqualsBudget(t *testing.T) {
	// Passes the raw-cost filter but cannot afford a single unit once plowing is added.
	crops := []Crop{{Name: "Pumpkin", Cost: 100, Time: 5, SalePrice: 500}}
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(crops, 5, 100)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(0), got[0].Units)
	assert.Equal(t, int64(0), got[0].Profit)
}

func TestRankByEfficiency_ExcludesNonViable(t *testing.T) {
	crops := []Crop{
		{Name: "Loss", Cost: 50, Time: 1, SalePrice: 20},      // sale < cost
		{Name: "BreakEven", Cost: 50, Time: 1, SalePrice: 60}, // sale == cost + plow
		{Name: "Thin", Cost: 50, Time: 1, SalePrice: 61},
	}
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(crops, 10, 1000)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Thin", got[0].Crop.Name)
	assert.Equal(t, int64(16), got[0].Profit)
}

func TestRankByEfficiency_ZeroEffectiveCost(t *testing.T) {
	crops := []Crop{{Name: "Weed", Cost: 0, Time: 1, SalePrice: 1}}
	e, err := NewEvaluator(EvaluatorConfig{PlowCost: 0, MaxUnits: 10})
	require.NoError(t, err)

	_, err = e.RankByEfficiency(crops, 1, 10)

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRankByEfficiency_ZeroEffectiveCostNotFeasible(t *testing.T) {
	// The guard only applies to crops that survive the feasibility filter.
	crops := []Crop{{Name: "Weed", Cost: 0, Time: 99, SalePrice: 1}}
	e, err := NewEvaluator(EvaluatorConfig{PlowCost: 0, MaxUnits: 10})
	require.NoError(t, err)

	got, err := e.RankByEfficiency(crops, 1, 10)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRankByEfficiency_TiesKeepInputOrder(t *testing.T) {
	crops := []Crop{
		{Name: "A", Cost: 10, Time: 1, SalePrice: 30},
		{Name: "B", Cost: 90, Time: 1, SalePrice: 110},
		{Name: "C", Cost: 10, Time: 1, SalePrice: 30},
	}
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(crops, 1, 100)

	require.NoError(t, err)
	require.Len(t, got, 3)
	// A and C: 5 units * 10 = 50; B: 1 unit * 10 = 10.
	assert.Equal(t, []string{"A", "C", "B"}, evaluationNames(got))
}

func TestRankByEfficiency_NoOverflow(t *testing.T) {
	crops := []Crop{{Name: "Gold", Cost: math.MaxUint32, Time: 0, SalePrice: math.MaxUint32}}
	e := newDefaultEvaluator(t)

	got, err := e.RankByEfficiency(crops, 0, math.MaxUint32)

	require.NoError(t, err)
	assert.Empty(t, got, "sale price cannot exceed cost plus plowing")
}

func TestRankByEfficiency_Properties(t *testing.T) {
	crops := []Crop{
		{Name: "Lettuce", Cost: 15, Time: 10, SalePrice: 30},
		{Name: "Leek", Cost: 1250, Time: 45, SalePrice: 1380},
		{Name: "Carrot", Cost: 3, Time: 4, SalePrice: 20},
		{Name: "Melon", Cost: 300, Time: 60, SalePrice: 700},
		{Name: "Dud", Cost: 40, Time: 2, SalePrice: 45},
		{Name: "Corn", Cost: 120, Time: 25, SalePrice: 180},
	}
	e := newDefaultEvaluator(t)

	for _, tb := range []uint32{0, 5, 25, 45, 100} {
		for _, mb := range []uint32{0, 3, 15, 200, 1250, 10000} {
			got, err := e.RankByEfficiency(crops, tb, mb)
			require.NoError(t, err)

			for i, r := range got {
				assert.LessOrEqual(t, r.Crop.Time, tb)
				assert.LessOrEqual(t, r.Crop.Cost, mb)
				assert.LessOrEqual(t, r.Units, uint32(DefaultMaxUnits))
				assert.Equal(t, min(mb/(r.Crop.Cost+DefaultPlowCost), DefaultMaxUnits), r.Units)
				assert.Greater(t, r.Crop.SalePrice, r.Crop.Cost+DefaultPlowCost)
				assert.Same(t, &crops[r.Index], r.Crop)
				if i > 0 {
					assert.GreaterOrEqual(t, got[i-1].Profit, r.Profit)
				}
			}
		}
	}
}

func TestHighestSalePrice(t *testing.T) {
	tests := []struct {
		name  string
		crops []Crop
		want  int
	}{
		{
			name:  "two crops",
			crops: testCrops(),
			want:  1,
		},
		{
			name:  "single crop",
			crops: []Crop{{Name: "Only", SalePrice: 1}},
			want:  0,
		},
		{
			name: "tie keeps first",
			crops: []Crop{
				{Name: "A", SalePrice: 5},
				{Name: "B", SalePrice: 9},
				{Name: "C", SalePrice: 9},
			},
			want: 1,
		},
		{
			name: "all zero",
			crops: []Crop{
				{Name: "A"},
				{Name: "B"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HighestSalePrice(tt.crops)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, c := range tt.crops {
				assert.GreaterOrEqual(t, tt.crops[got].SalePrice, c.SalePrice)
			}
		})
	}
}

func TestHighestSalePrice_Empty(t *testing.T) {
	got, err := HighestSalePrice(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.Equal(t, -1, got)
}

func evaluationNames(evals []Evaluation) []string {
	names := make([]string, 0, len(evals))
	for _, e := range evals {
		names = append(names, e.Crop.Name)
	}
	return names
}
