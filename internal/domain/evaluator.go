package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// Default evaluator parameters.
const (
	DefaultPlowCost = 10  // Overhead added to each unit's purchase cost
	DefaultMaxUnits = 200 // Hard cap on units purchased per crop
)

// EvaluatorConfig holds settings from the [evaluator] section.
type EvaluatorConfig struct {
	PlowCost uint32 `toml:"plow_cost" env:"FTCALC_PLOW_COST"`
	MaxUnits uint32 `toml:"max_units" env:"FTCALC_MAX_UNITS"`
}

// Evaluation is the outcome of evaluating a single feasible crop.
// Crop points into the slice passed to RankByEfficiency.
type Evaluation struct {
	Crop   *Crop
	Profit int64
	Index  int // Position of Crop in the input slice
	Units  uint32
}

// Evaluator ranks crops by the profit they yield under a budget.
type Evaluator struct {
	plowCost uint32
	maxUnits uint32
}

// NewEvaluator creates an Evaluator from the given configuration.
func NewEvaluator(cfg EvaluatorConfig) (*Evaluator, error) {
	if cfg.MaxUnits == 0 {
		return nil, fmt.Errorf("%w: max_units must be positive", ErrInvalidConfig)
	}
	return &Evaluator{
		plowCost: cfg.PlowCost,
		maxUnits: cfg.MaxUnits,
	}, nil
}

// PlowCost returns the per-unit overhead used by the evaluator.
func (e *Evaluator) PlowCost() uint32 {
	return e.plowCost
}

// MaxUnits returns the per-crop unit cap used by the evaluator.
func (e *Evaluator) MaxUnits() uint32 {
	return e.maxUnits
}

// Feasible reports whether a crop fits the time budget and the raw money budget.
// The money check uses the raw cost, not the effective cost.
func Feasible(c *Crop, timeBudget, moneyBudget uint32) bool {
	return c.Time <= timeBudget && c.Cost <= moneyBudget
}

// RankByEfficiency returns every feasible, viable crop with the number of units
// the budget buys and the resulting total profit, most profitable first.
// Crops with equal profit keep their input order.
func (e *Evaluator) RankByEfficiency(crops []Crop, timeBudget, moneyBudget uint32) ([]Evaluation, error) {
	results := make([]Evaluation, 0, len(crops))

	for i := range crops {
		crop := &crops[i]
		if !Feasible(crop, timeBudget, moneyBudget) {
			continue
		}

		effective := crop.EffectiveCost(e.plowCost)
		if effective == 0 {
			return nil, fmt.Errorf("%w: crop %q has zero effective cost (plow_cost is 0)", ErrInvalidConfig, crop.Name)
		}

		unitProfit := crop.UnitProfit(e.plowCost)
		if unitProfit <= 0 {
			continue
		}

		units := min(int64(moneyBudget)/effective, int64(e.maxUnits))

		results = append(results, Evaluation{
			Crop:   crop,
			Index:  i,
			Units:  uint32(units), //nolint:gosec // bounded by maxUnits
			Profit: unitProfit * units,
		})
	}

	slices.SortStableFunc(results, func(a, b Evaluation) int {
		return cmp.Compare(b.Profit, a.Profit)
	})

	return results, nil
}

// HighestSalePrice returns the index of the crop with the greatest sale price.
// On ties the first crop in input order wins.
func HighestSalePrice(crops []Crop) (int, error) {
	if len(crops) == 0 {
		return -1, ErrEmptyCatalog
	}

	highest := 0
	for i := 1; i < len(crops); i++ {
		if crops[i].SalePrice > crops[highest].SalePrice {
			highest = i
		}
	}
	return highest, nil
}
