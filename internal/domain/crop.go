// Package domain contains the crop model, the profit evaluator and the ports
// implemented by the infrastructure layer.
package domain

import "fmt"

// Crop is a purchasable, plantable item from the catalog.
// Crops are read-only once loaded; the evaluator only borrows them.
type Crop struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Cost      uint32 `json:"cost" yaml:"cost" toml:"cost"`                   // Price of one unit
	Time      uint32 `json:"time" yaml:"time" toml:"time"`                   // Time to mature
	SalePrice uint32 `json:"sale_price" yaml:"sale_price" toml:"sale_price"` // Revenue per unit at maturity
}

// Equal reports whether two crops have identical fields.
func (c Crop) Equal(other Crop) bool {
	return c == other
}

// EffectiveCost returns the per-unit cost including the plow overhead.
func (c Crop) EffectiveCost(plowCost uint32) int64 {
	return int64(c.Cost) + int64(plowCost)
}

// UnitProfit returns the signed profit of a single unit.
func (c Crop) UnitProfit(plowCost uint32) int64 {
	return int64(c.SalePrice) - c.EffectiveCost(plowCost)
}

// Viable reports whether the crop sells for more than it costs to plant.
func (c Crop) Viable(plowCost uint32) bool {
	return c.UnitProfit(plowCost) > 0
}

// Validate checks the fields a catalog loader is responsible for.
func (c Crop) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCrop)
	}
	return nil
}
