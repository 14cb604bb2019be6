package domain

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// maxFilterNodes limits the AST size of a filter expression.
const maxFilterNodes = 100

// CropEnv defines the variables available to a crop filter expression.
type CropEnv struct {
	Name      string `expr:"name"`
	Cost      uint32 `expr:"cost"`
	Time      uint32 `expr:"time"`
	SalePrice uint32 `expr:"sale_price"`
}

// CropFilter selects catalog entries with a boolean expression,
// e.g. `sale_price > 100 && time <= 30`.
type CropFilter struct {
	program *vm.Program
	source  string
}

// CompileCropFilter compiles an expression once for repeated evaluation.
// An empty expression yields a nil filter that matches every crop.
func CompileCropFilter(source string) (*CropFilter, error) {
	if source == "" {
		return nil, nil
	}
	program, err := expr.Compile(source,
		expr.Env(CropEnv{}),
		expr.AsBool(),
		expr.MaxNodes(maxFilterNodes),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return &CropFilter{program: program, source: source}, nil
}

// String returns the source expression.
func (f *CropFilter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Match reports whether the crop satisfies the expression.
func (f *CropFilter) Match(c Crop) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, CropEnv{
		Name:      c.Name,
		Cost:      c.Cost,
		Time:      c.Time,
		SalePrice: c.SalePrice,
	})
	if err != nil {
		return false, fmt.Errorf("%w: evaluate %q for %q: %w", ErrInvalidFilter, f.source, c.Name, err)
	}
	matched, _ := out.(bool)
	return matched, nil
}

// Apply returns the crops matching the filter, preserving order.
// The returned slice is a new slice; the input is never modified.
func (f *CropFilter) Apply(crops []Crop) ([]Crop, error) {
	out := make([]Crop, 0, len(crops))
	for _, c := range crops {
		ok, err := f.Match(c)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}
