// Package xlsx writes crop rankings to Excel workbooks.
package xlsx

import (
	"fmt"
	"os"

	"github.com/runoshun/ft-calc/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the ranking is written to.
const SheetName = "Ranking"

// Header lists the ranking columns.
var Header = []any{"Rank", "Crop", "Count", "Profit", "Cost", "Time", "Sale Price"}

// Ensure Exporter implements domain.RankingExporter.
var _ domain.RankingExporter = (*Exporter)(nil)

// Exporter writes rankings as .xlsx workbooks.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the ranking to path, replacing any existing file.
// A failed export leaves an existing file untouched.
func (e *Exporter) Export(path string, ranking []domain.Evaluation) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range ranking {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{i + 1, r.Crop.Name, r.Units, r.Profit, r.Crop.Cost, r.Crop.Time, r.Crop.SalePrice}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return writeAtomic(path, buf.Bytes(), 0o644)
}

// writeAtomic writes content to a temporary file and renames it over path.
func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
