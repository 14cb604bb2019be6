package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/runoshun/ft-calc/internal/domain"
	"gopkg.in/yaml.v3"
)

// rankingEntry is the structured form of one ranked crop.
type rankingEntry struct {
	Crop      string `json:"crop" yaml:"crop"`
	Rank      int    `json:"rank" yaml:"rank"`
	Count     uint32 `json:"count" yaml:"count"`
	Profit    int64  `json:"profit" yaml:"profit"`
	Cost      uint32 `json:"cost" yaml:"cost"`
	Time      uint32 `json:"time" yaml:"time"`
	SalePrice uint32 `json:"sale_price" yaml:"sale_price"`
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// checkFormat rejects unknown output formats before any work is done.
func checkFormat(format string) error {
	if !domain.ValidOutputFormat(format) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidOutputFmt, format)
	}
	return nil
}

// writeRanking prints a ranking. The text format is one block per crop:
//
//	Crop: <name>
//	Count: <units>
//	Profit: <profit>
//	<blank line>
func writeRanking(w io.Writer, format string, ranking []domain.Evaluation) error {
	switch format {
	case domain.FormatJSON, domain.FormatYAML:
		entries := make([]rankingEntry, len(ranking))
		for i, r := range ranking {
			entries[i] = rankingEntry{
				Rank:      i + 1,
				Crop:      r.Crop.Name,
				Count:     r.Units,
				Profit:    r.Profit,
				Cost:      r.Crop.Cost,
				Time:      r.Crop.Time,
				SalePrice: r.Crop.SalePrice,
			}
		}
		return encode(w, format, entries)
	case domain.FormatTable:
		rows := make([][]string, len(ranking))
		for i, r := range ranking {
			rows[i] = []string{
				strconv.Itoa(i + 1),
				r.Crop.Name,
				fmt.Sprint(r.Units),
				fmt.Sprint(r.Profit),
			}
		}
		return renderTable(w, []string{"RANK", "CROP", "COUNT", "PROFIT"}, rows)
	default:
		for _, r := range ranking {
			_, _ = fmt.Fprintf(w, "Crop: %s\nCount: %d\nProfit: %d\n\n", r.Crop.Name, r.Units, r.Profit)
		}
		return nil
	}
}

// writeCrops prints catalog entries.
func writeCrops(w io.Writer, format string, crops []domain.Crop) error {
	switch format {
	case domain.FormatJSON, domain.FormatYAML:
		if crops == nil {
			crops = []domain.Crop{}
		}
		return encode(w, format, crops)
	case domain.FormatTable:
		rows := make([][]string, len(crops))
		for i, c := range crops {
			rows[i] = cropRow(c)
		}
		return renderTable(w, []string{"CROP", "COST", "TIME", "SALE PRICE"}, rows)
	default:
		for _, c := range crops {
			printCrop(w, c)
			_, _ = fmt.Fprintln(w)
		}
		return nil
	}
}

// writeBest prints a single crop.
func writeBest(w io.Writer, format string, crop domain.Crop) error {
	switch format {
	case domain.FormatJSON, domain.FormatYAML:
		return encode(w, format, crop)
	case domain.FormatTable:
		return renderTable(w, []string{"CROP", "COST", "TIME", "SALE PRICE"}, [][]string{cropRow(crop)})
	default:
		printCrop(w, crop)
		return nil
	}
}

func printCrop(w io.Writer, c domain.Crop) {
	_, _ = fmt.Fprintf(w, "Crop: %s\nCost: %d\nTime: %d\nSale Price: %d\n", c.Name, c.Cost, c.Time, c.SalePrice)
}

func cropRow(c domain.Crop) []string {
	return []string{c.Name, fmt.Sprint(c.Cost), fmt.Sprint(c.Time), fmt.Sprint(c.SalePrice)}
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	if format == domain.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderTable draws rows with a rounded border and a bold header.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
