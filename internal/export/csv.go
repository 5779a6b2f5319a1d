package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mriviere/discoverlens/internal/model"
)

// WriteResultsCSV writes one row per classified title, in input order.
func WriteResultsCSV(path string, results []model.ClassificationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)

	header := []string{
		"title", "main_category", "main_category_name",
		"main_score", "confidence", "secondary_categories", "keyword_only",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range results {
		secondary := make([]string, len(r.Secondary))
		for i, s := range r.Secondary {
			secondary[i] = s.Category
		}

		row := []string{
			r.Title,
			r.MainCategory,
			r.MainCategoryName,
			strconv.FormatFloat(r.MainScore, 'f', 4, 64),
			strconv.FormatFloat(r.Confidence, 'f', 4, 64),
			strings.Join(secondary, "|"),
			strconv.FormatBool(r.KeywordOnly),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return f.Sync()
}
