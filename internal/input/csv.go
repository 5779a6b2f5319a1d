// Package input reads title datasets from CSV files.
package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mriviere/discoverlens/internal/common"
)

// ReadTitles extracts the values of the named column from a CSV file.
// Rows with an empty or whitespace-only value are skipped. A missing column
// or an input with no usable rows is an input error: the caller aborts this
// input without crashing the process.
func ReadTitles(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return readTitles(f, path, column)
}

func readTitles(r io.Reader, name, column string) ([]string, error) {
	reader := csv.NewReader(r)
	// Title text can contain unescaped quotes; be permissive.
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s is empty", common.ErrEmptyInput, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	colIdx := -1
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		return nil, fmt.Errorf("%w: column %q not in %v", common.ErrMissingColumn, column, header)
	}

	var titles []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if colIdx >= len(record) {
			continue
		}
		title := strings.TrimSpace(record[colIdx])
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}

	if len(titles) == 0 {
		return nil, fmt.Errorf("%w: column %q of %s has no usable rows", common.ErrEmptyInput, column, name)
	}

	return titles, nil
}
