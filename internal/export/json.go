// Package export writes analysis reports to files and the terminal.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mriviere/discoverlens/internal/analysis"
)

// jsonExport is the on-disk shape of an exported report.
type jsonExport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Source      string           `json:"source,omitempty"`
	Report      *analysis.Report `json:"report"`
}

// WriteJSON writes the full report as indented JSON.
func WriteJSON(path, source string, report *analysis.Report) error {
	payload := jsonExport{
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Report:      report,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
