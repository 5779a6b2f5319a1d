package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mriviere/discoverlens/internal/analysis"
	"github.com/mriviere/discoverlens/internal/model"
)

func sampleReport() *analysis.Report {
	return &analysis.Report{
		Results: []model.ClassificationResult{
			{
				Title:            "Recette : gratin dauphinois",
				MainCategory:     "RECETTES_CUISINE",
				MainCategoryName: "Recettes & Cuisine",
				MainScore:        0.82,
				Confidence:       0.64,
				Secondary: model.CategoryScores{
					{Category: "LIFESTYLE_BIENETRE", Score: 0.41},
				},
				AllScores: map[string]float64{"RECETTES_CUISINE": 0.82},
			},
		},
		Distribution: model.DistributionSummary{
			TotalTitles: 1,
			Counts:      map[string]int{"Recettes & Cuisine": 1},
			Percentages: map[string]float64{"Recettes & Cuisine": 100},
		},
		Patterns: map[string]model.PatternSummary{
			"Recettes & Cuisine": {
				Category:    "Recettes & Cuisine",
				TotalTitles: 5,
				AvgLength:   48,
				MinLength:   30,
				MaxLength:   70,
				TopPatterns: []model.TopPattern{
					{Type: "opening_voici", Count: 3, Examples: []string{"Voici un exemple"}},
				},
			},
		},
		Insights: map[string][]string{
			"Recettes & Cuisine": {"Longueur optimale : 38 à 58 caractères"},
		},
		GlobalTopPatterns: []model.TopPattern{{Type: "opening_voici", Count: 3}},
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, WriteJSON(path, "titles.csv", sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded jsonExport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "titles.csv", decoded.Source)
	assert.False(t, decoded.GeneratedAt.IsZero())
	require.NotNil(t, decoded.Report)
	assert.Equal(t, 1, decoded.Report.Distribution.TotalTitles)
	assert.Contains(t, decoded.Report.Insights, "Recettes & Cuisine")
}

func TestWriteResultsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	require.NoError(t, WriteResultsCSV(path, sampleReport().Results))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"title", "main_category", "main_category_name",
		"main_score", "confidence", "secondary_categories", "keyword_only",
	}, rows[0])

	assert.Equal(t, "Recette : gratin dauphinois", rows[1][0])
	assert.Equal(t, "RECETTES_CUISINE", rows[1][1])
	assert.Equal(t, "0.8200", rows[1][3])
	assert.Equal(t, "LIFESTYLE_BIENETRE", rows[1][5])
	assert.Equal(t, "false", rows[1][6])
}

func TestFormatSummary(t *testing.T) {
	out := NewFormatter().FormatSummary(sampleReport())

	assert.Contains(t, out, "Recettes & Cuisine")
	assert.Contains(t, out, "opening_voici")
	assert.Contains(t, out, "Longueur optimale : 38 à 58 caractères")
	assert.Contains(t, out, "Patterns dominants")
}

func TestFormatSummary_NilReport(t *testing.T) {
	out := NewFormatter().FormatSummary(nil)
	assert.Contains(t, out, "No report available")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "court", truncate("court", 10))
	assert.Equal(t, "très long…", truncate("très long titre", 10))
}
