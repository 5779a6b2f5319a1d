package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mriviere/discoverlens/internal/model"
)

func TestAnalyzeDistribution(t *testing.T) {
	results := []model.ClassificationResult{
		{MainCategoryName: "Recettes & Cuisine", Confidence: 0.9},
		{MainCategoryName: "Recettes & Cuisine", Confidence: 0.8},
		{MainCategoryName: "Beauté & Anti-âge", Confidence: 0.2,
			Secondary: model.CategoryScores{{Category: "SANTE", Score: 0.4}}},
		{MainCategoryName: "Finance & Investissement", Confidence: 0.5},
	}

	summary := AnalyzeDistribution(results)

	assert.Equal(t, 4, summary.TotalTitles)
	assert.Equal(t, 2, summary.Counts["Recettes & Cuisine"])
	assert.Equal(t, 1, summary.Counts["Beauté & Anti-âge"])
	assert.Equal(t, 1, summary.Counts["Finance & Investissement"])

	assert.InDelta(t, 50.0, summary.Percentages["Recettes & Cuisine"], 1e-9)
	assert.InDelta(t, 25.0, summary.Percentages["Beauté & Anti-âge"], 1e-9)

	assert.Equal(t, 2, summary.HighConfidence)
	assert.Equal(t, 1, summary.LowConfidence)
	assert.Equal(t, 1, summary.MultiCategory)
}

func TestAnalyzeDistribution_Empty(t *testing.T) {
	summary := AnalyzeDistribution(nil)

	assert.Zero(t, summary.TotalTitles)
	assert.Empty(t, summary.Counts)
	assert.Empty(t, summary.Percentages)
}

func TestAnalyzeDistribution_PercentagesRounded(t *testing.T) {
	results := []model.ClassificationResult{
		{MainCategoryName: "A"},
		{MainCategoryName: "A"},
		{MainCategoryName: "B"},
	}

	summary := AnalyzeDistribution(results)

	assert.InDelta(t, 66.67, summary.Percentages["A"], 1e-9)
	assert.InDelta(t, 33.33, summary.Percentages["B"], 1e-9)
}
