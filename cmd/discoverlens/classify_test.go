package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mriviere/discoverlens/internal/model"
)

func testNameFor(key string) string {
	names := map[string]string{
		"RECETTES_CUISINE":   "Recettes & Cuisine",
		"LIFESTYLE_BIENETRE": "Lifestyle & Bien-être",
	}
	return names[key]
}

func TestFormatClassification(t *testing.T) {
	result := model.ClassificationResult{
		Title:            "Cette recette de gratin va vous surprendre",
		MainCategory:     "RECETTES_CUISINE",
		MainCategoryName: "Recettes & Cuisine",
		MainScore:        0.82,
		Confidence:       0.64,
		Secondary: model.CategoryScores{
			{Category: "LIFESTYLE_BIENETRE", Score: 0.41},
		},
	}

	out := formatClassification(result, testNameFor)

	assert.Contains(t, out, "Cette recette de gratin va vous surprendre")
	assert.Contains(t, out, "Recettes & Cuisine (RECETTES_CUISINE)")
	assert.Contains(t, out, "score 0.8200, confiance 0.64")
	assert.Contains(t, out, "aussi : Lifestyle & Bien-être (0.4100)")
	assert.NotContains(t, out, "confiance faible")
}

func TestFormatClassification_LowConfidenceAndKeywordOnly(t *testing.T) {
	result := model.ClassificationResult{
		Title:            "Un titre ambigu",
		MainCategory:     "RECETTES_CUISINE",
		MainCategoryName: "Recettes & Cuisine",
		Confidence:       0.1,
		KeywordOnly:      true,
	}

	out := formatClassification(result, testNameFor)

	assert.Contains(t, out, "score lexical uniquement")
	assert.Contains(t, out, "confiance faible")
}
