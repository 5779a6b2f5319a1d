package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mriviere/discoverlens/internal/model"
)

func TestGeneratePatternInsights(t *testing.T) {
	summaries := map[string]model.PatternSummary{
		"Recettes & Cuisine": {
			Category:    "Recettes & Cuisine",
			AvgLength:   55.4,
			TopPatterns: []model.TopPattern{{Type: "opening_comment", Count: 3}},
			UniqueWords: []string{"gratin", "recette", "minutes", "facile", "rapide", "plat"},
			Structures: map[string]int{
				"opening_comment": 3,
				"numeric_chiffre": 2,
			},
		},
	}

	insights := GeneratePatternInsights(summaries)
	require.Contains(t, insights, "Recettes & Cuisine")

	lines := insights["Recettes & Cuisine"]
	// Insight text is compared for equality by exports; the wording is fixed.
	assert.Equal(t, []string{
		"Longueur optimale : 45 à 65 caractères",
		"Pattern dominant : opening comment",
		"Mots-clés performants : gratin, recette, minutes, facile, rapide",
		"Les chiffres augmentent l'engagement",
	}, lines)
}

func TestGeneratePatternInsights_EmotionalRemark(t *testing.T) {
	summaries := map[string]model.PatternSummary{
		"Psychologie": {
			Category:   "Psychologie",
			AvgLength:  60,
			Structures: map[string]int{"emotional_peur": 4},
		},
	}

	lines := GeneratePatternInsights(summaries)["Psychologie"]
	assert.Contains(t, lines, "Les déclencheurs émotionnels sont efficaces")
	assert.NotContains(t, lines, "Les chiffres augmentent l'engagement")
}

func TestGeneratePatternInsights_MinimalSummary(t *testing.T) {
	summaries := map[string]model.PatternSummary{
		"Vide": {Category: "Vide", AvgLength: 40},
	}

	lines := GeneratePatternInsights(summaries)["Vide"]
	// Only the length insight applies.
	assert.Equal(t, []string{"Longueur optimale : 30 à 50 caractères"}, lines)
}

func TestGlobalTopPatterns(t *testing.T) {
	summaries := map[string]model.PatternSummary{
		"A": {TopPatterns: []model.TopPattern{
			{Type: "opening_comment", Count: 5},
			{Type: "numeric_chiffre", Count: 2},
		}},
		"B": {TopPatterns: []model.TopPattern{
			{Type: "numeric_chiffre", Count: 4},
			{Type: "opening_voici", Count: 1},
		}},
	}

	top := GlobalTopPatterns(summaries, 2)
	require.Len(t, top, 2)

	assert.Equal(t, model.TopPattern{Type: "numeric_chiffre", Count: 6}, top[0])
	assert.Equal(t, model.TopPattern{Type: "opening_comment", Count: 5}, top[1])
}
