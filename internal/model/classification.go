package model

import "sort"

// CategoryScore pairs a category key with its hybrid score.
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// CategoryScores is a slice of CategoryScore that supports stable sorting.
type CategoryScores []CategoryScore

// SortDesc sorts scores in descending order. The sort is stable so that
// categories with identical scores keep their declaration order.
func (s CategoryScores) SortDesc() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Score > s[j].Score
	})
}

// ClassificationResult holds the outcome of classifying a single title.
// Results are value objects, created once and never mutated.
type ClassificationResult struct {
	// AllScores maps every category key to its final hybrid score.
	AllScores map[string]float64 `json:"all_scores"`
	// Title is the original, unnormalized title text.
	Title string `json:"title"`
	// MainCategory is the key of the highest-scoring category.
	MainCategory string `json:"main_category"`
	// MainCategoryName is the display name of the main category.
	MainCategoryName string `json:"main_category_name"`
	// Secondary lists at most two runner-up categories with score above the
	// secondary threshold. Never contains MainCategory.
	Secondary CategoryScores `json:"secondary_categories"`
	// MainScore is the score of MainCategory.
	MainScore float64 `json:"main_score"`
	// Confidence measures the separation between the two best categories,
	// in [0,1]. It is a margin, not a probability.
	Confidence float64 `json:"confidence"`
	// KeywordOnly marks results produced without the embedding term, either
	// because keyword-only mode was requested or as per-title fallback.
	KeywordOnly bool `json:"keyword_only,omitempty"`
}

// DistributionSummary describes how a batch of results spreads over categories.
type DistributionSummary struct {
	// Counts maps category display name to number of titles.
	Counts map[string]int `json:"distribution"`
	// Percentages maps category display name to its share of the batch,
	// rounded to 2 decimal places.
	Percentages map[string]float64 `json:"distribution_pct"`
	// TotalTitles is the number of classified titles.
	TotalTitles int `json:"total_titles"`
	// HighConfidence counts results with confidence above 0.7.
	HighConfidence int `json:"high_confidence_titles"`
	// LowConfidence counts results with confidence below 0.3.
	LowConfidence int `json:"low_confidence_titles"`
	// MultiCategory counts results with at least one secondary category.
	MultiCategory int `json:"multi_category_titles"`
}
