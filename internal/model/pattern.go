package model

// StructureMatches maps a pattern id (e.g. "opening_comment") to the titles
// matching that pattern. A title may appear under any number of ids.
type StructureMatches map[string][]string

// TopPattern is one entry of a per-category pattern ranking.
type TopPattern struct {
	// Type is the pattern id.
	Type string `json:"type"`
	// Examples holds at most three matching titles.
	Examples []string `json:"examples"`
	// Count is the number of titles that matched.
	Count int `json:"count"`
}

// PatternSummary aggregates the structural patterns found in the titles of
// one category. Derived per analysis run, never persisted by the core.
type PatternSummary struct {
	// Structures maps each matched pattern id to its match count.
	Structures map[string]int `json:"structures"`
	// TopNgrams maps the most frequent n-grams to their counts.
	TopNgrams map[string]int `json:"top_ngrams"`
	// Category is the category display name.
	Category string `json:"category"`
	// TopPatterns ranks the five most frequent patterns with examples.
	TopPatterns []TopPattern `json:"top_patterns"`
	// UniqueWords lists up to twenty frequent non-stopword tokens.
	UniqueWords []string `json:"unique_words"`
	// TotalTitles is the number of titles in the category group.
	TotalTitles int `json:"total_titles"`
	// AvgLength is the mean title length in characters.
	AvgLength float64 `json:"avg_length"`
	// MinLength and MaxLength bound the title lengths.
	MinLength int `json:"min_length"`
	MaxLength int `json:"max_length"`
}
