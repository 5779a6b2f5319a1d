package patterns

import (
	"sort"
	"unicode/utf8"

	"github.com/mriviere/discoverlens/internal/model"
)

// Aggregation bounds.
const (
	// minGroupSize skips categories with too few titles to say anything
	// useful about. Documented policy, not a bug.
	minGroupSize = 5
	// summaryNgrams caps the n-grams kept in a category summary.
	summaryNgrams = 20
	// topPatternCount ranks the most frequent patterns per category.
	topPatternCount = 5
	// topPatternExamples caps the example titles per ranked pattern.
	topPatternExamples = 3
	// uniqueWordCount caps the frequent-word list per category.
	uniqueWordCount = 20
	// minWordLength drops short tokens from the unique-word ranking.
	minWordLength = 3
)

// Aggregator groups classified titles by category and summarizes each
// group's structural patterns. A pure function of the classified set:
// re-running over stored results reproduces identical summaries.
type Aggregator struct {
	miner *Miner
}

// NewAggregator creates an aggregator over the given miner.
func NewAggregator(miner *Miner) *Aggregator {
	return &Aggregator{miner: miner}
}

// AnalyzePatternsByCategory groups results by main category and mines each
// group with at least five titles. Keys are category display names.
func (a *Aggregator) AnalyzePatternsByCategory(results []model.ClassificationResult) map[string]model.PatternSummary {
	groups := make(map[string][]string)
	for _, r := range results {
		groups[r.MainCategoryName] = append(groups[r.MainCategoryName], r.Title)
	}

	summaries := make(map[string]model.PatternSummary)
	for category, titles := range groups {
		if len(titles) < minGroupSize {
			continue
		}
		summaries[category] = a.summarize(category, titles)
	}

	return summaries
}

// summarize mines one category group.
func (a *Aggregator) summarize(category string, titles []string) model.PatternSummary {
	structures := a.miner.DetectStructures(titles)

	structureCounts := make(map[string]int, len(structures))
	for id, matched := range structures {
		structureCounts[id] = len(matched)
	}

	topNgrams := make(map[string]int, summaryNgrams)
	for i, ng := range ExtractNgrams(titles, 2, 5) {
		if i == summaryNgrams {
			break
		}
		topNgrams[ng.Ngram] = ng.Count
	}

	minLen, maxLen, total := 0, 0, 0
	for i, title := range titles {
		length := utf8.RuneCountInString(title)
		total += length
		if i == 0 || length < minLen {
			minLen = length
		}
		if length > maxLen {
			maxLen = length
		}
	}

	return model.PatternSummary{
		Category:    category,
		TotalTitles: len(titles),
		Structures:  structureCounts,
		TopNgrams:   topNgrams,
		AvgLength:   float64(total) / float64(len(titles)),
		MinLength:   minLen,
		MaxLength:   maxLen,
		TopPatterns: topPatterns(structures, topPatternCount),
		UniqueWords: uniqueWords(titles),
	}
}

// topPatterns ranks pattern ids by match count, keeping a few example
// titles each. Ties break alphabetically for determinism.
func topPatterns(structures model.StructureMatches, n int) []model.TopPattern {
	ids := make([]string, 0, len(structures))
	for id := range structures {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ci, cj := len(structures[ids[i]]), len(structures[ids[j]])
		if ci != cj {
			return ci > cj
		}
		return ids[i] < ids[j]
	})

	if len(ids) > n {
		ids = ids[:n]
	}

	top := make([]model.TopPattern, 0, len(ids))
	for _, id := range ids {
		examples := structures[id]
		if len(examples) > topPatternExamples {
			examples = examples[:topPatternExamples]
		}
		top = append(top, model.TopPattern{
			Type:     id,
			Count:    len(structures[id]),
			Examples: examples,
		})
	}
	return top
}

// uniqueWords returns the most frequent non-stopword tokens longer than
// three characters, capped at twenty. Ties keep first-occurrence order.
func uniqueWords(titles []string) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, title := range titles {
		for _, token := range Tokenize(title) {
			if utf8.RuneCountInString(token) <= minWordLength || isStopword(token) {
				continue
			}
			if _, ok := counts[token]; !ok {
				firstSeen[token] = len(firstSeen)
			}
			counts[token]++
		}
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if len(words) > uniqueWordCount {
		words = words[:uniqueWordCount]
	}
	return words
}
