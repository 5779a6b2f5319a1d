package patterns

import (
	"regexp"
	"sort"
	"strings"
)

// N-gram extraction bounds.
const (
	// minNgramCount drops n-grams seen fewer than 3 times.
	minNgramCount = 3
	// maxNgrams caps the returned ranking.
	maxNgrams = 100
)

// tokenRe matches word tokens: letter/digit runs with internal apostrophes
// or hyphens ("j'ai", "anti-âge" stay single tokens).
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’-][\p{L}\p{N}]+)*`)

// Tokenize splits a title into lowercase word tokens. Punctuation is
// discarded rather than emitted as tokens.
func Tokenize(title string) []string {
	return tokenRe.FindAllString(strings.ToLower(title), -1)
}

// NgramCount pairs an n-gram with its frequency across a title set.
type NgramCount struct {
	Ngram string
	Count int
}

// ExtractNgrams generates contiguous word n-grams for every n in
// [minN, maxN] across all titles, keeps those occurring at least three
// times, and returns the top 100 sorted by descending count. Ties keep
// discovery order, so the ranking is deterministic for a given input order.
func ExtractNgrams(titles []string, minN, maxN int) []NgramCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, title := range titles {
		tokens := Tokenize(title)
		for n := minN; n <= maxN; n++ {
			for i := 0; i+n <= len(tokens); i++ {
				gram := strings.Join(tokens[i:i+n], " ")
				if _, ok := counts[gram]; !ok {
					firstSeen[gram] = len(firstSeen)
				}
				counts[gram]++
			}
		}
	}

	frequent := make([]NgramCount, 0, len(counts))
	for gram, count := range counts {
		if count >= minNgramCount {
			frequent = append(frequent, NgramCount{Ngram: gram, Count: count})
		}
	}

	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].Count != frequent[j].Count {
			return frequent[i].Count > frequent[j].Count
		}
		return firstSeen[frequent[i].Ngram] < firstSeen[frequent[j].Ngram]
	})

	if len(frequent) > maxNgrams {
		frequent = frequent[:maxNgrams]
	}
	return frequent
}
