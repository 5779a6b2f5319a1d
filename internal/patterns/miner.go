// Package patterns mines recurring surface structures from title sets:
// regex-based rhetorical patterns, frequent n-grams and word statistics.
package patterns

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mriviere/discoverlens/internal/model"
)

// compiledPattern holds a compiled regex pattern with its metadata.
type compiledPattern struct {
	regex *regexp.Regexp
	StructurePattern
}

// Miner applies the structural pattern battery to title sets.
// Regexes are compiled once at construction and reused; mining itself is
// pure and safe for concurrent use.
type Miner struct {
	patterns []compiledPattern
}

// NewMiner creates a miner with the given patterns.
func NewMiner(structurePatterns []StructurePattern) (*Miner, error) {
	compiled := make([]compiledPattern, 0, len(structurePatterns))

	for _, p := range structurePatterns {
		regex, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", p.ID, err)
		}
		compiled = append(compiled, compiledPattern{
			StructurePattern: p,
			regex:            regex,
		})
	}

	return &Miner{patterns: compiled}, nil
}

// NewDefaultMiner creates a miner with the default pattern battery.
// The defaults are known-good; a compile failure here is a programming error.
func NewDefaultMiner() *Miner {
	m, err := NewMiner(DefaultStructurePatterns())
	if err != nil {
		panic(fmt.Sprintf("default structure patterns: %v", err))
	}
	return m
}

// PatternCount returns the number of loaded patterns.
func (m *Miner) PatternCount() int {
	return len(m.patterns)
}

// DetectStructures applies every pattern to every title and collects the
// matching titles per pattern id. Patterns are not mutually exclusive: a
// title can match several patterns across and within families. Matching is
// done against the lowercased title; the original text is recorded.
func (m *Miner) DetectStructures(titles []string) model.StructureMatches {
	structures := make(model.StructureMatches)

	for _, title := range titles {
		titleLower := strings.ToLower(title)

		for _, p := range m.patterns {
			if p.regex.MatchString(titleLower) {
				structures[p.ID] = append(structures[p.ID], title)
			}
		}
	}

	return structures
}
