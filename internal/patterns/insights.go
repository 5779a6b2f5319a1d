package patterns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mriviere/discoverlens/internal/model"
)

// lengthMargin widens the observed average into a recommended range.
const lengthMargin = 10

// GeneratePatternInsights turns category summaries into actionable
// French insight strings. Generation is template-based and deterministic:
// exports and reports compare these strings for equality across runs.
func GeneratePatternInsights(summaries map[string]model.PatternSummary) map[string][]string {
	insights := make(map[string][]string, len(summaries))

	for category, summary := range summaries {
		var lines []string

		lines = append(lines, fmt.Sprintf("Longueur optimale : %d à %d caractères",
			int(summary.AvgLength)-lengthMargin,
			int(summary.AvgLength)+lengthMargin))

		if len(summary.TopPatterns) > 0 {
			dominant := strings.ReplaceAll(summary.TopPatterns[0].Type, "_", " ")
			lines = append(lines, "Pattern dominant : "+dominant)
		}

		if len(summary.UniqueWords) > 0 {
			top := summary.UniqueWords
			if len(top) > 5 {
				top = top[:5]
			}
			lines = append(lines, "Mots-clés performants : "+strings.Join(top, ", "))
		}

		if anyFamily(summary.Structures, FamilyNumeric) {
			lines = append(lines, "Les chiffres augmentent l'engagement")
		}
		if anyFamily(summary.Structures, FamilyEmotional) {
			lines = append(lines, "Les déclencheurs émotionnels sont efficaces")
		}

		insights[category] = lines
	}

	return insights
}

// anyFamily reports whether any matched pattern id belongs to the family.
func anyFamily(structures map[string]int, family Family) bool {
	prefix := string(family) + "_"
	for id := range structures {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

// GlobalTopPatterns merges the per-category pattern rankings into one
// corpus-wide ranking, used by the summary report.
func GlobalTopPatterns(summaries map[string]model.PatternSummary, n int) []model.TopPattern {
	totals := make(map[string]int)
	for _, summary := range summaries {
		for _, tp := range summary.TopPatterns {
			totals[tp.Type] += tp.Count
		}
	}

	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if totals[ids[i]] != totals[ids[j]] {
			return totals[ids[i]] > totals[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > n {
		ids = ids[:n]
	}

	top := make([]model.TopPattern, 0, len(ids))
	for _, id := range ids {
		top = append(top, model.TopPattern{Type: id, Count: totals[id]})
	}
	return top
}
