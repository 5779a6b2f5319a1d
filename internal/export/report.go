package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mriviere/discoverlens/internal/analysis"
	"github.com/mriviere/discoverlens/internal/cli"
	"github.com/mriviere/discoverlens/internal/model"
)

// Formatter renders analysis reports for terminal display.
type Formatter struct{}

// NewFormatter creates a report formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatSummary renders the full report as styled terminal text.
func (f *Formatter) FormatSummary(report *analysis.Report) string {
	if report == nil {
		return cli.ErrorStyle.Render("No report available")
	}

	var sections []string

	sections = append(sections, f.formatHeader(report))
	sections = append(sections, f.formatDistribution(report.Distribution))

	if len(report.Patterns) > 0 {
		sections = append(sections, f.formatPatterns(report.Patterns))
	}
	if len(report.Insights) > 0 {
		sections = append(sections, f.formatInsights(report.Insights))
	}
	if len(report.GlobalTopPatterns) > 0 {
		sections = append(sections, f.formatGlobalPatterns(report.GlobalTopPatterns))
	}

	return strings.Join(sections, "\n\n")
}

func (f *Formatter) formatHeader(report *analysis.Report) string {
	title := cli.FormatTitle(cli.ChartIcon + " Analyse des titres")
	sub := cli.SubtleStyle.Render(fmt.Sprintf("%d titres classés en %d groupes",
		report.Distribution.TotalTitles, len(report.Patterns)))
	return title + "\n" + sub
}

// formatDistribution renders category counts sorted by count, then name.
func (f *Formatter) formatDistribution(dist model.DistributionSummary) string {
	names := make([]string, 0, len(dist.Counts))
	for name := range dist.Counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if dist.Counts[names[i]] != dist.Counts[names[j]] {
			return dist.Counts[names[i]] > dist.Counts[names[j]]
		}
		return names[i] < names[j]
	})

	var b strings.Builder
	b.WriteString(cli.SubtitleStyle.Render("Répartition par catégorie"))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(fmt.Sprintf("  %-40s %4d  (%.2f%%)\n",
			name, dist.Counts[name], dist.Percentages[name]))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s confiance élevée : %d    faible : %d    multi-catégories : %d",
		cli.SearchIcon, dist.HighConfidence, dist.LowConfidence, dist.MultiCategory))

	return b.String()
}

func (f *Formatter) formatPatterns(summaries map[string]model.PatternSummary) string {
	categories := make([]string, 0, len(summaries))
	for name := range summaries {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString(cli.SubtitleStyle.Render("Patterns par catégorie"))

	for _, category := range categories {
		s := summaries[category]
		b.WriteString("\n\n")
		b.WriteString(cli.SuccessStyle.Render(category))
		b.WriteString(fmt.Sprintf("\n  %d titres, longueur %d-%d (moy. %.0f)",
			s.TotalTitles, s.MinLength, s.MaxLength, s.AvgLength))

		for _, tp := range s.TopPatterns {
			b.WriteString(fmt.Sprintf("\n  - %s (%d)", tp.Type, tp.Count))
			for _, ex := range tp.Examples {
				b.WriteString("\n      " + cli.SubtleStyle.Render(truncate(ex, 70)))
			}
		}
	}

	return b.String()
}

func (f *Formatter) formatInsights(insights map[string][]string) string {
	categories := make([]string, 0, len(insights))
	for name := range insights {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString(cli.SubtitleStyle.Render(cli.BulbIcon + " Insights"))

	for _, category := range categories {
		b.WriteString("\n\n" + cli.SuccessStyle.Render(category))
		for _, line := range insights[category] {
			b.WriteString("\n  • " + line)
		}
	}

	return b.String()
}

func (f *Formatter) formatGlobalPatterns(top []model.TopPattern) string {
	var b strings.Builder
	b.WriteString(cli.SubtitleStyle.Render("Patterns dominants (corpus entier)"))
	for i, tp := range top {
		b.WriteString(fmt.Sprintf("\n  %d. %-28s %d titres", i+1, tp.Type, tp.Count))
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
