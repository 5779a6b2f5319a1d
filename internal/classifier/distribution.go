package classifier

import (
	"math"

	"github.com/mriviere/discoverlens/internal/model"
)

// Confidence bands used by the distribution summary.
const (
	highConfidenceFloor = 0.7
	lowConfidenceCeil   = 0.3
)

// AnalyzeDistribution summarizes how a batch of results spreads over
// categories. Keys are display names, matching the exported reports.
func AnalyzeDistribution(results []model.ClassificationResult) model.DistributionSummary {
	summary := model.DistributionSummary{
		TotalTitles: len(results),
		Counts:      make(map[string]int),
		Percentages: make(map[string]float64),
	}

	for _, r := range results {
		summary.Counts[r.MainCategoryName]++

		if r.Confidence > highConfidenceFloor {
			summary.HighConfidence++
		}
		if r.Confidence < lowConfidenceCeil {
			summary.LowConfidence++
		}
		if len(r.Secondary) > 0 {
			summary.MultiCategory++
		}
	}

	if summary.TotalTitles > 0 {
		for name, count := range summary.Counts {
			pct := float64(count) / float64(summary.TotalTitles) * 100
			summary.Percentages[name] = math.Round(pct*100) / 100
		}
	}

	return summary
}
