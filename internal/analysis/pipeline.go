// Package analysis orchestrates a full title analysis: classification,
// distribution, pattern mining, feature extraction and insight generation.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mriviere/discoverlens/internal/classifier"
	"github.com/mriviere/discoverlens/internal/features"
	"github.com/mriviere/discoverlens/internal/model"
	"github.com/mriviere/discoverlens/internal/patterns"
)

// globalPatternCount bounds the corpus-wide pattern ranking in reports.
const globalPatternCount = 5

// Report bundles everything one analysis run produces.
type Report struct {
	// Distribution summarizes category counts and confidence bands.
	Distribution model.DistributionSummary `json:"summary"`
	// Patterns holds one summary per category group, keyed by display name.
	Patterns map[string]model.PatternSummary `json:"patterns"`
	// Insights holds the generated French insight lines per category.
	Insights map[string][]string `json:"insights"`
	// FeatureStats summarizes numeric title features over the batch.
	FeatureStats map[string]features.Stats `json:"feature_stats"`
	// Results lists the per-title classifications, in input order.
	Results []model.ClassificationResult `json:"results"`
	// GlobalTopPatterns ranks patterns over the whole corpus.
	GlobalTopPatterns []model.TopPattern `json:"global_top_patterns"`
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"-"`
}

// Pipeline wires the analysis stages together. Stages past classification
// are pure functions of the classified set, so a stored run can be
// re-aggregated without touching the embedding backend.
type Pipeline struct {
	classifier *classifier.Classifier
	aggregator *patterns.Aggregator
	extractor  *features.Extractor
	logger     *slog.Logger
}

// NewPipeline creates a pipeline over the given classifier.
func NewPipeline(cls *classifier.Classifier, miner *patterns.Miner, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		classifier: cls,
		aggregator: patterns.NewAggregator(miner),
		extractor:  features.NewExtractor(),
		logger:     logger,
	}
}

// Run classifies the titles and aggregates every downstream summary.
func (p *Pipeline) Run(ctx context.Context, titles []string) (*Report, error) {
	start := time.Now()

	results, err := p.classifier.ClassifyBatch(ctx, titles)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	report := p.Aggregate(results)
	report.Elapsed = time.Since(start)

	p.logger.Info("analysis complete",
		"titles", len(titles),
		"categories", len(report.Patterns),
		"elapsed", report.Elapsed)

	return report, nil
}

// Aggregate rebuilds all summaries from an already classified set. Used both
// by Run and to re-analyze stored runs; identical inputs give identical
// reports.
func (p *Pipeline) Aggregate(results []model.ClassificationResult) *Report {
	summaries := p.aggregator.AnalyzePatternsByCategory(results)

	titles := make([]string, len(results))
	for i, r := range results {
		titles[i] = r.Title
	}

	return &Report{
		Results:           results,
		Distribution:      classifier.AnalyzeDistribution(results),
		Patterns:          summaries,
		Insights:          patterns.GeneratePatternInsights(summaries),
		GlobalTopPatterns: patterns.GlobalTopPatterns(summaries, globalPatternCount),
		FeatureStats:      features.BatchStats(p.extractor.ExtractBatch(titles)),
	}
}
