// Package classifier implements hybrid title classification: lexical keyword
// overlap blended with semantic embedding similarity.
package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/mriviere/discoverlens/internal/common"
	"github.com/mriviere/discoverlens/internal/embedding"
	"github.com/mriviere/discoverlens/internal/model"
)

// Scoring constants. The 0.4/0.6 blend and the 0.3 secondary threshold are
// hand-tuned; changing them changes every classification, so they stay fixed.
const (
	keywordWeight      = 0.4
	semanticWeight     = 0.6
	secondaryThreshold = 0.3
	maxSecondary       = 2
)

// Config holds classifier options.
type Config struct {
	// KeywordOnly disables the semantic term entirely. This is an explicit
	// opt-in: an unreachable embedding backend never silently degrades to
	// keyword scoring.
	KeywordOnly bool
}

// Classifier assigns titles to categories. Safe for concurrent reads after
// construction; the only mutation is the one-time category-embedding cache.
type Classifier struct {
	provider    embedding.Provider
	logger      *slog.Logger
	namesByKey  map[string]string
	catVectors  map[string][]float32
	categories  []model.Category
	embedOnce   sync.Once
	embedErr    error
	keywordOnly bool
}

// New creates a classifier over a fixed category set.
// Without KeywordOnly, a nil provider fails fast with ErrModelUnavailable.
func New(categories []model.Category, provider embedding.Provider, cfg Config, logger *slog.Logger) (*Classifier, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", common.ErrInvalidConfig)
	}
	if !cfg.KeywordOnly && provider == nil {
		return nil, fmt.Errorf("%w: no embedding provider configured", common.ErrModelUnavailable)
	}
	if logger == nil {
		logger = slog.Default()
	}

	namesByKey := make(map[string]string, len(categories))
	for _, cat := range categories {
		namesByKey[cat.Key] = cat.Name
	}

	return &Classifier{
		categories:  categories,
		provider:    provider,
		keywordOnly: cfg.KeywordOnly,
		namesByKey:  namesByKey,
		logger:      logger,
	}, nil
}

// CategoryName returns the display name for a category key.
func (c *Classifier) CategoryName(key string) string {
	return c.namesByKey[key]
}

// Categories returns the category set in declaration order.
func (c *Classifier) Categories() []model.Category {
	return c.categories
}

// categoryVectors lazily computes one representative embedding per category.
// Computed once per classifier lifetime, then read-only; concurrent first use
// is serialized by the sync.Once.
func (c *Classifier) categoryVectors(ctx context.Context) (map[string][]float32, error) {
	c.embedOnce.Do(func() {
		vectors := make(map[string][]float32, len(c.categories))
		for _, cat := range c.categories {
			vec, err := c.provider.Encode(ctx, cat.RepresentativeText())
			if err != nil {
				c.embedErr = fmt.Errorf("encoding category %q: %w", cat.Key, err)
				return
			}
			vectors[cat.Key] = vec
		}
		c.catVectors = vectors
		c.logger.Debug("category embeddings computed",
			"categories", len(vectors),
			"model", c.provider.Name())
	})

	if c.embedErr != nil {
		return nil, c.embedErr
	}
	return c.catVectors, nil
}

// keywordScore returns the fraction of category keywords contained in the
// lowercased title. Matching is substring containment, not word-boundary
// matching: "âge" matches inside "voyage". Known imprecision, preserved
// because fixing it would shift category boundaries.
func keywordScore(titleLower string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	matches := 0
	for _, kw := range keywords {
		if strings.Contains(titleLower, kw) {
			matches++
		}
	}
	return float64(matches) / float64(len(keywords))
}

// Classify assigns a title to its best category with a confidence margin.
// Pure given the category set and model: identical inputs yield identical
// results. An empty or whitespace-only title degrades to a keyword-only
// fallback instead of failing the caller's batch.
func (c *Classifier) Classify(ctx context.Context, title string) (model.ClassificationResult, error) {
	titleLower := strings.ToLower(strings.TrimSpace(title))

	if titleLower == "" {
		return c.fallbackResult(title, titleLower), nil
	}

	if c.keywordOnly {
		return c.scoreResult(title, titleLower, nil, true), nil
	}

	vectors, err := c.categoryVectors(ctx)
	if err != nil {
		return model.ClassificationResult{}, err
	}

	titleVec, err := c.provider.Encode(ctx, title)
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("encoding title: %w", err)
	}

	semantic := make(map[string]float64, len(c.categories))
	for _, cat := range c.categories {
		semantic[cat.Key] = embedding.Cosine(titleVec, vectors[cat.Key])
	}

	return c.scoreResult(title, titleLower, semantic, false), nil
}

// scoreResult computes per-category scores and assembles the result.
// When semantic is nil the score is keyword-only.
func (c *Classifier) scoreResult(title, titleLower string, semantic map[string]float64, keywordOnly bool) model.ClassificationResult {
	scores := make(model.CategoryScores, 0, len(c.categories))
	allScores := make(map[string]float64, len(c.categories))

	for _, cat := range c.categories {
		kw := keywordScore(titleLower, cat.Keywords)

		var final float64
		if semantic == nil {
			final = kw
		} else {
			final = keywordWeight*kw + semanticWeight*semantic[cat.Key]
		}

		scores = append(scores, model.CategoryScore{Category: cat.Key, Score: final})
		allScores[cat.Key] = final
	}

	// Stable sort keeps declaration order on ties.
	scores.SortDesc()

	main := scores[0]
	secondary := make(model.CategoryScores, 0, maxSecondary)
	for _, s := range scores[1:] {
		if s.Score > secondaryThreshold {
			secondary = append(secondary, s)
		}
		if len(secondary) == maxSecondary {
			break
		}
	}

	return model.ClassificationResult{
		Title:            title,
		MainCategory:     main.Category,
		MainCategoryName: c.namesByKey[main.Category],
		MainScore:        main.Score,
		Confidence:       confidence(scores),
		Secondary:        secondary,
		AllScores:        allScores,
		KeywordOnly:      keywordOnly,
	}
}

// fallbackResult handles titles that are empty after normalization: the best
// keyword-only match (which is the first declared category, since every
// score is zero) at zero confidence.
func (c *Classifier) fallbackResult(title, titleLower string) model.ClassificationResult {
	result := c.scoreResult(title, titleLower, nil, true)
	result.Confidence = 0
	return result
}

// confidence is the margin between the two best scores, doubled and capped
// at 1. A single category is trivially certain; identical scores give 0.
func confidence(sorted model.CategoryScores) float64 {
	if len(sorted) < 2 {
		return 1.0
	}

	diff := 2 * (sorted[0].Score - sorted[1].Score)
	if diff > 1.0 {
		return 1.0
	}
	if diff < 0 {
		return 0
	}
	return diff
}

// ClassifyBatch classifies titles in input order, one result per title.
// Runs sequentially: the embedding backend handle is shared, and encode
// calls on one handle must not interleave. Parallelism would require one
// provider per worker.
func (c *Classifier) ClassifyBatch(ctx context.Context, titles []string) ([]model.ClassificationResult, error) {
	results := make([]model.ClassificationResult, 0, len(titles))

	var bar *progressbar.ProgressBar
	if len(titles) > 1 {
		bar = progressbar.Default(int64(len(titles)), "classifying")
	}

	for i, title := range titles {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := c.Classify(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("classifying title %d: %w", i, err)
		}
		results = append(results, result)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	c.logger.Info("batch classified",
		"titles", len(titles),
		"keyword_only", c.keywordOnly)

	return results, nil
}
