package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mriviere/discoverlens/internal/common"
	"github.com/mriviere/discoverlens/internal/embedding"
	"github.com/mriviere/discoverlens/internal/model"
)

func testCategories() []model.Category {
	return []model.Category{
		{Key: "RECETTES", Name: "Recettes & Cuisine", Keywords: []string{"recette", "gratin"}},
		{Key: "BEAUTE", Name: "Beauté & Anti-âge", Keywords: []string{"beauté", "anti-âge"}},
		{Key: "FINANCE", Name: "Finance & Investissement", Keywords: []string{"investir", "bourse"}},
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		wantErr    error
		provider   embedding.Provider
		name       string
		categories []model.Category
		cfg        Config
	}{
		{
			name:       "no categories",
			categories: nil,
			provider:   embedding.NewMockProvider(),
			wantErr:    common.ErrInvalidConfig,
		},
		{
			name:       "nil provider without keyword-only",
			categories: testCategories(),
			provider:   nil,
			wantErr:    common.ErrModelUnavailable,
		},
		{
			name:       "nil provider with keyword-only",
			categories: testCategories(),
			provider:   nil,
			cfg:        Config{KeywordOnly: true},
		},
		{
			name:       "provider and categories",
			categories: testCategories(),
			provider:   embedding.NewMockProvider(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, err := New(tt.categories, tt.provider, tt.cfg, nil)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cls)
		})
	}
}

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		keywords []string
		want     float64
	}{
		{name: "no keywords", title: "anything", keywords: nil, want: 0},
		{name: "no matches", title: "rien ici", keywords: []string{"recette", "gratin"}, want: 0},
		{name: "half matched", title: "une recette du dimanche", keywords: []string{"recette", "gratin"}, want: 0.5},
		{name: "all matched", title: "recette de gratin", keywords: []string{"recette", "gratin"}, want: 1},
		{
			// Substring containment, not word-boundary matching.
			name:     "keyword inside another word",
			title:    "partir en voyage",
			keywords: []string{"age", "senior"},
			want:     0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, keywordScore(tt.title, tt.keywords), 1e-9)
		})
	}
}

func TestClassify_KeywordScenario(t *testing.T) {
	cls, err := New(testCategories(), embedding.NewMockProvider(), Config{}, nil)
	require.NoError(t, err)

	ctx := context.Background()
	tests := []struct {
		title string
		want  string
	}{
		{title: "Recette : gratin dauphinois en 20 minutes", want: "RECETTES"},
		{title: "5 astuces beauté anti-âge révélées", want: "BEAUTE"},
		{title: "Comment investir en bourse maintenant", want: "FINANCE"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			result, err := cls.Classify(ctx, tt.title)
			require.NoError(t, err)

			assert.Equal(t, tt.want, result.MainCategory)
			assert.Equal(t, cls.CategoryName(tt.want), result.MainCategoryName)

			// Main category is the argmax over all scores.
			for key, score := range result.AllScores {
				assert.LessOrEqual(t, score, result.MainScore, "category %s outscores main", key)
			}
		})
	}
}

func TestClassify_Properties(t *testing.T) {
	cls, err := New(testCategories(), embedding.NewMockProvider(), Config{}, nil)
	require.NoError(t, err)

	ctx := context.Background()
	titles := []string{
		"Recette : gratin dauphinois en 20 minutes",
		"Pourquoi investir maintenant",
		"Un titre sans aucun mot-clé connu",
	}

	for _, title := range titles {
		result, err := cls.Classify(ctx, title)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 1.0)
		assert.Len(t, result.AllScores, 3)
		assert.LessOrEqual(t, len(result.Secondary), maxSecondary)

		for _, s := range result.Secondary {
			assert.NotEqual(t, result.MainCategory, s.Category)
			assert.Greater(t, s.Score, secondaryThreshold)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	cls, err := New(testCategories(), embedding.NewMockProvider(), Config{}, nil)
	require.NoError(t, err)

	ctx := context.Background()
	title := "Recette : gratin dauphinois en 20 minutes"

	first, err := cls.Classify(ctx, title)
	require.NoError(t, err)
	second, err := cls.Classify(ctx, title)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassify_CategoryEmbeddingsComputedOnce(t *testing.T) {
	provider := embedding.NewMockProvider()
	cls, err := New(testCategories(), provider, Config{}, nil)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = cls.Classify(ctx, "premier titre")
	require.NoError(t, err)
	// 3 category texts plus the title.
	assert.Equal(t, 4, provider.CallCount())

	_, err = cls.Classify(ctx, "second titre")
	require.NoError(t, err)
	// Only the new title was encoded.
	assert.Equal(t, 5, provider.CallCount())
}

func TestClassify_ModelUnavailable(t *testing.T) {
	provider := embedding.NewMockProvider()
	provider.Fail(nil)

	cls, err := New(testCategories(), provider, Config{}, nil)
	require.NoError(t, err)

	_, err = cls.Classify(context.Background(), "un titre")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrModelUnavailable)
}

func TestClassify_EmptyTitleFallback(t *testing.T) {
	provider := embedding.NewMockProvider()
	cls, err := New(testCategories(), provider, Config{}, nil)
	require.NoError(t, err)

	result, err := cls.Classify(context.Background(), "   ")
	require.NoError(t, err)

	assert.Zero(t, result.Confidence)
	assert.True(t, result.KeywordOnly)
	// All keyword scores are zero, so the first declared category wins.
	assert.Equal(t, "RECETTES", result.MainCategory)
	// The embedding backend was never touched.
	assert.Zero(t, provider.CallCount())
}

func TestClassify_KeywordOnlyMode(t *testing.T) {
	cls, err := New(testCategories(), nil, Config{KeywordOnly: true}, nil)
	require.NoError(t, err)

	result, err := cls.Classify(context.Background(), "Recette de gratin maison")
	require.NoError(t, err)

	assert.True(t, result.KeywordOnly)
	assert.Equal(t, "RECETTES", result.MainCategory)
	assert.InDelta(t, 1.0, result.MainScore, 1e-9)
	// 2*(1.0-0) capped at 1.
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
}

func TestClassify_TiedScoresGiveZeroConfidence(t *testing.T) {
	categories := []model.Category{
		{Key: "A", Name: "A", Keywords: []string{"plat"}},
		{Key: "B", Name: "B", Keywords: []string{"plat"}},
	}

	cls, err := New(categories, nil, Config{KeywordOnly: true}, nil)
	require.NoError(t, err)

	result, err := cls.Classify(context.Background(), "un plat du jour")
	require.NoError(t, err)

	// Stable sort keeps declaration order on the tie.
	assert.Equal(t, "A", result.MainCategory)
	assert.Zero(t, result.Confidence)
	// The tied runner-up scores above the threshold.
	require.Len(t, result.Secondary, 1)
	assert.Equal(t, "B", result.Secondary[0].Category)
}

func TestClassify_SingleCategoryIsCertain(t *testing.T) {
	categories := []model.Category{
		{Key: "SEUL", Name: "Seul", Keywords: []string{"mot"}},
	}

	cls, err := New(categories, nil, Config{KeywordOnly: true}, nil)
	require.NoError(t, err)

	result, err := cls.Classify(context.Background(), "un mot")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
}

func TestClassifyBatch(t *testing.T) {
	cls, err := New(testCategories(), embedding.NewMockProvider(), Config{}, nil)
	require.NoError(t, err)

	titles := []string{
		"Recette : gratin dauphinois en 20 minutes",
		"5 astuces beauté anti-âge révélées",
		"Comment investir en bourse maintenant",
	}

	results, err := cls.ClassifyBatch(context.Background(), titles)
	require.NoError(t, err)
	require.Len(t, results, len(titles))

	// Input order is preserved.
	for i, r := range results {
		assert.Equal(t, titles[i], r.Title)
	}
}

func TestClassifyBatch_Cancellation(t *testing.T) {
	cls, err := New(testCategories(), embedding.NewMockProvider(), Config{}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = cls.ClassifyBatch(ctx, []string{"un", "deux"})
	assert.ErrorIs(t, err, context.Canceled)
}
