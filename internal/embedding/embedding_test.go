package embedding

import (
	"context"
	"testing"

	cohere "github.com/cohere-ai/cohere-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mriviere/discoverlens/internal/common"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "mismatched lengths", a: []float32{1, 2}, b: []float32{1}, want: 0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestMockProvider_Deterministic(t *testing.T) {
	provider := NewMockProvider()
	ctx := context.Background()

	first, err := provider.Encode(ctx, "recette de gratin")
	require.NoError(t, err)
	second, err := provider.Encode(ctx, "recette de gratin")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, mockDimensions)
}

func TestMockProvider_SharedVocabularyScoresHigher(t *testing.T) {
	provider := NewMockProvider()
	ctx := context.Background()

	base, err := provider.Encode(ctx, "recette de gratin facile")
	require.NoError(t, err)
	similar, err := provider.Encode(ctx, "recette de gratin rapide")
	require.NoError(t, err)
	unrelated, err := provider.Encode(ctx, "placement bancaire rentable")
	require.NoError(t, err)

	assert.Greater(t, Cosine(base, similar), Cosine(base, unrelated))
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	provider := NewMockProvider()
	ctx := context.Background()

	_, _ = provider.Encode(ctx, "un")
	_, _ = provider.Encode(ctx, "deux")

	assert.Equal(t, 2, provider.CallCount())
	assert.Equal(t, []string{"un", "deux"}, provider.Calls())
}

func TestMockProvider_Fail(t *testing.T) {
	provider := NewMockProvider()
	provider.Fail(nil)

	_, err := provider.Encode(context.Background(), "titre")
	assert.ErrorIs(t, err, common.ErrModelUnavailable)
}

func TestNewCohereProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewCohereProvider(CohereConfig{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestRespVectorCount(t *testing.T) {
	assert.Zero(t, respVectorCount(nil))
	assert.Zero(t, respVectorCount(&cohere.EmbedByTypeResponse{}))

	resp := &cohere.EmbedByTypeResponse{
		Embeddings: &cohere.EmbedByTypeResponseEmbeddings{
			Float: [][]float64{{0.1, 0.2}},
		},
	}
	assert.Equal(t, 1, respVectorCount(resp))
}

func TestNewCohereProvider_Defaults(t *testing.T) {
	provider, err := NewCohereProvider(CohereConfig{APIKey: "test-key"}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultCohereModel, provider.Name())
}
