package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"github.com/mriviere/discoverlens/internal/common"
)

// DefaultCohereModel is the multilingual embedding model used when no model
// is configured. Multilingual coverage matters: the corpus is French.
const DefaultCohereModel = "embed-multilingual-v3.0"

// CohereConfig holds configuration for the Cohere embedding provider.
type CohereConfig struct {
	APIKey     string
	Model      string
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// CohereProvider implements Provider using the Cohere Embed v2 API.
type CohereProvider struct {
	client    *cohereclient.Client
	logger    *slog.Logger
	model     string
	retryOpts common.RetryOptions
}

// NewCohereProvider creates a Cohere-backed embedding provider.
// A missing API key is a configuration error, not a model error: the caller
// decides whether keyword-only mode was explicitly requested.
func NewCohereProvider(cfg CohereConfig, logger *slog.Logger) (*CohereProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: cohere api key not set", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultCohereModel
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	client := cohereclient.NewClient(
		cohereclient.WithToken(cfg.APIKey),
		cohereclient.WithHTTPClient(&http.Client{Timeout: timeout}),
	)

	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CohereProvider{
		client:    client,
		model:     model,
		logger:    logger,
		retryOpts: retryOpts,
	}, nil
}

// Name returns the configured model name.
func (p *CohereProvider) Name() string {
	return p.model
}

// Encode returns the embedding vector for text. Transient HTTP failures are
// retried; a final failure surfaces as ErrModelUnavailable so classification
// fails fast instead of silently degrading to keyword-only scoring.
func (p *CohereProvider) Encode(ctx context.Context, text string) ([]float32, error) {
	var vector []float32

	err := common.WithRetry(ctx, func() error {
		resp, err := p.client.V2.Embed(ctx, &cohere.V2EmbedRequest{
			Texts:          []string{text},
			Model:          p.model,
			InputType:      cohere.EmbedInputTypeClustering,
			EmbeddingTypes: []cohere.EmbeddingType{cohere.EmbeddingTypeFloat},
		})
		if err != nil {
			p.logger.Warn("embed attempt failed", "error", err, "model", p.model)
			return &common.RetryableError{Err: err, Retryable: true}
		}
		if resp == nil || resp.Embeddings == nil || len(resp.Embeddings.Float) != 1 {
			return &common.RetryableError{
				Err:       fmt.Errorf("embed returned %d vectors, want 1", respVectorCount(resp)),
				Retryable: true,
			}
		}

		raw := resp.Embeddings.Float[0]
		vector = make([]float32, len(raw))
		for i, v := range raw {
			vector[i] = float32(v)
		}
		return nil
	}, p.retryOpts)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrModelUnavailable, err)
	}

	return vector, nil
}

func respVectorCount(resp *cohere.EmbedByTypeResponse) int {
	if resp == nil || resp.Embeddings == nil {
		return 0
	}
	return len(resp.Embeddings.Float)
}
