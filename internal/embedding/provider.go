// Package embedding wraps sentence-embedding backends behind a small
// provider interface and supplies the vector math used by classification.
package embedding

import (
	"context"
	"math"
)

// Provider encodes arbitrary text into a fixed-length numeric vector.
// Implementations must be safe for sequential reuse; concurrent use is only
// allowed when the backend documents it.
type Provider interface {
	// Encode returns the embedding vector for text.
	Encode(ctx context.Context, text string) ([]float32, error)
	// Name identifies the underlying model, for logs and exports.
	Name() string
}

// Cosine returns the cosine similarity of two vectors, in [-1,1].
// Mismatched or zero-magnitude vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
