package embedding

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"

	"github.com/mriviere/discoverlens/internal/common"
)

// mockDimensions is the vector size produced by the mock provider.
const mockDimensions = 64

// MockProvider is a deterministic, offline Provider for tests.
// Vectors are hashed bags of words, so texts sharing vocabulary get high
// cosine similarity - a rough but stable stand-in for a sentence model.
type MockProvider struct {
	err   error
	calls []string
	mu    sync.Mutex
}

// NewMockProvider creates a new mock embedding provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name identifies the mock model.
func (m *MockProvider) Name() string {
	return "mock-bag-of-words"
}

// Fail makes every subsequent Encode return ErrModelUnavailable.
func (m *MockProvider) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		err = common.ErrModelUnavailable
	}
	m.err = err
}

// Encode returns a deterministic vector for text.
func (m *MockProvider) Encode(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	err := m.err
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}

	vec := make([]float32, mockDimensions)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vec[h.Sum32()%mockDimensions]++
	}
	return vec, nil
}

// CallCount returns how many times Encode was invoked.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the encoded texts, in order.
func (m *MockProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}
