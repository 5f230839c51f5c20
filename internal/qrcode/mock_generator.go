package qrcode

import (
	"sync"
)

// MockGenerator is a Generator for tests. It records every summary it was
// asked to render and returns a fixed placeholder artifact.
type MockGenerator struct {
	mu        sync.RWMutex
	summaries []any

	// Err, when set, is returned by every Generate call.
	Err error
}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		summaries: make([]any, 0),
	}
}

func (m *MockGenerator) Generate(summary any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}

	m.summaries = append(m.summaries, summary)

	return "data:image/png;base64,mock", nil
}

// GeneratedSummaries returns a copy of every summary rendered so far.
func (m *MockGenerator) GeneratedSummaries() []any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]any, len(m.summaries))
	copy(summaries, m.summaries)
	return summaries
}
