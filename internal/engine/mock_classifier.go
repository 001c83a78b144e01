package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/Veraticus/newslens/internal/model"
)

// fakeMarkers trigger a FAKE NEWS verdict in MockClassifier.
var fakeMarkers = []string{"aliens", "miracle", "shocking", "you won't believe", "secret cure", "hoax"}

// MockClassifier is a deterministic test implementation of both classifier
// interfaces. It answers from keywords in the text.
type MockClassifier struct {
	polarityErr error
	biasErr     error
	calls       []MockCall
	mu          sync.Mutex
}

// MockCall records one classifier invocation.
type MockCall struct {
	Kind string
	Text string
}

// NewMockClassifier creates a new mock classifier.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{calls: make([]MockCall, 0)}
}

// FailPolarity makes subsequent polarity calls return err.
func (m *MockClassifier) FailPolarity(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polarityErr = err
}

// FailBias makes subsequent bias calls return err.
func (m *MockClassifier) FailBias(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.biasErr = err
}

// Polarity returns the PolarityClassifier view of m.
func (m *MockClassifier) Polarity() PolarityClassifier {
	return mockPolarity{m}
}

// Bias returns the BiasClassifier view of m.
func (m *MockClassifier) Bias() BiasClassifier {
	return mockBias{m}
}

func (m *MockClassifier) record(kind, text string) {
	m.calls = append(m.calls, MockCall{Kind: kind, Text: text})
}

type mockPolarity struct{ m *MockClassifier }

func (p mockPolarity) Classify(_ context.Context, text string) (model.PolarityResult, error) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	p.m.record("polarity", text)

	if p.m.polarityErr != nil {
		return model.PolarityResult{}, p.m.polarityErr
	}

	lower := strings.ToLower(text)
	for _, marker := range fakeMarkers {
		if strings.Contains(lower, marker) {
			return model.PolarityResult{Label: model.PolarityFake, Confidence: 93.12}, nil
		}
	}
	return model.PolarityResult{Label: model.PolarityReal, Confidence: 87.35}, nil
}

type mockBias struct{ m *MockClassifier }

func (b mockBias) Classify(_ context.Context, text string) (model.BiasResult, error) {
	b.m.mu.Lock()
	defer b.m.mu.Unlock()
	b.m.record("bias", text)

	if b.m.biasErr != nil {
		return model.BiasResult{}, b.m.biasErr
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "progressive"):
		return model.BiasResult{Label: model.BiasLeft, Confidence: 64.2}, nil
	case strings.Contains(lower, "conservative"):
		return model.BiasResult{Label: model.BiasRight, Confidence: 61.8}, nil
	default:
		return model.BiasResult{Label: model.BiasNeutral, Confidence: 71.05}, nil
	}
}

// GetCalls returns all recorded calls for verification in tests.
func (m *MockClassifier) GetCalls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns the number of classifier invocations.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Reset clears all recorded calls and injected errors.
func (m *MockClassifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = make([]MockCall, 0)
	m.polarityErr = nil
	m.biasErr = nil
}

// NewMockEngine builds an Engine over a fresh MockClassifier.
func NewMockEngine() (*Engine, *MockClassifier) {
	mock := NewMockClassifier()
	info := model.NewModelInfo("static", "mock")
	return New(mock.Polarity(), mock.Bias(), info, nil), mock
}
