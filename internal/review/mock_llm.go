package review

import "context"

// MockLLM is a deterministic LLM implementation for testing.
// It returns queued responses in order, then repeats the last one.
type MockLLM struct {
	// Responses are returned by successive Generate calls. When the queue
	// is exhausted the last response is repeated.
	Responses []string

	// Error, if set, is returned by Generate instead of a response.
	Error error

	// LastSystem and LastUser store the most recent prompts passed to Generate.
	LastSystem string
	LastUser   string

	// Calls counts how many times Generate was invoked.
	Calls int
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Responses: []string{response}}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// Generate returns the next queued response or the configured error.
func (m *MockLLM) Generate(ctx context.Context, system, user string) (string, error) {
	m.LastSystem = system
	m.LastUser = user
	m.Calls++

	if m.Error != nil {
		return "", m.Error
	}

	if len(m.Responses) == 0 {
		return "", nil
	}

	idx := m.Calls - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}
