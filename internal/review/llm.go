// Package review generates product review drafts with an LLM. It defines a
// provider-agnostic LLM interface with an OpenAI implementation and a
// deterministic mock for testing, assembles the generation prompts, parses
// the model output into a (title, content) draft, and enforces the length
// and word-count constraints with a capped retry loop.
package review

import (
	"context"
	"errors"
)

var (
	ErrLLMFailed     = errors.New("LLM request failed")
	ErrInvalidConfig = errors.New("invalid LLM configuration")
)

// LLM defines the interface for interacting with language models.
// Implementations must be stateless and thread-safe.
type LLM interface {
	// Generate produces text from a system instruction and a user prompt.
	// Returns the generated text or an error if generation fails.
	Generate(ctx context.Context, system, user string) (string, error)
}

// LLMConfig holds common configuration options for LLM providers.
type LLMConfig struct {
	// Model specifies the model identifier (e.g., "gpt-3.5-turbo")
	Model string

	// Temperature controls randomness (0.0 = deterministic, 2.0 = very random)
	Temperature float32

	// MaxTokens limits the response length (0 = use provider default)
	MaxTokens int

	// APIKey is the authentication key for the provider
	APIKey string
}

// DefaultLLMConfig returns sensible defaults for review generation.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:       "gpt-3.5-turbo",
		Temperature: 0.8,
		MaxTokens:   200,
	}
}
