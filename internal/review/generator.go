package review

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lucazevedos/bot-review-shopify/internal/shopify"
)

var ErrRetriesExhausted = errors.New("review generation retries exhausted")

// DefaultMaxAttempts bounds the regenerate-until-valid loop so a model that
// keeps producing too-short content cannot livelock a run.
const DefaultMaxAttempts = 5

// Generator produces review drafts from product data using an LLM.
type Generator struct {
	llm         LLM
	maxAttempts int
}

// NewGenerator creates a review generator with the given LLM implementation.
// maxAttempts < 1 falls back to DefaultMaxAttempts.
func NewGenerator(llm LLM, maxAttempts int) *Generator {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		llm:         llm,
		maxAttempts: maxAttempts,
	}
}

// Generate calls the LLM until it yields a draft that passes validation or
// the attempt budget is spent. LLM failures and rejected drafts both count
// as attempts; exhaustion returns ErrRetriesExhausted so the caller can log
// and skip the product.
func (g *Generator) Generate(ctx context.Context, reviewContext string, product *shopify.Product, recentTitles []string) (Draft, error) {
	if g.llm == nil {
		return Draft{}, fmt.Errorf("%w: LLM is required", ErrInvalidConfig)
	}
	if product == nil {
		return Draft{}, fmt.Errorf("%w: product is required", ErrInvalidConfig)
	}

	system := SystemPrompt()
	user := UserPrompt(reviewContext, product, recentTitles)

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Draft{}, err
		}

		raw, err := g.llm.Generate(ctx, system, user)
		if err != nil {
			lastErr = err
			log.Printf("review generation attempt %d/%d failed: %v", attempt, g.maxAttempts, err)
			continue
		}

		draft, err := ParseDraft(raw)
		if err != nil {
			lastErr = err
			log.Printf("review generation attempt %d/%d rejected: %v", attempt, g.maxAttempts, err)
			continue
		}

		return draft, nil
	}

	return Draft{}, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, g.maxAttempts, lastErr)
}
