// Package orchestrator runs the review bot end to end: it loads the run
// context and recent-titles state, walks the configured collection one
// product at a time, and wires the product source, generators, and
// submitter together. Per-product failures are logged and skipped; nothing
// here aborts a run.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lucazevedos/bot-review-shopify/internal/judgeme"
	"github.com/lucazevedos/bot-review-shopify/internal/review"
	"github.com/lucazevedos/bot-review-shopify/internal/shopify"
	"github.com/lucazevedos/bot-review-shopify/internal/state"
)

// ProductSource resolves a collection to product IDs and loads product data.
type ProductSource interface {
	ListProductIDs(ctx context.Context, collectionID string) ([]int64, error)
	FetchProduct(ctx context.Context, id int64) (*shopify.Product, error)
}

// DraftGenerator produces a validated review draft for a product.
type DraftGenerator interface {
	Generate(ctx context.Context, reviewContext string, product *shopify.Product, recentTitles []string) (review.Draft, error)
}

// Submitter posts a finished review for a product.
type Submitter interface {
	Submit(ctx context.Context, productID int64, rev judgeme.Review) error
}

// IdentityGenerator synthesizes the reviewer fields attached to each draft.
type IdentityGenerator interface {
	Name() string
	Email(name string) string
	Rating() int
}

// Config tunes a single run.
type Config struct {
	CollectionID string
	ContextFile  string
	TitlesFile   string

	// Delay is the pause between products. Zero means no pause.
	Delay time.Duration
}

// Summary reports what a run did.
type Summary struct {
	Products  int `json:"products"`
	Submitted int `json:"submitted"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Bot owns one run of the review pipeline.
type Bot struct {
	products  ProductSource
	generator DraftGenerator
	identity  IdentityGenerator
	submitter Submitter
	cfg       Config
}

// New assembles a bot from its collaborators.
func New(products ProductSource, generator DraftGenerator, identity IdentityGenerator, submitter Submitter, cfg Config) *Bot {
	return &Bot{
		products:  products,
		generator: generator,
		identity:  identity,
		submitter: submitter,
		cfg:       cfg,
	}
}

// Run processes every product in the collection sequentially. It returns
// early only when ctx is cancelled; per-product errors are logged and the
// loop moves on.
func (b *Bot) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	reviewContext := loadContext(b.cfg.ContextFile)
	titles := state.LoadTitles(b.cfg.TitlesFile)

	ids, err := b.products.ListProductIDs(ctx, b.cfg.CollectionID)
	if err != nil {
		log.Printf("could not list products for collection %s: %v", b.cfg.CollectionID, err)
		return summary, nil
	}
	summary.Products = len(ids)
	log.Printf("found %d products in collection %s", len(ids), b.cfg.CollectionID)

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("run cancelled: %w", err)
		}

		product, err := b.products.FetchProduct(ctx, id)
		if err != nil || product == nil {
			log.Printf("could not fetch product %d, skipping: %v", id, err)
			summary.Skipped++
			continue
		}

		draft, err := b.generator.Generate(ctx, reviewContext, product, titles.Titles())
		if err != nil {
			log.Printf("could not generate review for product %d, skipping: %v", id, err)
			summary.Skipped++
			continue
		}
		titles.Record(draft.Title)

		name := b.identity.Name()
		rev := judgeme.Review{
			Name:    name,
			Email:   b.identity.Email(name),
			Rating:  b.identity.Rating(),
			Title:   draft.Title,
			Content: draft.Content,
		}

		if err := b.submitter.Submit(ctx, id, rev); err != nil {
			log.Printf("submission failed for product %d: %v", id, err)
			summary.Failed++
		} else {
			log.Printf("review submitted for product %d: %q by %s", id, rev.Title, rev.Name)
			summary.Submitted++
		}

		if b.cfg.Delay > 0 && i < len(ids)-1 {
			select {
			case <-ctx.Done():
				return summary, fmt.Errorf("run cancelled: %w", ctx.Err())
			case <-time.After(b.cfg.Delay):
			}
		}
	}

	return summary, nil
}

type contextFile struct {
	Context string `json:"context"`
}

// loadContext reads the free-text run context. A missing or corrupt file
// yields an empty context; the failure is logged, not fatal.
func loadContext(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("could not read context from %s: %v", path, err)
		}
		return ""
	}

	var file contextFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Printf("could not parse context from %s: %v", path, err)
		return ""
	}
	return file.Context
}
