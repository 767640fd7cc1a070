package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucazevedos/bot-review-shopify/internal/judgeme"
	"github.com/lucazevedos/bot-review-shopify/internal/review"
	"github.com/lucazevedos/bot-review-shopify/internal/shopify"
	"github.com/lucazevedos/bot-review-shopify/internal/state"
)

type fakeProducts struct {
	ids      []int64
	listErr  error
	failIDs  map[int64]bool
	fetched  []int64
	products map[int64]*shopify.Product
}

func (f *fakeProducts) ListProductIDs(ctx context.Context, collectionID string) ([]int64, error) {
	return f.ids, f.listErr
}

func (f *fakeProducts) FetchProduct(ctx context.Context, id int64) (*shopify.Product, error) {
	f.fetched = append(f.fetched, id)
	if f.failIDs[id] {
		return nil, errors.New("boom")
	}
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return &shopify.Product{ID: id, Title: fmt.Sprintf("Produto %d", id), Description: "descrição"}, nil
}

type fakeGenerator struct {
	calls int
	err   error
}

func (f *fakeGenerator) Generate(ctx context.Context, reviewContext string, product *shopify.Product, recentTitles []string) (review.Draft, error) {
	f.calls++
	if f.err != nil {
		return review.Draft{}, f.err
	}
	return review.Draft{
		Title:   fmt.Sprintf("título %d", f.calls),
		Content: "Gostei bastante do produto e com certeza compraria de novo.",
	}, nil
}

type fakeIdentity struct{}

func (fakeIdentity) Name() string             { return "Ana Silva" }
func (fakeIdentity) Email(name string) string { return "ana.silva1234@gmail.com" }
func (fakeIdentity) Rating() int              { return 5 }

type fakeSubmitter struct {
	submitted []int64
	reviews   []judgeme.Review
	err       error
}

func (f *fakeSubmitter) Submit(ctx context.Context, productID int64, rev judgeme.Review) error {
	f.submitted = append(f.submitted, productID)
	f.reviews = append(f.reviews, rev)
	return f.err
}

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		CollectionID: "42",
		ContextFile:  filepath.Join(dir, "context.json"),
		TitlesFile:   filepath.Join(dir, "titles.json"),
	}
}

func TestRun_SkipsFailedFetchSubmitsRest(t *testing.T) {
	products := &fakeProducts{
		ids:     []int64{1, 2},
		failIDs: map[int64]bool{1: true},
	}
	generator := &fakeGenerator{}
	submitter := &fakeSubmitter{}
	cfg := testConfig(t)

	bot := New(products, generator, fakeIdentity{}, submitter, cfg)

	summary, err := bot.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Products != 2 || summary.Skipped != 1 || summary.Submitted != 1 || summary.Failed != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if generator.calls != 1 {
		t.Errorf("expected 1 generation call, got %d", generator.calls)
	}
	if len(submitter.submitted) != 1 || submitter.submitted[0] != 2 {
		t.Errorf("expected submission for product 2 only, got %v", submitter.submitted)
	}

	// Accepted title must be recorded in the cache.
	if got := state.LoadTitles(cfg.TitlesFile).Len(); got != 1 {
		t.Errorf("expected 1 cached title, got %d", got)
	}
}

func TestRun_SubmissionFailureContinues(t *testing.T) {
	products := &fakeProducts{ids: []int64{1, 2, 3}}
	submitter := &fakeSubmitter{err: errors.New("remote rejected")}

	bot := New(products, &fakeGenerator{}, fakeIdentity{}, submitter, testConfig(t))

	summary, err := bot.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Failed != 3 || summary.Submitted != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if len(submitter.submitted) != 3 {
		t.Errorf("expected 3 submission attempts, got %d", len(submitter.submitted))
	}
}

func TestRun_GenerationExhaustionSkipsProduct(t *testing.T) {
	products := &fakeProducts{ids: []int64{1}}
	generator := &fakeGenerator{err: review.ErrRetriesExhausted}
	submitter := &fakeSubmitter{}

	bot := New(products, generator, fakeIdentity{}, submitter, testConfig(t))

	summary, err := bot.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Skipped != 1 {
		t.Errorf("expected 1 skipped, got %+v", summary)
	}
	if len(submitter.submitted) != 0 {
		t.Error("no submission should happen when generation fails")
	}
}

func TestRun_ListFailureEndsQuietly(t *testing.T) {
	products := &fakeProducts{listErr: errors.New("unauthorized")}

	bot := New(products, &fakeGenerator{}, fakeIdentity{}, &fakeSubmitter{}, testConfig(t))

	summary, err := bot.Run(context.Background())
	if err != nil {
		t.Fatalf("list failure must not abort the run: %v", err)
	}
	if summary.Products != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestRun_ReviewCarriesIdentityAndDraft(t *testing.T) {
	products := &fakeProducts{ids: []int64{7}}
	submitter := &fakeSubmitter{}

	bot := New(products, &fakeGenerator{}, fakeIdentity{}, submitter, testConfig(t))

	if _, err := bot.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(submitter.reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(submitter.reviews))
	}
	rev := submitter.reviews[0]
	if rev.Name != "Ana Silva" || rev.Email != "ana.silva1234@gmail.com" || rev.Rating != 5 {
		t.Errorf("identity fields not attached: %+v", rev)
	}
	if rev.Title == "" || rev.Content == "" {
		t.Errorf("draft fields not attached: %+v", rev)
	}
}

func TestRun_Cancellation(t *testing.T) {
	products := &fakeProducts{ids: []int64{1, 2, 3}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bot := New(products, &fakeGenerator{}, fakeIdentity{}, &fakeSubmitter{}, testConfig(t))

	_, err := bot.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(products.fetched) != 0 {
		t.Errorf("no products should be fetched after cancellation, got %v", products.fetched)
	}
}

func TestLoadContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "context.json")
	if err := os.WriteFile(path, []byte(`{"context":"loja de pneus em promoção"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := loadContext(path); got != "loja de pneus em promoção" {
		t.Errorf("unexpected context: %q", got)
	}

	if got := loadContext(filepath.Join(dir, "missing.json")); got != "" {
		t.Errorf("expected empty context for missing file, got %q", got)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := loadContext(corrupt); got != "" {
		t.Errorf("expected empty context for corrupt file, got %q", got)
	}
}
