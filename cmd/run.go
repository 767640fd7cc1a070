package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucazevedos/bot-review-shopify/internal/config"
	"github.com/lucazevedos/bot-review-shopify/internal/identity"
	"github.com/lucazevedos/bot-review-shopify/internal/judgeme"
	"github.com/lucazevedos/bot-review-shopify/internal/orchestrator"
	"github.com/lucazevedos/bot-review-shopify/internal/review"
	"github.com/lucazevedos/bot-review-shopify/internal/shopify"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate and submit reviews for the configured collection",
	Long: `Run the review bot once over the configured Shopify collection.

Products are processed one at a time with a pause between them. Each product
gets a generated review draft, a synthetic reviewer identity, and one
submission to Judge.me. Per-product failures are logged and skipped.

Required environment variables:
  SHOP_DOMAIN           - Shopify store domain (e.g. my-store.myshopify.com)
  SHOPIFY_ACCESS_TOKEN  - Shopify Admin API access token
  COLLECTION_ID         - Collection to pull products from
  OPENAI_API_KEY        - OpenAI API key for review generation
  JUDGEME_API_TOKEN     - Judge.me API token

Examples:
  bot-review run
  REVIEW_DELAY=2s MAX_ATTEMPTS=3 bot-review run`,
	Args: cobra.NoArgs,
	RunE: runBot,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Styling
	var (
		headerColor  = lipgloss.Color("#F780FF") // Bright pink
		successColor = lipgloss.Color("#50FA7B") // Green
		warnColor    = lipgloss.Color("#FFB86C") // Orange
		errorColor   = lipgloss.Color("#FF5555") // Red
		mutedColor   = lipgloss.Color("#6272A4") // Muted purple
	)

	headerStyle := lipgloss.NewStyle().Foreground(headerColor).Bold(true)
	successStyle := lipgloss.NewStyle().Foreground(successColor)
	warnStyle := lipgloss.NewStyle().Foreground(warnColor)
	errorStyle := lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	// Stop cleanly on Ctrl-C; the orchestrator checks the context between
	// products.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	llmCfg := review.DefaultLLMConfig()
	llmCfg.Model = cfg.OpenAIModel
	llmCfg.APIKey = cfg.OpenAIKey

	llm, err := review.NewOpenAILLM(llmCfg)
	if err != nil {
		return err
	}

	names, err := identity.LoadNames(cfg.NamesFile)
	if err != nil {
		log.Printf("using built-in name lists: %v", err)
	}

	bot := orchestrator.New(
		shopify.NewClient(cfg.ShopDomain, cfg.ShopifyToken, nil),
		review.NewGenerator(llm, cfg.MaxAttempts),
		identity.NewGenerator(names, nil),
		judgeme.NewClient(judgeme.Config{
			APIToken:     cfg.JudgemeToken,
			ShopDomain:   cfg.ShopDomain,
			BaseURL:      cfg.JudgemeBaseURL,
			ErrorLogPath: cfg.ErrorLogFile,
		}, nil),
		orchestrator.Config{
			CollectionID: cfg.CollectionID,
			ContextFile:  cfg.ContextFile,
			TitlesFile:   cfg.TitlesFile,
			Delay:        cfg.Delay,
		},
	)

	fmt.Println()
	fmt.Println(headerStyle.Render("Starting review bot"))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("store %s, collection %s", cfg.ShopDomain, cfg.CollectionID)))
	fmt.Println()

	summary, err := bot.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Run complete"))
	fmt.Println(successStyle.Render(fmt.Sprintf("✓ %d of %d reviews submitted", summary.Submitted, summary.Products)))
	if summary.Skipped > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("• %d products skipped", summary.Skipped)))
	}
	if summary.Failed > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("✗ %d submissions failed (see %s)", summary.Failed, cfg.ErrorLogFile)))
	}
	fmt.Println()

	return nil
}
