package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bot-review",
	Short: "Review bot for Shopify stores",
	Long: `bot-review generates product reviews for a Shopify collection and
submits them to Judge.me.

For each product in the configured collection it fetches the product data,
generates a short review in Brazilian Portuguese with an LLM, attaches a
synthetic reviewer identity, and posts the result to the Judge.me API.`,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
