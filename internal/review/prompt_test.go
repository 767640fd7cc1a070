package review

import (
	"strings"
	"testing"

	"github.com/lucazevedos/bot-review-shopify/internal/shopify"
)

func TestSystemPrompt(t *testing.T) {
	prompt := SystemPrompt()

	if !strings.Contains(prompt, "português do Brasil") {
		t.Error("system prompt should fix the language to Brazilian Portuguese")
	}
	if !strings.Contains(prompt, `"review"`) {
		t.Error("system prompt should ban the word review")
	}
}

func TestUserPrompt(t *testing.T) {
	product := &shopify.Product{
		Title:       "Pneu Aro 15",
		Description: "Pneu novo e resistente",
	}
	recent := []string{"gostei muito", "chegou rápido"}

	prompt := UserPrompt("loja de pneus", product, recent)

	for _, want := range []string{
		"Contexto: loja de pneus",
		"Título do produto: Pneu Aro 15",
		"Descrição do produto: Pneu novo e resistente",
		"no máximo 30 caracteres",
		"entre 7 e 70 palavras",
		"gostei muito, chegou rápido",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestUserPrompt_NoRecentTitles(t *testing.T) {
	product := &shopify.Product{Title: "Pneu", Description: "desc"}

	prompt := UserPrompt("", product, nil)

	if !strings.Contains(prompt, "Evite reutilizar títulos passados:") {
		t.Error("user prompt should still list the avoid-titles rule when the cache is empty")
	}
}
