package review

import (
	"fmt"
	"strings"

	"github.com/lucazevedos/bot-review-shopify/internal/shopify"
)

// SystemPrompt returns the system instruction that fixes the reviewer
// persona: informal Brazilian Portuguese, no use of the word "review",
// capital letters only at sentence starts and proper names.
func SystemPrompt() string {
	var b strings.Builder

	b.WriteString("Você é um especialista em escrever avaliações de produtos em português do Brasil.\n")
	b.WriteString("Escreva em um tom leve e informal, sem usar repetições.\n")
	b.WriteString("Não use a palavra \"review\" no texto.\n")
	b.WriteString("Use apenas letras maiúsculas no início de frases ou para nomes próprios.\n")

	return b.String()
}

// UserPrompt assembles the user message: run context, product data, and the
// formatting rules the parser and validator expect, plus the recent titles
// the model should avoid repeating.
func UserPrompt(reviewContext string, product *shopify.Product, recentTitles []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Contexto: %s\n", reviewContext))
	b.WriteString(fmt.Sprintf("Título do produto: %s\n", product.Title))
	b.WriteString(fmt.Sprintf("Descrição do produto: %s\n\n", product.Description))

	b.WriteString("Instruções:\n")
	b.WriteString("- Escreva o título (no máximo 30 caracteres) e o conteúdo (entre 7 e 70 palavras).\n")
	b.WriteString("- O título deve ser curto, em minúsculas se não for um nome próprio.\n")
	b.WriteString("- Não use a palavra \"review\" no título.\n")
	b.WriteString("- O conteúdo deve estar na primeira pessoa (eu, meu, minha) e não deve mencionar \"você\" ou \"seu\".\n")
	b.WriteString(fmt.Sprintf("- Evite reutilizar títulos passados: %s\n", strings.Join(recentTitles, ", ")))
	b.WriteString("- Seja criativo e natural, sem parecer um texto robótico.\n")

	return b.String()
}
