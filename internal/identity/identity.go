// Package identity synthesizes reviewer identities: a Brazilian name drawn
// from reference lists, an email address derived from it, and the rating.
package identity

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"time"
)

var emailDomains = []string{"mail.com", "gmail.com", "outlook.com"}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Fallback lists used when the names file is missing or unreadable, so a
// run never fails just because the reference data is absent.
var (
	defaultFirstNames = []string{
		"Ana", "Bruno", "Camila", "Diego", "Eduarda", "Felipe",
		"Gabriela", "Henrique", "Isabela", "João", "Larissa", "Marcos",
		"Natália", "Otávio", "Paula", "Rafael", "Sofia", "Thiago",
	}
	defaultLastNames = []string{
		"Almeida", "Barbosa", "Cardoso", "Dias", "Ferreira", "Gomes",
		"Lima", "Martins", "Nascimento", "Oliveira", "Pereira", "Ribeiro",
		"Santos", "Silva", "Souza", "Teixeira",
	}
)

// Names holds the reference name lists loaded from disk.
type Names struct {
	FirstNames []string `json:"firstNames"`
	LastNames  []string `json:"lastNames"`
}

// LoadNames reads the names reference file. On any failure it returns the
// built-in defaults along with the error so the caller can log and continue.
func LoadNames(path string) (Names, error) {
	fallback := Names{FirstNames: defaultFirstNames, LastNames: defaultLastNames}

	data, err := os.ReadFile(path)
	if err != nil {
		return fallback, fmt.Errorf("read names file: %w", err)
	}

	var names Names
	if err := json.Unmarshal(data, &names); err != nil {
		return fallback, fmt.Errorf("parse names file: %w", err)
	}
	if len(names.FirstNames) == 0 || len(names.LastNames) == 0 {
		return fallback, fmt.Errorf("names file %s has empty name lists", path)
	}
	return names, nil
}

// Generator produces reviewer identities. The random source is injectable
// so tests can be deterministic.
type Generator struct {
	names Names
	rng   *rand.Rand
}

// NewGenerator creates a generator over the given name lists. A nil rng
// falls back to a time-seeded source.
func NewGenerator(names Names, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{names: names, rng: rng}
}

// Name returns "First Last" with both parts drawn independently and
// uniformly from the reference lists.
func (g *Generator) Name() string {
	first := g.names.FirstNames[g.rng.Intn(len(g.names.FirstNames))]
	last := g.names.LastNames[g.rng.Intn(len(g.names.LastNames))]
	return first + " " + last
}

// Email derives an address from a reviewer name: lowercased, whitespace
// runs replaced by dots, four random digits, and one of the fixed domains.
func (g *Generator) Email(name string) string {
	normalized := whitespaceRun.ReplaceAllString(strings.ToLower(name), ".")
	digits := 1000 + g.rng.Intn(9000)
	domain := emailDomains[g.rng.Intn(len(emailDomains))]
	return fmt.Sprintf("%s%d@%s", normalized, digits, domain)
}

// Rating always returns 5. The bot intentionally posts top ratings only.
func (g *Generator) Rating() int {
	return 5
}
