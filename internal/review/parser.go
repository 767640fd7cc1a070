package review

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maxTitleChars   = 30
	minContentWords = 7
	maxContentWords = 70
)

var (
	ErrEmptyResponse   = errors.New("empty model response")
	ErrEmptyTitle      = errors.New("review title is empty")
	ErrContentTooShort = errors.New("review content too short")
)

// Draft is a validated (title, content) pair before identity fields are
// attached. The zero value is the invalid sentinel.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ParseDraft parses raw model output into a Draft and enforces the length
// constraints. The expected grammar is two optional labeled lines
// ("título:" then "conteúdo:"); without labels the first line is the title
// and the remaining lines are the content.
func ParseDraft(raw string) (Draft, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return Draft{}, ErrEmptyResponse
	}

	var title, content string

	if rest, ok := cutLabel(lines[0], "título:"); ok {
		title = rest
		if len(lines) > 1 {
			if rest, ok := cutLabel(lines[1], "conteúdo:"); ok {
				content = strings.TrimSpace(rest + " " + strings.Join(lines[2:], " "))
			} else {
				content = strings.Join(lines[1:], " ")
			}
		}
	} else {
		title = lines[0]
		content = strings.Join(lines[1:], " ")
	}

	title = trimQuotes(title)
	content = trimQuotes(content)

	if title == "" {
		return Draft{}, ErrEmptyTitle
	}

	if runes := []rune(title); len(runes) > maxTitleChars {
		title = string(runes[:maxTitleChars])
	}

	words := strings.Fields(content)
	if len(words) < minContentWords {
		return Draft{}, fmt.Errorf("%w: %d words", ErrContentTooShort, len(words))
	}
	if len(words) > maxContentWords {
		content = strings.Join(words[:maxContentWords], " ")
	}

	return Draft{Title: title, Content: content}, nil
}

// cutLabel strips a case-insensitive label prefix anywhere in the line,
// returning what follows it.
func cutLabel(line, label string) (string, bool) {
	idx := strings.Index(strings.ToLower(line), label)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(line[idx+len(label):]), true
}

// trimQuotes removes at most one quote character from each end of s.
func trimQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}
