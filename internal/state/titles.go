// Package state persists the bot's flat-file state: the rotating list of
// recently used review titles and the append-only submission error log.
// Both files are best-effort; a missing or corrupt file means "start empty"
// and a failed write is logged rather than aborting the run.
package state

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// maxRecentTitles bounds the cache. Oldest titles are evicted first.
const maxRecentTitles = 6

type titlesFile struct {
	Titles []string `json:"titles"`
}

// TitleCache is a bounded FIFO of recently used review titles, used as a
// soft anti-repetition hint in the generation prompt. It offers no hard
// uniqueness guarantee.
type TitleCache struct {
	path   string
	titles []string
}

// LoadTitles reads the cache from path. A missing or corrupt file yields an
// empty cache; the failure is logged, not returned.
func LoadTitles(path string) *TitleCache {
	cache := &TitleCache{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("could not read recent titles from %s: %v", path, err)
		}
		return cache
	}

	var file titlesFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Printf("could not parse recent titles from %s: %v", path, err)
		return cache
	}

	cache.titles = file.Titles
	if len(cache.titles) > maxRecentTitles {
		cache.titles = cache.titles[len(cache.titles)-maxRecentTitles:]
	}
	return cache
}

// Titles returns a copy of the cached titles, oldest first.
func (c *TitleCache) Titles() []string {
	out := make([]string, len(c.titles))
	copy(out, c.titles)
	return out
}

// Len returns the number of cached titles.
func (c *TitleCache) Len() int {
	return len(c.titles)
}

// Record appends a title, evicts the oldest beyond the capacity, and
// rewrites the state file. A persistence failure is logged and does not
// abort the run.
func (c *TitleCache) Record(title string) {
	c.titles = append(c.titles, title)
	if len(c.titles) > maxRecentTitles {
		c.titles = c.titles[len(c.titles)-maxRecentTitles:]
	}

	if err := c.persist(); err != nil {
		log.Printf("could not save recent titles to %s: %v", c.path, err)
	}
}

func (c *TitleCache) persist() error {
	data, err := json.Marshal(titlesFile{Titles: c.titles})
	if err != nil {
		return fmt.Errorf("encode recent titles: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write recent titles: %w", err)
	}
	return nil
}
