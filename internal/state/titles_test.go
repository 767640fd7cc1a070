package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTitleCache_RecordEvictsOldest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.json")
	cache := LoadTitles(path)

	for i := 1; i <= 9; i++ {
		cache.Record(fmt.Sprintf("título %d", i))
		if cache.Len() > maxRecentTitles {
			t.Fatalf("cache grew to %d entries after %d records", cache.Len(), i)
		}
	}

	want := []string{"título 4", "título 5", "título 6", "título 7", "título 8", "título 9"}
	if got := cache.Titles(); !reflect.DeepEqual(got, want) {
		t.Errorf("cache = %v, want %v", got, want)
	}
}

func TestTitleCache_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.json")

	cache := LoadTitles(path)
	cache.Record("primeiro")
	cache.Record("segundo")

	reloaded := LoadTitles(path)
	want := []string{"primeiro", "segundo"}
	if got := reloaded.Titles(); !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded cache = %v, want %v", got, want)
	}
}

func TestLoadTitles_MissingFile(t *testing.T) {
	cache := LoadTitles(filepath.Join(t.TempDir(), "nope.json"))
	if cache.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", cache.Len())
	}
}

func TestLoadTitles_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	cache := LoadTitles(path)
	if cache.Len() != 0 {
		t.Errorf("expected empty cache for corrupt file, got %d entries", cache.Len())
	}

	// The cache must still be usable for writes afterwards.
	cache.Record("novo título")
	if got := LoadTitles(path).Titles(); len(got) != 1 || got[0] != "novo título" {
		t.Errorf("expected recovered cache with one title, got %v", got)
	}
}

func TestLoadTitles_TrimsOversizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.json")
	oversized := titlesFile{Titles: []string{"a", "b", "c", "d", "e", "f", "g", "h"}}
	data, err := json.Marshal(oversized)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cache := LoadTitles(path)
	if cache.Len() != maxRecentTitles {
		t.Errorf("expected cache trimmed to %d, got %d", maxRecentTitles, cache.Len())
	}
	want := []string{"c", "d", "e", "f", "g", "h"}
	if got := cache.Titles(); !reflect.DeepEqual(got, want) {
		t.Errorf("cache = %v, want %v", got, want)
	}
}

func TestTitleCache_TitlesReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.json")
	cache := LoadTitles(path)
	cache.Record("original")

	titles := cache.Titles()
	titles[0] = "modificado"

	if got := cache.Titles()[0]; got != "original" {
		t.Errorf("internal state mutated through accessor: %q", got)
	}
}
