package state

import (
	"encoding/json"
	"fmt"
	"os"
)

// ErrorEntry records one failed review submission.
type ErrorEntry struct {
	ProductID int64  `json:"productId"`
	Review    any    `json:"review"`
	Error     string `json:"error"`
}

// AppendError adds an entry to the error log at path. The log is a single
// JSON array; existing entries are loaded (when the file exists and is
// non-empty), the new entry appended, and the whole file rewritten.
func AppendError(path string, entry ErrorEntry) error {
	var entries []ErrorEntry

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read error log: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parse error log: %w", err)
		}
	}

	entries = append(entries, entry)

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode error log: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write error log: %w", err)
	}
	return nil
}
