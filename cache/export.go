package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// ExportFormat is the JSON structure for cache export/import, so a warmed
// cache can be carried between runs or environments.
type ExportFormat struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    []ExportEntry     `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ExportEntry is a single cache entry.
type ExportEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// exportVersion is the current export format version.
const exportVersion = "1"

// Enumerable is a cache that can list its entries. MemoryCache implements it;
// RedisCache does not (use Redis-native tooling there).
type Enumerable interface {
	Entries() map[string]string
}

// Export writes a cache's contents as JSON, entries sorted by key for stable
// output.
func Export(w io.Writer, cache Enumerable, metadata map[string]string) error {
	entries := cache.Entries()

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	export := ExportFormat{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    make([]ExportEntry, 0, len(keys)),
		Metadata:   metadata,
	}
	for _, key := range keys {
		export.Entries = append(export.Entries, ExportEntry{Key: key, Value: entries[key]})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("encoding cache export: %w", err)
	}
	return nil
}

// Import loads exported entries into a cache.
func Import(r io.Reader, cache TranslationCache) (int, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return 0, fmt.Errorf("decoding cache export: %w", err)
	}

	count := 0
	for _, e := range export.Entries {
		if e.Key == "" {
			continue
		}
		if err := cache.Set(e.Key, e.Value); err != nil {
			return count, fmt.Errorf("importing entry %q: %w", e.Key, err)
		}
		count++
	}
	return count, nil
}
