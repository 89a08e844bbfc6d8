package collector

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// searchURLCache remembers the last search URL used so a rerun without
// SEARCH_URL set continues the same search.
type searchURLCache struct {
	SearchURL string    `json:"search_url"`
	SavedAt   time.Time `json:"saved_at"`
}

// LoadCachedSearchURL returns the previously used search URL, or ""
// when none was cached.
func LoadCachedSearchURL(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var cache searchURLCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return ""
	}
	return cache.SearchURL
}

// SaveSearchURL caches the search URL for the next run.
func SaveSearchURL(path, searchURL string) error {
	cache := searchURLCache{SearchURL: searchURL, SavedAt: time.Now()}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize search URL cache: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
