// Package collector walks LinkedIn people-search result pages and
// accumulates profile URLs into profile_links.json.
package collector

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProfileLinks maps profile URL to the display name seen in results.
type ProfileLinks map[string]string

// LoadLinks reads the accumulated links file. A missing file is an
// empty map, not an error.
func LoadLinks(path string) (ProfileLinks, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ProfileLinks{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read links file: %w", err)
	}

	links := ProfileLinks{}
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to parse links file: %w", err)
	}
	return links, nil
}

// Save writes the collected links as pretty-printed JSON.
func (pl ProfileLinks) Save(path string) error {
	data, err := json.MarshalIndent(pl, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize links: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write links file: %w", err)
	}
	return nil
}

// Merge adds found links, keeping the existing name for URLs already
// seen. Returns how many URLs were new.
func (pl ProfileLinks) Merge(found ProfileLinks) int {
	added := 0
	for url, name := range found {
		if _, exists := pl[url]; exists {
			continue
		}
		pl[url] = name
		added++
	}
	return added
}
