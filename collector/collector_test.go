package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"linkedin-harvester/stealth"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Jane Doe", "Jane Doe"},
		{"view profile suffix", "Jane Doe View Jane Doe's profile", "Jane Doe"},
		{"curly apostrophe", "Jane Doe View Jane Doe’s profile", "Jane Doe"},
		{"extra whitespace", "  Jane \n  Doe  ", "Jane Doe"},
		{"special chars stripped", "Jane Doe ✓ (She/Her)", "Jane Doe SheHer"},
		{"hyphen and apostrophe kept", "Mary-Jane O'Brien", "Mary-Jane O'Brien"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical", "https://www.linkedin.com/in/janedoe", "https://www.linkedin.com/in/janedoe"},
		{"trailing slash", "https://www.linkedin.com/in/janedoe/", "https://www.linkedin.com/in/janedoe"},
		{"query stripped", "https://www.linkedin.com/in/janedoe?miniProfileUrn=abc", "https://www.linkedin.com/in/janedoe"},
		{"fragment stripped", "https://www.linkedin.com/in/janedoe#about", "https://www.linkedin.com/in/janedoe"},
		{"company page rejected", "https://www.linkedin.com/company/acme", ""},
		{"other host rejected", "https://example.com/in/janedoe", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMergeKeepsFirstSeenName(t *testing.T) {
	links := ProfileLinks{
		"https://www.linkedin.com/in/alice": "Alice Smith",
	}
	added := links.Merge(ProfileLinks{
		"https://www.linkedin.com/in/alice": "A. Smith",
		"https://www.linkedin.com/in/bob":   "Bob Jones",
	})
	if added != 1 {
		t.Errorf("expected 1 added, got %d", added)
	}
	if links["https://www.linkedin.com/in/alice"] != "Alice Smith" {
		t.Errorf("first-seen name was overwritten: %q", links["https://www.linkedin.com/in/alice"])
	}
	if len(links) != 2 {
		t.Errorf("expected 2 links, got %d", len(links))
	}
}

func TestLinksRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile_links.json")

	links := ProfileLinks{
		"https://www.linkedin.com/in/alice": "Alice Smith",
		"https://www.linkedin.com/in/bob":   "Bob Jones",
	}
	if err := links.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadLinks(path)
	if err != nil {
		t.Fatalf("LoadLinks: %v", err)
	}
	if len(loaded) != 2 {
		t.Errorf("expected 2 links, got %d", len(loaded))
	}
	if loaded["https://www.linkedin.com/in/bob"] != "Bob Jones" {
		t.Errorf("unexpected name: %q", loaded["https://www.linkedin.com/in/bob"])
	}
}

func TestLoadLinksMissingFile(t *testing.T) {
	links, err := LoadLinks(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected empty map, got %d entries", len(links))
	}
}

func TestLoadLinksCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLinks(path); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func TestPageCheckHalts(t *testing.T) {
	halting := []error{
		&stealth.LinkedInError{Type: stealth.ErrorSessionExpired, Message: "session expired"},
		&stealth.LinkedInError{Type: stealth.ErrorCheckpoint, Message: "checkpoint"},
		fmt.Errorf("after click: %w", &stealth.LinkedInError{Type: stealth.ErrorSessionExpired}),
	}
	for _, err := range halting {
		if !pageCheckHalts(err) {
			t.Errorf("expected %v to halt the run", err)
		}
	}

	// Anything recoverable just ends the walk with the mapping saved
	soft := []error{
		&stealth.LinkedInError{Type: stealth.ErrorPageNotLoaded, Recoverable: true},
		&stealth.LinkedInError{Type: stealth.ErrorProfileGone, Recoverable: true},
		fmt.Errorf("click target detached"),
	}
	for _, err := range soft {
		if pageCheckHalts(err) {
			t.Errorf("expected %v to end pagination quietly", err)
		}
	}
}

func TestSearchURLCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search_url_cache.json")

	if got := LoadCachedSearchURL(path); got != "" {
		t.Errorf("expected empty for missing cache, got %q", got)
	}

	url := "https://www.linkedin.com/search/results/people/?keywords=golang"
	if err := SaveSearchURL(path, url); err != nil {
		t.Fatalf("SaveSearchURL: %v", err)
	}
	if got := LoadCachedSearchURL(path); got != url {
		t.Errorf("LoadCachedSearchURL = %q, want %q", got, url)
	}
}
