package collector

import (
	"regexp"
	"strings"
)

var (
	viewProfileRe = regexp.MustCompile(`(?i)view\s+.*?['\x{2019}]s?\s+profile`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	nameCharsRe   = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.']`)
)

// SanitizeName strips screen-reader suffixes like "View Jane Doe's
// profile" from anchor text and collapses whitespace.
func SanitizeName(raw string) string {
	name := viewProfileRe.ReplaceAllString(raw, "")
	name = nameCharsRe.ReplaceAllString(name, "")
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// SanitizeURL keeps only canonical /in/ profile URLs, stripping any
// query string or fragment. Returns "" for anything else.
func SanitizeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if !strings.Contains(url, "linkedin.com/in/") {
		return ""
	}
	url = strings.TrimRight(url, "/")
	return url
}
