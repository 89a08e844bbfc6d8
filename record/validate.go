package record

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s looks like a real email address.
func ValidEmail(s string) bool {
	if len(s) < 5 {
		return false
	}
	return emailPattern.MatchString(s)
}

var phoneDigit = regexp.MustCompile(`\d`)

// ValidPhone accepts anything with at least 7 digits once formatting
// characters are ignored.
func ValidPhone(s string) bool {
	if s == "" {
		return false
	}
	return len(phoneDigit.FindAllString(s, -1)) >= 7
}

// Links back to LinkedIn itself are never contact websites.
var websiteSkipPatterns = []string{
	"mailto:",
	"tel:",
	"javascript:",
	"linkedin.com/",
	"www.linkedin.com/",
}

// ValidWebsite reports whether url is an external http(s) website worth
// recording from the contact overlay.
func ValidWebsite(url string) bool {
	if len(url) < 10 {
		return false
	}
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	if !strings.Contains(url, ".") {
		return false
	}
	for _, pattern := range websiteSkipPatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return true
}
