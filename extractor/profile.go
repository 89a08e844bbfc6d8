package extractor

import (
	"strings"
	"time"

	"linkedin-harvester/dom"
	"linkedin-harvester/record"
)

// extractProfileInfo reads the top-card header fields. Every field
// except the name is optional: a missing element yields an empty value,
// never an error.
func extractProfileInfo(finder *dom.Finder, profileURL, fallbackName string) record.ProfileInfo {
	info := record.ProfileInfo{
		ProfileURL:  profileURL,
		ExtractedAt: time.Now(),
	}

	info.Name = strings.TrimSpace(finder.Text(dom.ProfileName))
	if info.Name == "" {
		info.Name = fallbackName
	}
	info.CleanFilename = CleanFilename(info.Name)

	info.Title = strings.TrimSpace(finder.Text(dom.ProfileTitle))
	info.Location = strings.TrimSpace(finder.Text(dom.ProfileLocation))
	info.ConnectionDegree = parseConnectionDegree(finder.Text(dom.ConnectionDegree))
	info.FollowerCount = parseFollowerCount(finder.Text(dom.FollowerCount))

	info.Verified = finder.Has(dom.VerifiedBadge)
	info.Premium = finder.Has(dom.PremiumBadge)

	if src := finder.Attr(dom.ProfilePicture, "src"); strings.HasPrefix(src, "http") {
		info.ProfilePictureURL = src
	}

	return info
}

// parseConnectionDegree normalizes "· 2nd" or "2nd degree connection"
// to just "2nd".
func parseConnectionDegree(raw string) string {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "·"))
	s = strings.TrimSpace(s)
	for _, degree := range []string{"1st", "2nd", "3rd"} {
		if strings.Contains(s, degree) {
			return degree
		}
	}
	return ""
}

// parseFollowerCount keeps text like "1,234 followers" only when it
// actually mentions followers.
func parseFollowerCount(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.Contains(strings.ToLower(s), "follower") {
		return s
	}
	return ""
}
