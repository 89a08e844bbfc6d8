// Package record defines the unified profile record written for each
// extracted profile, matching the {name}_info.json layout the extractor
// produces.
package record

import (
	"time"

	"github.com/google/uuid"
)

// ScriptVersion is stamped into every extraction log.
const ScriptVersion = "1.0.0"

// Activity item types.
const (
	TypeOriginalPost = "original_post"
	TypeComment      = "comment"
)

// ExtractionMetadata tracks which optional extraction sub-steps succeeded.
// Each flag is independent: a false value means that step failed or found
// nothing, never that the whole profile failed.
type ExtractionMetadata struct {
	ContactButtonFound       bool `json:"contact_button_found"`
	ModalOpened              bool `json:"modal_opened"`
	ProfilePictureDownloaded bool `json:"profile_picture_downloaded"`
	PDFDownloaded            bool `json:"pdf_downloaded"`
	ActivityExtracted        bool `json:"activity_extracted"`
}

// ProfileInfo holds the header fields scraped from the top card.
type ProfileInfo struct {
	Name              string             `json:"name"`
	CleanFilename     string             `json:"clean_filename"`
	ProfileURL        string             `json:"profile_url"`
	Title             string             `json:"title,omitempty"`
	Location          string             `json:"location,omitempty"`
	ConnectionDegree  string             `json:"connection_degree,omitempty"`
	Verified          bool               `json:"verified"`
	Premium           bool               `json:"premium"`
	FollowerCount     string             `json:"follower_count,omitempty"`
	ProfilePictureURL string             `json:"profile_picture_url,omitempty"`
	ExtractedAt       time.Time          `json:"extracted_at"`
	Metadata          ExtractionMetadata `json:"extraction_metadata"`
}

// Website is a single entry from the contact-info overlay.
type Website struct {
	URL         string `json:"url"`
	DisplayText string `json:"display_text"`
}

// ContactInfo holds whatever the contact-info overlay exposed. Email and
// Phone stay empty when the overlay never opened or held nothing valid.
type ContactInfo struct {
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Websites []Website `json:"websites"`
}

// ActivityItem is one post or comment pulled from a lazy-loaded feed.
// Index is 1-based and strictly increasing in feed order.
type ActivityItem struct {
	Index       int       `json:"index"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// ActivitySummary totals the harvested feed items.
type ActivitySummary struct {
	TotalPosts      int `json:"total_posts"`
	TotalComments   int `json:"total_comments"`
	TotalActivities int `json:"total_activities"`
}

// ExtractionLog identifies the run that produced a record.
type ExtractionLog struct {
	RunID         string    `json:"run_id"`
	ScriptVersion string    `json:"script_version"`
	CompletedAt   time.Time `json:"extraction_completed_at"`
}

// ProfileRecord is the unified output for one profile. Re-extraction
// produces a fresh record; there is no merge with earlier runs.
type ProfileRecord struct {
	ProfileInfo     ProfileInfo     `json:"profile_info"`
	ContactInfo     ContactInfo     `json:"contact_info"`
	ActivitySummary ActivitySummary `json:"activity_summary"`
	Posts           []ActivityItem  `json:"posts"`
	Comments        []ActivityItem  `json:"comments"`
	ExtractionLog   ExtractionLog   `json:"extraction_log"`
}

// Assemble builds the final record from the extraction pieces and stamps
// the run identity and activity totals.
func Assemble(info ProfileInfo, contact ContactInfo, posts, comments []ActivityItem, runID string) *ProfileRecord {
	if runID == "" {
		runID = uuid.NewString()
	}
	if posts == nil {
		posts = []ActivityItem{}
	}
	if comments == nil {
		comments = []ActivityItem{}
	}
	if contact.Websites == nil {
		contact.Websites = []Website{}
	}

	return &ProfileRecord{
		ProfileInfo: info,
		ContactInfo: contact,
		ActivitySummary: ActivitySummary{
			TotalPosts:      len(posts),
			TotalComments:   len(comments),
			TotalActivities: len(posts) + len(comments),
		},
		Posts:    posts,
		Comments: comments,
		ExtractionLog: ExtractionLog{
			RunID:         runID,
			ScriptVersion: ScriptVersion,
			CompletedAt:   time.Now(),
		},
	}
}
