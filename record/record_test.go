package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleTotals(t *testing.T) {
	posts := []ActivityItem{
		{Index: 1, Type: TypeOriginalPost, Content: "first post"},
		{Index: 2, Type: TypeOriginalPost, Content: "second post"},
	}
	comments := []ActivityItem{
		{Index: 1, Type: TypeComment, Content: "a comment"},
	}

	rec := Assemble(ProfileInfo{Name: "Jane Doe"}, ContactInfo{}, posts, comments, "run-42")

	assert.Equal(t, 2, rec.ActivitySummary.TotalPosts)
	assert.Equal(t, 1, rec.ActivitySummary.TotalComments)
	assert.Equal(t, 3, rec.ActivitySummary.TotalActivities)
	assert.Equal(t, "run-42", rec.ExtractionLog.RunID)
	assert.Equal(t, ScriptVersion, rec.ExtractionLog.ScriptVersion)
	assert.False(t, rec.ExtractionLog.CompletedAt.IsZero())
}

func TestAssembleNilSlices(t *testing.T) {
	rec := Assemble(ProfileInfo{}, ContactInfo{}, nil, nil, "")

	assert.NotNil(t, rec.Posts)
	assert.NotNil(t, rec.Comments)
	assert.NotNil(t, rec.ContactInfo.Websites)
	assert.Zero(t, rec.ActivitySummary.TotalActivities)
	assert.NotEmpty(t, rec.ExtractionLog.RunID, "missing run id must be generated")
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jane@example.com", "j.doe+work@corp.co.uk"}
	invalid := []string{"", "a@b", "not-an-email", "jane@", "@example.com"}

	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"+1 (555) 123-4567", "07700900123"}
	invalid := []string{"", "12345", "call me"}

	for _, p := range valid {
		assert.True(t, ValidPhone(p), p)
	}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), p)
	}
}

func TestValidWebsite(t *testing.T) {
	valid := []string{"https://example.com", "http://blog.janedoe.dev/posts"}
	invalid := []string{
		"",
		"ftp://example.com",
		"mailto:jane@example.com",
		"https://www.linkedin.com/in/janedoe",
		"http://x",
	}

	for _, w := range valid {
		assert.True(t, ValidWebsite(w), w)
	}
	for _, w := range invalid {
		assert.False(t, ValidWebsite(w), w)
	}
}
