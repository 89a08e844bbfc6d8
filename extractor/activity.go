package extractor

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"

	"linkedin-harvester/dom"
	"linkedin-harvester/record"
	"linkedin-harvester/stealth"
)

const (
	activityAllPath      = "/recent-activity/all/"
	activityCommentsPath = "/recent-activity/comments/"

	maxContentLen = 2000
	minContentLen = 10

	// Stop scrolling after this many consecutive rounds with no new items
	noNewContentLimit = 3
)

// extractActivity visits both recent-activity feeds and returns the
// harvested posts and comments. Feed failures degrade to empty slices.
func (e *Extractor) extractActivity(page *rod.Page, profileURL string, meta *record.ExtractionMetadata) ([]record.ActivityItem, []record.ActivityItem) {
	base := strings.TrimRight(profileURL, "/")

	posts := e.extractFeed(page, base+activityAllPath, dom.PostContent, record.TypeOriginalPost)
	fmt.Printf("   📝 Posts: %d\n", len(posts))
	stealth.ShortDelay()

	comments := e.extractFeed(page, base+activityCommentsPath, dom.CommentContent, record.TypeComment)
	fmt.Printf("   💬 Comments: %d\n", len(comments))

	if len(posts) > 0 || len(comments) > 0 {
		meta.ActivityExtracted = true
	}
	return posts, comments
}

// extractFeed scrolls one lazy-loaded feed until it stops growing, then
// converts each item to text.
func (e *Extractor) extractFeed(page *rod.Page, url string, selectors []string, itemType string) []record.ActivityItem {
	if err := e.Session.Navigate(page, url, e.Config.NavTimeout); err != nil {
		fmt.Printf("   ⚠️  Could not open activity feed: %v\n", err)
		return []record.ActivityItem{}
	}
	if lerr := stealth.CheckURL(page); lerr != nil {
		fmt.Printf("   ⚠️  Activity feed unavailable: %v\n", lerr)
		return []record.ActivityItem{}
	}

	finder := dom.NewFinder(page)

	lastCount := 0
	noNew := 0
	for i := 0; i < e.Config.MaxScrolls; i++ {
		if err := stealth.ScrollStep(page); err != nil {
			break
		}
		els, err := finder.FindAll(selectors)
		if err != nil {
			continue
		}
		if len(els) > lastCount {
			lastCount = len(els)
			noNew = 0
		} else {
			noNew++
			if noNew >= noNewContentLimit {
				break
			}
		}
	}

	els, err := finder.FindAll(selectors)
	if err != nil {
		return []record.ActivityItem{}
	}
	return buildItems(els, itemType)
}

// buildItems converts feed elements to activity items, dropping
// near-empty and duplicate content.
func buildItems(els []*rod.Element, itemType string) []record.ActivityItem {
	items := []record.ActivityItem{}
	seen := map[string]bool{}
	for _, el := range els {
		content := elementText(el)
		if tooShort(content) {
			continue
		}
		content = clipContent(content)
		if seen[content] {
			continue
		}
		seen[content] = true
		items = append(items, record.ActivityItem{
			Index:       len(items) + 1,
			Type:        itemType,
			Content:     content,
			ExtractedAt: time.Now(),
		})
	}
	return items
}

// elementText renders an element's HTML to plain text, which flattens
// LinkedIn's nested span soup better than innerText.
func elementText(el *rod.Element) string {
	html, err := el.HTML()
	if err != nil {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	// Hidden accessibility duplicates would double every post
	doc.Find(".visually-hidden, [aria-hidden='true']").Remove()
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}

// tooShort drops near-empty scraps; only content strictly longer than
// minContentLen runes is kept.
func tooShort(content string) bool {
	return len([]rune(content)) <= minContentLen
}

func clipContent(content string) string {
	runes := []rune(content)
	if len(runes) <= maxContentLen {
		return content
	}
	return string(runes[:maxContentLen])
}
