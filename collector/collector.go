package collector

import (
	"fmt"

	"github.com/go-rod/rod"

	"linkedin-harvester/auth"
	"linkedin-harvester/config"
	"linkedin-harvester/dom"
	"linkedin-harvester/persistence"
	"linkedin-harvester/stealth"
)

// Collector paginates through people-search results collecting
// profile URLs.
type Collector struct {
	Session *auth.Session
	Config  *config.Config
	Store   *persistence.Store
}

// Stats summarizes a collection run.
type Stats struct {
	PagesProcessed int
	LinksFound     int
	NewLinks       int
	TotalLinks     int
}

func New(session *auth.Session, cfg *config.Config, store *persistence.Store) *Collector {
	return &Collector{Session: session, Config: cfg, Store: store}
}

// ResolveSearchURL returns the search URL to use: the configured one,
// or the one cached from the previous run.
func (c *Collector) ResolveSearchURL() (string, error) {
	if c.Config.SearchURL != "" {
		return c.Config.SearchURL, nil
	}
	if cached := LoadCachedSearchURL(c.Config.SearchURLCacheFile()); cached != "" {
		fmt.Printf("📋 Reusing cached search URL: %s\n", cached)
		return cached, nil
	}
	return "", fmt.Errorf("no search URL configured (set SEARCH_URL)")
}

// Run walks result pages until the page limit, a page with no new
// profiles, or missing pagination.
func (c *Collector) Run() (*Stats, error) {
	searchURL, err := c.ResolveSearchURL()
	if err != nil {
		return nil, err
	}

	links, err := LoadLinks(c.Config.ProfileLinksFile())
	if err != nil {
		return nil, err
	}
	fmt.Printf("📂 Loaded %d previously collected links\n", len(links))

	page, err := c.Session.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	fmt.Printf("🔍 Opening search: %s\n", searchURL)
	if err := c.Session.Navigate(page, searchURL, c.Config.NavTimeout); err != nil {
		return nil, fmt.Errorf("failed to open search results: %w", err)
	}
	if lerr := stealth.CheckPage(page); lerr != nil {
		return nil, lerr
	}

	if err := SaveSearchURL(c.Config.SearchURLCacheFile(), searchURL); err != nil {
		fmt.Printf("⚠️  Could not cache search URL: %v\n", err)
	}

	stats := &Stats{}
	for pageNum := 1; pageNum <= c.Config.MaxPages; pageNum++ {
		fmt.Printf("\n📄 Page %d/%d\n", pageNum, c.Config.MaxPages)

		found, err := c.extractPage(page)
		if err != nil {
			if stealth.IsSessionError(err) {
				return stats, err
			}
			fmt.Printf("⚠️  Failed to read page %d: %v\n", pageNum, err)
			break
		}

		added := links.Merge(found)
		stats.PagesProcessed++
		stats.LinksFound += len(found)
		stats.NewLinks += added
		fmt.Printf("   Found %d links, %d new\n", len(found), added)

		// Persist after every page so a crash loses at most one page
		if err := links.Save(c.Config.ProfileLinksFile()); err != nil {
			return stats, fmt.Errorf("failed to save links: %w", err)
		}
		c.recordPage(found, pageNum, added)

		if added == 0 {
			fmt.Println("🏁 No new profiles on this page, stopping")
			break
		}
		if pageNum == c.Config.MaxPages {
			break
		}

		ok, err := c.nextPage(page)
		if err != nil {
			return stats, err
		}
		if !ok {
			fmt.Println("🏁 No next page available, stopping")
			break
		}
	}

	stats.TotalLinks = len(links)
	return stats, nil
}

// extractPage scrolls the results into view and pulls every profile
// anchor off the current page.
func (c *Collector) extractPage(page *rod.Page) (ProfileLinks, error) {
	finder := dom.NewFinder(page)

	if _, err := finder.WaitForElement("search results", dom.ResultAnchors, stealth.DefaultWait(c.Config.OverlayTimeout)); err != nil {
		return nil, fmt.Errorf("results did not load: %w", err)
	}

	// Results render lazily; walk to the bottom so all anchors exist
	if err := stealth.ScrollToPageBottom(page); err != nil {
		fmt.Printf("⚠️  Scroll failed: %v\n", err)
	}

	anchors, err := finder.FindAll(dom.ResultAnchors)
	if err != nil {
		return nil, err
	}

	found := ProfileLinks{}
	for _, a := range anchors {
		href, err := a.Attribute("href")
		if err != nil || href == nil {
			continue
		}
		url := SanitizeURL(*href)
		if url == "" {
			continue
		}
		text, _ := a.Text()
		name := SanitizeName(text)
		if existing, ok := found[url]; ok && existing != "" {
			continue
		}
		found[url] = name
	}
	return found, nil
}

// nextPage clicks the pagination button. Returns false when there is
// no further page. Pagination trouble short of a dead session is not an
// error: the mapping is already saved, so the walk just ends here.
func (c *Collector) nextPage(page *rod.Page) (bool, error) {
	finder := dom.NewFinder(page)

	btn, err := finder.FindFirst(dom.NextPageButton)
	if err != nil || btn == nil {
		return false, nil
	}
	if disabled, _ := btn.Attribute("disabled"); disabled != nil {
		return false, nil
	}

	if err := stealth.HumanClick(page, btn); err != nil {
		fmt.Printf("⚠️  Could not click next page, treating as last page: %v\n", err)
		return false, nil
	}
	stealth.PageLoadDelay()

	if err := page.WaitLoad(); err != nil {
		fmt.Printf("⚠️  Next page load wait: %v\n", err)
	}
	if lerr := stealth.CheckPage(page); lerr != nil {
		if pageCheckHalts(lerr) {
			return false, lerr
		}
		fmt.Printf("⚠️  Page check after pagination, treating as last page: %v\n", lerr)
		return false, nil
	}
	return true, nil
}

// pageCheckHalts reports whether an error state detected during
// pagination must stop the whole run instead of just ending the walk.
func pageCheckHalts(err error) bool {
	return stealth.IsSessionError(err)
}

func (c *Collector) recordPage(found ProfileLinks, pageNum, added int) {
	if c.Store == nil {
		return
	}
	rows := make([]persistence.CollectedProfile, 0, len(found))
	for url, name := range found {
		rows = append(rows, persistence.CollectedProfile{ProfileURL: url, Name: name, PageNumber: pageNum})
	}
	if _, err := c.Store.RecordCollectedProfiles(rows); err != nil {
		fmt.Printf("⚠️  Failed to record profiles in ledger: %v\n", err)
	}
	if err := c.Store.RecordPageProcessed(added); err != nil {
		fmt.Printf("⚠️  Failed to record page stats: %v\n", err)
	}
}
