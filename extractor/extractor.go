// Package extractor visits collected profile URLs and writes one output
// folder per profile: the unified info record, the profile picture, and
// the exported PDF.
package extractor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"linkedin-harvester/auth"
	"linkedin-harvester/collector"
	"linkedin-harvester/config"
	"linkedin-harvester/dom"
	"linkedin-harvester/persistence"
	"linkedin-harvester/record"
	"linkedin-harvester/stealth"
)

// ErrPersistence marks failures writing output to disk. These abort the
// whole run: continuing would silently drop profiles.
var ErrPersistence = errors.New("persistence failure")

// Extractor walks the collected links and extracts each profile.
type Extractor struct {
	Session *auth.Session
	Config  *config.Config
	Store   *persistence.Store
}

// Stats summarizes an extraction run.
type Stats struct {
	Total     int
	Extracted int
	Skipped   int
	Failed    int
}

func New(session *auth.Session, cfg *config.Config, store *persistence.Store) *Extractor {
	return &Extractor{Session: session, Config: cfg, Store: store}
}

// Run processes every collected profile not already extracted in a
// previous run. Per-profile failures are logged and skipped; session
// and persistence failures abort.
func (e *Extractor) Run() (*Stats, error) {
	links, err := collector.LoadLinks(e.Config.ProfileLinksFile())
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, fmt.Errorf("no collected links in %s (run the collector first)", e.Config.ProfileLinksFile())
	}

	urls := make([]string, 0, len(links))
	for url := range links {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	stats := &Stats{Total: len(urls)}
	folderNum := NextFolderNumber(e.Config.OutputDir)

	fmt.Printf("🚀 Extracting %d profiles\n", stats.Total)
	for i, url := range urls {
		fmt.Printf("\n[%d/%d] %s\n", i+1, stats.Total, url)

		done, err := e.Store.IsExtracted(url)
		if err != nil {
			return stats, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if done {
			fmt.Println("   ⏭️  Already extracted, skipping")
			stats.Skipped++
			continue
		}

		runID := uuid.NewString()
		rowID, err := e.Store.StartExtraction(runID, url)
		if err != nil {
			return stats, fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		folder, err := e.extractOne(url, links[url], runID, folderNum)
		if err != nil {
			markErr := e.Store.FailExtraction(rowID, err.Error())
			if stealth.IsSessionError(err) || errors.Is(err, ErrPersistence) {
				return stats, err
			}
			if markErr != nil {
				return stats, fmt.Errorf("%w: %v", ErrPersistence, markErr)
			}
			fmt.Printf("   ❌ Extraction failed: %v\n", err)
			stats.Failed++
		} else {
			// The completed row is the resume marker; losing it would
			// silently re-extract the profile next run
			if err := e.Store.CompleteExtraction(rowID, folder); err != nil {
				return stats, fmt.Errorf("%w: %v", ErrPersistence, err)
			}
			stats.Extracted++
			folderNum++
		}

		if i < len(urls)-1 {
			stealth.ItemDelay()
		}
	}

	return stats, nil
}

// extractOne runs the full pipeline for a single profile and returns
// the output folder name.
func (e *Extractor) extractOne(profileURL, fallbackName, runID string, folderNum int) (string, error) {
	page, err := e.Session.NewPage()
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if err := e.Session.Navigate(page, profileURL, e.Config.NavTimeout); err != nil {
		return "", fmt.Errorf("failed to open profile: %w", err)
	}
	if lerr := stealth.CheckPage(page); lerr != nil {
		return "", lerr
	}

	finder := dom.NewFinder(page)
	if _, err := finder.WaitForElement("profile header", dom.ProfileName, stealth.DefaultWait(e.Config.OverlayTimeout)); err != nil {
		return "", fmt.Errorf("profile header did not load: %w", err)
	}

	meta := record.ExtractionMetadata{}
	info := extractProfileInfo(finder, profileURL, fallbackName)
	fmt.Printf("   👤 %s\n", info.Name)

	folderPath, err := ProfileFolder(e.Config.OutputDir, folderNum, info.CleanFilename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	contact := e.extractContactInfo(page, &meta)
	e.downloadProfilePicture(info.ProfilePictureURL, folderPath, &meta)
	e.downloadPDF(page, folderPath, &meta)
	posts, comments := e.extractActivity(page, profileURL, &meta)

	info.Metadata = meta
	rec := record.Assemble(info, contact, posts, comments, runID)
	if _, err := WriteRecord(folderPath, info.CleanFilename, rec); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	fmt.Printf("   ✅ Saved to %d_%s\n", folderNum, info.CleanFilename)
	return fmt.Sprintf("%d_%s", folderNum, info.CleanFilename), nil
}
