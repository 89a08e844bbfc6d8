package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"linkedin-harvester/dom"
	"linkedin-harvester/record"
	"linkedin-harvester/stealth"
)

const pdfDownloadTimeout = 60 * time.Second

// downloadProfilePicture fetches the top-card image over HTTP using the
// browser's cookies, saving it as profile_picture.{jpg|png}.
func (e *Extractor) downloadProfilePicture(pictureURL, folder string, meta *record.ExtractionMetadata) {
	if pictureURL == "" {
		return
	}

	req, err := http.NewRequest(http.MethodGet, pictureURL, nil)
	if err != nil {
		fmt.Printf("   ⚠️  Bad picture URL: %v\n", err)
		return
	}
	req.Header.Set("User-Agent", e.Session.Config.UserAgent)

	cookies, err := e.Session.Browser.GetCookies()
	if err == nil {
		for _, c := range cookies {
			if strings.Contains(c.Domain, "linkedin") || strings.Contains(c.Domain, "licdn") {
				req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
			}
		}
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("   ⚠️  Picture download failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("   ⚠️  Picture download failed: HTTP %d\n", resp.StatusCode)
		return
	}

	ext := ".jpg"
	if strings.Contains(resp.Header.Get("Content-Type"), "png") {
		ext = ".png"
	}

	path := filepath.Join(folder, "profile_picture"+ext)
	out, err := os.Create(path)
	if err != nil {
		fmt.Printf("   ⚠️  Could not create picture file: %v\n", err)
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		fmt.Printf("   ⚠️  Could not write picture file: %v\n", err)
		os.Remove(path)
		return
	}

	meta.ProfilePictureDownloaded = true
	fmt.Printf("   🖼️  Saved profile_picture%s\n", ext)
}

// downloadPDF opens the "More actions" menu, clicks the save-to-PDF
// entry, and moves the resulting download to profile.pdf.
func (e *Extractor) downloadPDF(page *rod.Page, folder string, meta *record.ExtractionMetadata) {
	finder := dom.NewFinder(page)

	btn, err := finder.FindFirst(dom.MoreActionsButton)
	if err != nil || btn == nil {
		fmt.Println("   ⚠️  More actions button not found")
		return
	}
	if err := stealth.HumanClick(page, btn); err != nil {
		fmt.Printf("   ⚠️  Could not open actions menu: %v\n", err)
		return
	}
	stealth.ShortDelay()

	item, err := finder.FindByText(dom.MenuItems, "PDF")
	if err != nil || item == nil {
		item = menuItemByRole(finder, "PDF")
	}
	if item == nil {
		fmt.Println("   ⚠️  Save to PDF menu entry not found")
		e.closeModal(page)
		return
	}

	// Bound the wait through the browser handle itself, so an export
	// that never starts cannot strand the event subscription
	ctx, cancel := context.WithTimeout(context.Background(), pdfDownloadTimeout)
	defer cancel()
	wait := e.Session.Browser.Context(ctx).WaitDownload(e.Config.DownloadsDir)

	if err := stealth.HumanClick(page, item); err != nil {
		fmt.Printf("   ⚠️  Could not click PDF entry: %v\n", err)
		return
	}

	src := downloadedFile(e.Config.DownloadsDir, wait())
	if src == "" {
		fmt.Println("   ⚠️  PDF download did not complete in time")
		return
	}

	dst := filepath.Join(folder, "profile.pdf")
	if err := moveFile(src, dst); err != nil {
		fmt.Printf("   ⚠️  Could not move PDF: %v\n", err)
		return
	}
	meta.PDFDownloaded = true
	fmt.Println("   📑 Saved profile.pdf")
}

// menuItemByRole scans ARIA menu items for a text fragment, covering
// dropdowns whose class-based selectors have shifted.
func menuItemByRole(finder *dom.Finder, fragment string) *rod.Element {
	items, err := finder.FindByRole("menuitem")
	if err != nil {
		return nil
	}
	for _, el := range items {
		text, err := el.Text()
		if err != nil {
			continue
		}
		if strings.Contains(text, fragment) {
			return el
		}
	}
	return nil
}

// downloadedFile resolves the on-disk path of a finished download. A nil
// info means the bounded wait was cancelled before the download began.
func downloadedFile(dir string, info *proto.PageDownloadWillBegin) string {
	if info == nil || info.GUID == "" {
		return ""
	}
	return filepath.Join(dir, info.GUID)
}

// moveFile renames, falling back to copy+delete across filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return os.Remove(src)
}
