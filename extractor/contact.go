package extractor

import (
	"fmt"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"

	"linkedin-harvester/dom"
	"linkedin-harvester/record"
	"linkedin-harvester/stealth"
)

// extractContactInfo opens the contact-info overlay and pulls whatever
// it exposes. Any failure along the way degrades to an empty ContactInfo
// with a console warning; it never aborts the profile.
func (e *Extractor) extractContactInfo(page *rod.Page, meta *record.ExtractionMetadata) record.ContactInfo {
	contact := record.ContactInfo{Websites: []record.Website{}}
	finder := dom.NewFinder(page)

	btn, err := finder.FindFirst(dom.ContactButton)
	if err != nil || btn == nil {
		fmt.Println("   ⚠️  Contact info button not found")
		return contact
	}
	meta.ContactButtonFound = true

	if err := stealth.HumanClick(page, btn); err != nil {
		fmt.Printf("   ⚠️  Could not click contact info button: %v\n", err)
		return contact
	}

	modal, err := finder.WaitForElement("contact info modal", dom.ContactModal, stealth.DefaultWait(e.Config.OverlayTimeout))
	if err != nil {
		fmt.Println("   ⚠️  Contact info modal did not open")
		e.closeModal(page)
		return contact
	}
	meta.ModalOpened = true
	stealth.ShortDelay()

	contact.Email = extractEmail(modal)
	contact.Phone = extractPhone(modal)
	contact.Websites = extractWebsites(modal)

	e.closeModal(page)
	return contact
}

func extractEmail(modal *rod.Element) string {
	for _, sel := range dom.ContactEmail {
		els, err := modal.Elements(sel)
		if err != nil {
			continue
		}
		for _, el := range els {
			href, err := el.Attribute("href")
			if err != nil || href == nil {
				continue
			}
			email := strings.TrimPrefix(*href, "mailto:")
			if record.ValidEmail(email) {
				return email
			}
		}
	}
	return ""
}

func extractPhone(modal *rod.Element) string {
	for _, sel := range dom.ContactPhone {
		els, err := modal.Elements(sel)
		if err != nil {
			continue
		}
		for _, el := range els {
			if href, err := el.Attribute("href"); err == nil && href != nil && strings.HasPrefix(*href, "tel:") {
				phone := strings.TrimPrefix(*href, "tel:")
				if record.ValidPhone(phone) {
					return phone
				}
			}
			text, err := el.Text()
			if err != nil {
				continue
			}
			text = strings.TrimSpace(text)
			if record.ValidPhone(text) {
				return text
			}
		}
	}
	return ""
}

func extractWebsites(modal *rod.Element) []record.Website {
	websites := []record.Website{}
	seen := map[string]bool{}
	for _, sel := range dom.ContactWebsite {
		els, err := modal.Elements(sel)
		if err != nil {
			continue
		}
		for _, el := range els {
			href, err := el.Attribute("href")
			if err != nil || href == nil {
				continue
			}
			url := strings.TrimSpace(*href)
			if !record.ValidWebsite(url) || seen[url] {
				continue
			}
			seen[url] = true
			text, _ := el.Text()
			websites = append(websites, record.Website{
				URL:         url,
				DisplayText: strings.TrimSpace(text),
			})
		}
		if len(websites) > 0 {
			break
		}
	}
	return websites
}

// closeModal dismisses the overlay, falling back to Escape when the
// dismiss button is missing.
func (e *Extractor) closeModal(page *rod.Page) {
	finder := dom.NewFinder(page)
	if btn, err := finder.FindFirst(dom.ModalDismiss); err == nil && btn != nil {
		if err := stealth.HumanClick(page, btn); err == nil {
			stealth.ShortDelay()
			return
		}
	}
	if err := page.Keyboard.Press(input.Escape); err != nil {
		fmt.Printf("   ⚠️  Could not close modal: %v\n", err)
	}
	stealth.ShortDelay()
}
