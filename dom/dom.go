// Package dom isolates every site-specific DOM lookup behind one seam.
// Callers name what they want (a selector set from selectors.go, a role,
// a text fragment) and never touch raw selectors themselves.
package dom

import (
	"fmt"
	"strings"

	"github.com/go-rod/rod"

	"linkedin-harvester/stealth"
)

// Finder wraps a page with selector-set lookups.
type Finder struct {
	page *rod.Page
}

// NewFinder returns a Finder over the given page.
func NewFinder(page *rod.Page) *Finder {
	return &Finder{page: page}
}

// Page exposes the underlying page for navigation.
func (f *Finder) Page() *rod.Page {
	return f.page
}

// FindFirst scans the selector set in order and returns the first visible
// match, or nil when nothing matches.
func (f *Finder) FindFirst(selectors []string) (*rod.Element, error) {
	for _, sel := range selectors {
		elements, err := f.page.Elements(sel)
		if err != nil {
			continue
		}
		for _, el := range elements {
			if visible(el) {
				return el, nil
			}
		}
	}
	return nil, nil
}

// FindAll returns every visible element matched by any selector in the
// set, deduplicated by backend node order of first match.
func (f *Finder) FindAll(selectors []string) ([]*rod.Element, error) {
	for _, sel := range selectors {
		elements, err := f.page.Elements(sel)
		if err != nil || len(elements) == 0 {
			continue
		}
		var out []*rod.Element
		for _, el := range elements {
			out = append(out, el)
		}
		if len(out) > 0 {
			return out, nil
		}
	}
	return nil, nil
}

// FindByRole returns visible elements carrying the given ARIA role.
func (f *Finder) FindByRole(role string) ([]*rod.Element, error) {
	selector := fmt.Sprintf(`[role=%q]`, role)
	elements, err := f.page.Elements(selector)
	if err != nil {
		return nil, err
	}
	var out []*rod.Element
	for _, el := range elements {
		if visible(el) {
			out = append(out, el)
		}
	}
	return out, nil
}

// FindByText scans the selector set for a visible element whose text
// contains the given fragment.
func (f *Finder) FindByText(selectors []string, fragment string) (*rod.Element, error) {
	for _, sel := range selectors {
		elements, err := f.page.Elements(sel)
		if err != nil {
			continue
		}
		for _, el := range elements {
			if !visible(el) {
				continue
			}
			text, err := el.Text()
			if err != nil {
				continue
			}
			if strings.Contains(text, fragment) {
				return el, nil
			}
		}
	}
	return nil, nil
}

// WaitForElement polls until a selector from the set matches a visible
// element, bounded by cfg. Returns a timeout error when nothing appears.
func (f *Finder) WaitForElement(what string, selectors []string, cfg *stealth.WaitConfig) (*rod.Element, error) {
	var found *rod.Element
	err := stealth.WaitFor(what, cfg, func() (bool, error) {
		el, err := f.FindFirst(selectors)
		if err != nil {
			return false, err
		}
		if el != nil {
			found = el
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Text returns the trimmed text of the first visible match, or "".
func (f *Finder) Text(selectors []string) string {
	el, err := f.FindFirst(selectors)
	if err != nil || el == nil {
		return ""
	}
	text, err := el.Text()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// Attr returns the named attribute of the first visible match, or "".
func (f *Finder) Attr(selectors []string, name string) string {
	el, err := f.FindFirst(selectors)
	if err != nil || el == nil {
		return ""
	}
	val, err := el.Attribute(name)
	if err != nil || val == nil {
		return ""
	}
	return *val
}

// Has reports whether any selector in the set matches at all, visible or
// not (badges render as zero-size SVGs).
func (f *Finder) Has(selectors []string) bool {
	for _, sel := range selectors {
		has, _, err := f.page.Has(sel)
		if err == nil && has {
			return true
		}
	}
	return false
}

func visible(el *rod.Element) bool {
	v, err := el.Visible()
	return err == nil && v
}
