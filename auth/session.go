// Package auth bootstraps an authenticated LinkedIn browser session from a
// persisted cookie envelope, falling back to a fresh login.
package auth

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"linkedin-harvester/config"
	"linkedin-harvester/dom"
	"linkedin-harvester/stealth"
)

const feedURL = "https://www.linkedin.com/feed/"

// Session is the authenticated browser handle both procedures run on.
// It is passed explicitly; nothing in this codebase reaches for a global
// browser.
type Session struct {
	Browser *rod.Browser
	Config  *stealth.BrowserConfig

	cookiesFile string
}

// Bootstrap produces an authenticated session. Existing cookies are tried
// first; when they are missing or stale a fresh login (credential-based if
// configured, interactive otherwise) replaces them. Bootstrap failure is
// fatal for the caller: nothing else in either binary can run without it.
func Bootstrap(cfg *config.Config) (*Session, error) {
	envelope, err := LoadEnvelope(cfg.CookiesFile())
	if err == nil {
		fmt.Printf("🍪 Found cookies from %.0f days ago\n", envelope.Age().Hours()/24)

		sess, err := bootstrapFromCookies(cfg, envelope)
		if err == nil {
			return sess, nil
		}
		fmt.Printf("⚠️ Cookies expired or invalid: %v\n", err)
	} else if !os.IsNotExist(err) {
		fmt.Printf("⚠️ Could not load cookies: %v\n", err)
	}

	return bootstrapFromLogin(cfg)
}

func bootstrapFromCookies(cfg *config.Config, envelope *CookieEnvelope) (*Session, error) {
	browserCfg := stealth.NewBrowserConfig(cfg.Headless, envelope.UserAgent)
	browser, err := stealth.Launch(browserCfg)
	if err != nil {
		return nil, err
	}

	if err := ApplyCookies(browser, envelope); err != nil {
		browser.Close()
		return nil, err
	}

	sess := &Session{
		Browser:     browser,
		Config:      browserCfg,
		cookiesFile: cfg.CookiesFile(),
	}

	if err := sess.verify(); err != nil {
		browser.Close()
		return nil, err
	}

	fmt.Println("✅ Authenticated using existing cookies")
	return sess, nil
}

func bootstrapFromLogin(cfg *config.Config) (*Session, error) {
	// Login always runs headful so a human can clear checkpoints
	browserCfg := stealth.NewBrowserConfig(false, "")
	browser, err := stealth.Launch(browserCfg)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		Browser:     browser,
		Config:      browserCfg,
		cookiesFile: cfg.CookiesFile(),
	}

	if cfg.Email != "" && cfg.Password != "" {
		fmt.Println("🔐 Performing credential login...")
		err = sess.login(cfg.Email, cfg.Password)
	} else {
		fmt.Println("🔐 No credentials configured - manual login required")
		err = sess.manualLogin()
	}
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	if err := SaveCookies(browser, sess.cookiesFile, browserCfg.UserAgent); err != nil {
		browser.Close()
		return nil, err
	}
	fmt.Println("🍪 Cookies saved successfully")

	return sess, nil
}

// NewPage opens a fresh stealth-prepared page.
func (s *Session) NewPage() (*rod.Page, error) {
	page, err := s.Browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	if err := stealth.PreparePage(page, s.Config); err != nil {
		page.Close()
		return nil, err
	}
	return page, nil
}

// Navigate opens the URL on the page and waits for the load to settle,
// bounded by timeout.
func (s *Session) Navigate(page *rod.Page, url string, timeout time.Duration) error {
	page = page.Timeout(timeout)
	defer page.CancelTimeout()

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("page load of %s failed: %w", url, err)
	}
	stealth.PageLoadDelay()
	return nil
}

// Close shuts the browser down.
func (s *Session) Close() {
	if s.Browser != nil {
		s.Browser.Close()
	}
}

// verify confirms the session is logged in by opening the feed and
// checking for a logged-in-only element.
func (s *Session) verify() error {
	page, err := s.NewPage()
	if err != nil {
		return err
	}
	defer page.Close()

	if err := s.Navigate(page, feedURL, 30*time.Second); err != nil {
		return err
	}

	info, err := page.Info()
	if err != nil {
		return fmt.Errorf("failed to read page info: %w", err)
	}
	if strings.Contains(info.URL, "/login") || strings.Contains(info.URL, "/authwall") {
		return fmt.Errorf("redirected to login page")
	}

	finder := dom.NewFinder(page)
	err = stealth.WaitFor("logged-in feed element", stealth.DefaultWait(10*time.Second), func() (bool, error) {
		return finder.Has(dom.FeedIdentity), nil
	})
	if err != nil {
		return fmt.Errorf("feed did not render a logged-in session: %w", err)
	}
	return nil
}
