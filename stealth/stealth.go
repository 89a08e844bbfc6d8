// Package stealth provides the anti-detection browser setup and the timing
// primitives both binaries pace themselves with.
package stealth

import (
	"fmt"
	"math/rand"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserConfig holds configuration for the stealth browser.
type BrowserConfig struct {
	Headless  bool
	UserAgent string // empty = pick a random realistic one
	Viewport  *Viewport
}

// Viewport represents browser window dimensions.
type Viewport struct {
	Width  int
	Height int
}

// Common realistic desktop viewport sizes.
var commonViewports = []Viewport{
	{1920, 1080},
	{1366, 768},
	{1536, 864},
	{1440, 900},
	{1600, 900},
	{1920, 1200},
}

// Common realistic user agents.
var commonUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
}

// NewBrowserConfig returns a randomized stealth configuration. Pass a
// userAgent recorded alongside saved cookies so the headless session
// matches the fingerprint the cookies were issued under.
func NewBrowserConfig(headless bool, userAgent string) *BrowserConfig {
	if userAgent == "" {
		userAgent = commonUserAgents[rand.Intn(len(commonUserAgents))]
	}
	return &BrowserConfig{
		Headless:  headless,
		UserAgent: userAgent,
		Viewport:  randomViewport(),
	}
}

func randomViewport() *Viewport {
	vp := commonViewports[rand.Intn(len(commonViewports))]
	// Slight offset so sizes don't match a known preset exactly
	vp.Width += rand.Intn(20) - 10
	vp.Height += rand.Intn(20) - 10
	return &vp
}

// Launch starts a Chrome instance with anti-detection flags and connects
// to it.
func Launch(cfg *BrowserConfig) (*rod.Browser, error) {
	if cfg == nil {
		cfg = NewBrowserConfig(true, "")
	}

	l := launcher.New().
		// Keeps navigator.webdriver from being set
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-infobars").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("window-size", fmt.Sprintf("%d,%d", cfg.Viewport.Width, cfg.Viewport.Height)).
		Set("user-agent", cfg.UserAgent).
		Headless(cfg.Headless).
		Leakless(false)

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return browser, nil
}

// PreparePage applies the stealth fingerprint to a page before navigation.
func PreparePage(page *rod.Page, cfg *BrowserConfig) error {
	if cfg == nil {
		cfg = NewBrowserConfig(true, "")
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             cfg.Viewport.Width,
		Height:            cfg.Viewport.Height,
		DeviceScaleFactor: 1.0,
	}); err != nil {
		return fmt.Errorf("failed to set viewport: %w", err)
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent: cfg.UserAgent,
	}); err != nil {
		return fmt.Errorf("failed to set user agent: %w", err)
	}

	// Must run before LinkedIn's own scripts read navigator properties
	if _, err := page.EvalOnNewDocument(stealthScript); err != nil {
		return fmt.Errorf("failed to inject stealth script: %w", err)
	}

	return nil
}

// stealthScript masks the fingerprints headless Chrome leaks.
const stealthScript = `
	Object.defineProperty(navigator, 'webdriver', {
		get: () => undefined,
		configurable: true
	});

	Object.defineProperty(navigator, 'plugins', {
		get: () => {
			const plugins = [
				{ name: 'Chrome PDF Plugin', filename: 'internal-pdf-viewer', description: 'Portable Document Format' },
				{ name: 'Chrome PDF Viewer', filename: 'mhjfbmdgcfjbbpaeojofohoefgiehjai', description: '' },
				{ name: 'Native Client', filename: 'internal-nacl-plugin', description: '' }
			];
			plugins.item = (i) => plugins[i] || null;
			plugins.namedItem = (name) => plugins.find(p => p.name === name) || null;
			plugins.refresh = () => {};
			return plugins;
		},
		configurable: true
	});

	Object.defineProperty(navigator, 'languages', {
		get: () => ['en-US', 'en'],
		configurable: true
	});

	Object.defineProperty(navigator, 'hardwareConcurrency', {
		get: () => 8,
		configurable: true
	});

	Object.defineProperty(navigator, 'deviceMemory', {
		get: () => 8,
		configurable: true
	});

	if (!window.chrome) {
		window.chrome = {};
	}
	if (!window.chrome.runtime) {
		window.chrome.runtime = {};
	}

	const originalQuery = window.navigator.permissions?.query;
	if (originalQuery) {
		window.navigator.permissions.query = (parameters) => (
			parameters.name === 'notifications' ?
				Promise.resolve({ state: Notification.permission }) :
				originalQuery(parameters)
		);
	}
`
