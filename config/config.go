// Package config centralizes all runtime knobs for both binaries.
// There are no command-line flags: everything comes from the environment
// (optionally via a .env file), with conservative defaults.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full configuration shared by the collector and extractor.
type Config struct {
	// Directories and files
	CollectorDir string // holds cookies.json, profile_links.json, search_url_cache.json
	OutputDir    string // per-profile output folders
	DownloadsDir string // where the browser drops PDF exports before we move them
	DBPath       string // SQLite ledger

	// Credentials (optional - manual login is used when absent)
	Email    string
	Password string

	// Collection
	SearchURL string // starting search-results address
	MaxPages  int

	// Extraction
	MaxScrolls     int // lazy-load scroll bound per feed
	OverlayTimeout time.Duration
	NavTimeout     time.Duration

	// Browser
	Headless bool
}

// Default returns the configuration used when no environment overrides exist.
func Default() *Config {
	return &Config{
		CollectorDir:   "linkedin_url_collector",
		OutputDir:      "scraped_data",
		DownloadsDir:   defaultDownloadsDir(),
		DBPath:         "harvester.db",
		SearchURL:      "",
		MaxPages:       5,
		MaxScrolls:     20,
		OverlayTimeout: 10 * time.Second,
		NavTimeout:     45 * time.Second,
		Headless:       true,
	}
}

// Load reads .env (if present) and applies environment overrides on top of
// the defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Unable to load .env file; falling back to existing environment variables")
	}

	cfg := Default()

	cfg.CollectorDir = envString("COLLECTOR_DIR", cfg.CollectorDir)
	cfg.OutputDir = envString("OUTPUT_DIR", cfg.OutputDir)
	cfg.DownloadsDir = envString("DOWNLOADS_DIR", cfg.DownloadsDir)
	cfg.DBPath = envString("DB_PATH", cfg.DBPath)

	cfg.Email = os.Getenv("LINKEDIN_EMAIL")
	cfg.Password = os.Getenv("LINKEDIN_PASSWORD")

	cfg.SearchURL = envString("SEARCH_URL", cfg.SearchURL)
	cfg.MaxPages = envInt("MAX_PAGES", cfg.MaxPages)
	cfg.MaxScrolls = envInt("MAX_SCROLLS", cfg.MaxScrolls)
	cfg.OverlayTimeout = envSeconds("OVERLAY_TIMEOUT_SECONDS", cfg.OverlayTimeout)
	cfg.NavTimeout = envSeconds("NAV_TIMEOUT_SECONDS", cfg.NavTimeout)
	cfg.Headless = envBool("HEADLESS", cfg.Headless)

	return cfg
}

// CookiesFile returns the path of the shared cookie file.
func (c *Config) CookiesFile() string {
	return filepath.Join(c.CollectorDir, "cookies.json")
}

// ProfileLinksFile returns the path of the URL → name mapping file, the
// handoff between the two binaries.
func (c *Config) ProfileLinksFile() string {
	return filepath.Join(c.CollectorDir, "profile_links.json")
}

// SearchURLCacheFile returns the path of the cached search URL.
func (c *Config) SearchURLCacheFile() string {
	return filepath.Join(c.CollectorDir, "search_url_cache.json")
}

// EnsureDirs creates the directories the run will write into.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.CollectorDir, c.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func defaultDownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Downloads"
	}
	return filepath.Join(home, "Downloads")
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️ Ignoring invalid %s=%q", key, v)
		return fallback
	}
	return n
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️ Ignoring invalid %s=%q", key, v)
		return fallback
	}
	return time.Duration(n) * time.Second
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️ Ignoring invalid %s=%q", key, v)
		return fallback
	}
	return b
}
