package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// CookieEnvelope is the persisted authentication state: the cookies plus
// the user agent they were issued under, so later headless sessions can
// present the same fingerprint.
type CookieEnvelope struct {
	Cookies   []*proto.NetworkCookie `json:"cookies"`
	UserAgent string                 `json:"user_agent"`
	Timestamp time.Time              `json:"timestamp"`
}

// Age returns how long ago the cookies were captured.
func (e *CookieEnvelope) Age() time.Duration {
	return time.Since(e.Timestamp)
}

// SaveCookies captures the browser's cookies into the envelope file.
func SaveCookies(browser *rod.Browser, path, userAgent string) error {
	cookies, err := browser.GetCookies()
	if err != nil {
		return fmt.Errorf("failed to read browser cookies: %w", err)
	}

	envelope := CookieEnvelope{
		Cookies:   cookies,
		UserAgent: userAgent,
		Timestamp: time.Now(),
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cookies: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write cookie file: %w", err)
	}
	return nil
}

// LoadEnvelope reads the cookie envelope from disk. Returns os.ErrNotExist
// when no envelope has been saved yet.
func LoadEnvelope(path string) (*CookieEnvelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var envelope CookieEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse cookie file: %w", err)
	}
	if len(envelope.Cookies) == 0 {
		return nil, fmt.Errorf("cookie file %s holds no cookies", path)
	}
	return &envelope, nil
}

// ApplyCookies injects the envelope's cookies into the browser.
func ApplyCookies(browser *rod.Browser, envelope *CookieEnvelope) error {
	params := make([]*proto.NetworkCookieParam, 0, len(envelope.Cookies))
	for _, c := range envelope.Cookies {
		params = append(params, &proto.NetworkCookieParam{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HTTPOnly: c.HTTPOnly,
			SameSite: c.SameSite,
		})
	}
	if err := browser.SetCookies(params); err != nil {
		return fmt.Errorf("failed to set cookies: %w", err)
	}
	return nil
}
