// Package humanize simulates human keyboard input timing.
package humanize

import (
	"math/rand"
	"time"

	"github.com/go-rod/rod"
)

// TypingConfig holds configuration for human-like typing.
type TypingConfig struct {
	// Base delay between keystrokes in milliseconds
	BaseDelayMs int
	// Random variation added to base delay (±)
	VariationMs int
	// Probability of a longer "thinking" pause (0-100)
	ThinkPauseProbability int
	ThinkPauseMinMs       int
	ThinkPauseMaxMs       int
}

// DefaultTypingConfig returns typing timing around 75 WPM.
func DefaultTypingConfig() *TypingConfig {
	return &TypingConfig{
		BaseDelayMs:           80,
		VariationMs:           40,
		ThinkPauseProbability: 5,
		ThinkPauseMinMs:       300,
		ThinkPauseMaxMs:       800,
	}
}

// CredentialTypingConfig returns faster timing for familiar text like an
// email address or password.
func CredentialTypingConfig() *TypingConfig {
	return &TypingConfig{
		BaseDelayMs:           60,
		VariationMs:           30,
		ThinkPauseProbability: 2,
		ThinkPauseMinMs:       150,
		ThinkPauseMaxMs:       400,
	}
}

// TypeInto types text into an element character by character with
// human-like delays. Instant input (a single CDP insertText) carries no
// keystroke timing at all, which is a bot flag LinkedIn watches for.
func TypeInto(el *rod.Element, text string, cfg *TypingConfig) error {
	if cfg == nil {
		cfg = DefaultTypingConfig()
	}

	if err := el.Focus(); err != nil {
		return err
	}
	time.Sleep(time.Duration(50+rand.Intn(60)) * time.Millisecond)

	for i, char := range text {
		if err := el.Input(string(char)); err != nil {
			return err
		}
		time.Sleep(keystrokeDelay(char, cfg, i))
	}

	return nil
}

// TypeCredential types an email or password with credential timing.
func TypeCredential(el *rod.Element, credential string) error {
	return TypeInto(el, credential, CredentialTypingConfig())
}

// keystrokeDelay varies per character: word boundaries and shifted
// characters slow a human down, and the first keystroke is the slowest.
func keystrokeDelay(char rune, cfg *TypingConfig, position int) time.Duration {
	delay := cfg.BaseDelayMs

	switch {
	case char == ' ':
		delay = int(float64(delay) * 1.3)
	case char == '.' || char == '!' || char == '?':
		delay = int(float64(delay) * 1.8)
	case char >= 'A' && char <= 'Z':
		delay = int(float64(delay) * 1.2)
	case char >= '0' && char <= '9':
		delay = int(float64(delay) * 1.15)
	case char == '@' || char == '#' || char == '$' || char == '%':
		delay = int(float64(delay) * 1.4)
	}

	if position == 0 {
		delay = int(float64(delay) * 1.5)
	}

	delay += rand.Intn(cfg.VariationMs*2) - cfg.VariationMs
	if delay < 30 {
		delay = 30
	}

	if rand.Intn(100) < cfg.ThinkPauseProbability {
		delay += cfg.ThinkPauseMinMs + rand.Intn(cfg.ThinkPauseMaxMs-cfg.ThinkPauseMinMs)
	}

	return time.Duration(delay) * time.Millisecond
}
