package stealth

import (
	"math/rand"
	"time"

	"github.com/go-rod/rod"
)

// ScrollConfig holds configuration for human-like scrolling.
type ScrollConfig struct {
	// Scroll step in pixels
	StepMin int
	StepMax int

	// Delay between scroll steps (milliseconds)
	StepDelayMin int
	StepDelayMax int

	// Probability of a slight scroll back after a scroll
	ScrollBackChance float64

	// Pause after a scroll burst (milliseconds)
	PauseMin int
	PauseMax int
}

// DefaultScrollConfig returns sensible defaults for feed scrolling.
func DefaultScrollConfig() *ScrollConfig {
	return &ScrollConfig{
		StepMin:          250,
		StepMax:          600,
		StepDelayMin:     20,
		StepDelayMax:     60,
		ScrollBackChance: 0.12,
		PauseMin:         400,
		PauseMax:         1200,
	}
}

// Global scroll config.
var ScrollCfg = DefaultScrollConfig()

// ScrollStep performs one human-like scroll burst down the page.
func ScrollStep(page *rod.Page) error {
	cfg := ScrollCfg
	distance := rand.Intn(cfg.StepMax-cfg.StepMin+1) + cfg.StepMin

	steps := 3 + rand.Intn(4)
	stepSize := distance / steps
	for i := 0; i < steps; i++ {
		variation := rand.Intn(21) - 10
		actual := stepSize + variation
		if actual < 10 {
			actual = 10
		}
		if err := page.Mouse.Scroll(0, float64(actual), 1); err != nil {
			return err
		}
		time.Sleep(RandomMillis(cfg.StepDelayMin, cfg.StepDelayMax))
	}

	if rand.Float64() < cfg.ScrollBackChance {
		back := distance / (4 + rand.Intn(4))
		time.Sleep(RandomMillis(100, 300))
		if err := page.Mouse.Scroll(0, float64(-back), 1); err != nil {
			return err
		}
	}

	time.Sleep(RandomMillis(cfg.PauseMin, cfg.PauseMax))
	return nil
}

// ScrollToPageBottom jumps to the bottom of the document, the trigger the
// lazy-loaded feeds respond to, then lets the render settle.
func ScrollToPageBottom(page *rod.Page) error {
	_, err := page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	if err != nil {
		return err
	}
	time.Sleep(GaussianSeconds(2.5, 0.6))
	return nil
}
