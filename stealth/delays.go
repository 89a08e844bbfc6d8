package stealth

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// DelayConfig holds the delay ranges used between browser actions.
type DelayConfig struct {
	// Page load delays (seconds)
	PageLoadMin int
	PageLoadMax int

	// Short delays between UI interactions (milliseconds)
	ShortDelayMin int
	ShortDelayMax int

	// Pause between profiles / pages (seconds)
	ItemDelayMin int
	ItemDelayMax int
}

// DefaultDelays returns sensible default delay configuration.
func DefaultDelays() *DelayConfig {
	return &DelayConfig{
		PageLoadMin:   2,
		PageLoadMax:   5,
		ShortDelayMin: 300,
		ShortDelayMax: 800,
		ItemDelayMin:  3,
		ItemDelayMax:  8,
	}
}

// Global config - can be modified at runtime.
var Delays = DefaultDelays()

// RandomSeconds returns a random duration between min and max seconds.
func RandomSeconds(min, max int) time.Duration {
	if min >= max {
		return time.Duration(min) * time.Second
	}
	n := rand.Intn(max-min+1) + min
	return time.Duration(n) * time.Second
}

// RandomMillis returns a random duration between min and max milliseconds.
func RandomMillis(min, max int) time.Duration {
	if min >= max {
		return time.Duration(min) * time.Millisecond
	}
	n := rand.Intn(max-min+1) + min
	return time.Duration(n) * time.Millisecond
}

// GaussianSeconds returns a normally distributed random duration centered
// around mean, clamped to mean ± 3*stdDev and never below half a second.
func GaussianSeconds(mean, stdDev float64) time.Duration {
	n := rand.NormFloat64()*stdDev + mean
	minVal := math.Max(0.5, mean-3*stdDev)
	maxVal := mean + 3*stdDev
	n = math.Max(minVal, math.Min(maxVal, n))
	return time.Duration(n * float64(time.Second))
}

// Jitter adds random jitter of ±jitterPercent around base, floored at 50ms.
func Jitter(base time.Duration, jitterPercent int) time.Duration {
	if jitterPercent <= 0 {
		return base
	}
	span := int64(base) * int64(jitterPercent) / 100
	if span == 0 {
		return base
	}
	actual := int64(base) + rand.Int63n(2*span) - span
	if actual < int64(50*time.Millisecond) {
		actual = int64(50 * time.Millisecond)
	}
	return time.Duration(actual)
}

// Sleep pauses for a random duration between min and max seconds.
func Sleep(min, max int) {
	d := RandomSeconds(min, max)
	fmt.Printf("⏳ Waiting %.1f seconds...\n", d.Seconds())
	time.Sleep(d)
}

// SleepMillis pauses for a random duration between min and max milliseconds.
func SleepMillis(min, max int) {
	time.Sleep(RandomMillis(min, max))
}

// PageLoadDelay waits for a page to settle after navigation.
func PageLoadDelay() {
	time.Sleep(RandomSeconds(Delays.PageLoadMin, Delays.PageLoadMax))
}

// ShortDelay waits briefly between UI interactions.
func ShortDelay() {
	SleepMillis(Delays.ShortDelayMin, Delays.ShortDelayMax)
}

// ItemDelay waits between processed items (pages, profiles).
func ItemDelay() {
	Sleep(Delays.ItemDelayMin, Delays.ItemDelayMax)
}
