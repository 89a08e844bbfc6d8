package stealth

import (
	"errors"
	"fmt"
	"time"
)

// WaitConfig controls the poll-until-ready primitive. Polling replaces
// unconditioned sleeps: the caller states the condition it is waiting for
// and the bound it will tolerate, and the interval carries the same random
// jitter a human's attention does.
type WaitConfig struct {
	Timeout       time.Duration
	Interval      time.Duration
	JitterPercent int
}

// DefaultWait returns the polling configuration used for UI conditions.
func DefaultWait(timeout time.Duration) *WaitConfig {
	return &WaitConfig{
		Timeout:       timeout,
		Interval:      400 * time.Millisecond,
		JitterPercent: 40,
	}
}

// ErrWaitTimeout is returned when the condition never became true within
// the bound.
type ErrWaitTimeout struct {
	What    string
	Timeout time.Duration
}

func (e *ErrWaitTimeout) Error() string {
	return fmt.Sprintf("timed out after %v waiting for %s", e.Timeout, e.What)
}

// WaitFor polls cond until it reports true, the condition errors, or the
// bound elapses. A nil cfg uses DefaultWait with a 10 second bound.
func WaitFor(what string, cfg *WaitConfig, cond func() (bool, error)) error {
	if cfg == nil {
		cfg = DefaultWait(10 * time.Second)
	}

	deadline := time.Now().Add(cfg.Timeout)
	for {
		ok, err := cond()
		if err != nil {
			return fmt.Errorf("waiting for %s: %w", what, err)
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return &ErrWaitTimeout{What: what, Timeout: cfg.Timeout}
		}
		time.Sleep(Jitter(cfg.Interval, cfg.JitterPercent))
	}
}

// IsTimeout reports whether err is a WaitFor timeout.
func IsTimeout(err error) bool {
	var te *ErrWaitTimeout
	return errors.As(err, &te)
}
