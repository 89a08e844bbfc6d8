package stealth

import (
	"errors"
	"testing"
	"time"
)

func TestWaitForImmediateSuccess(t *testing.T) {
	start := time.Now()
	err := WaitFor("ready flag", DefaultWait(5*time.Second), func() (bool, error) {
		return true, nil
	})
	if err != nil {
		t.Fatalf("WaitFor: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("immediate success should not sleep")
	}
}

func TestWaitForEventualSuccess(t *testing.T) {
	calls := 0
	cfg := &WaitConfig{Timeout: 5 * time.Second, Interval: 10 * time.Millisecond, JitterPercent: 20}
	err := WaitFor("third try", cfg, func() (bool, error) {
		calls++
		return calls >= 3, nil
	})
	if err != nil {
		t.Fatalf("WaitFor: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestWaitForTimeout(t *testing.T) {
	cfg := &WaitConfig{Timeout: 50 * time.Millisecond, Interval: 10 * time.Millisecond, JitterPercent: 20}
	err := WaitFor("never ready", cfg, func() (bool, error) {
		return false, nil
	})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !IsTimeout(err) {
		t.Errorf("IsTimeout should report true for %v", err)
	}
}

func TestWaitForConditionError(t *testing.T) {
	boom := errors.New("boom")
	err := WaitFor("failing check", DefaultWait(time.Second), func() (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("condition error should be wrapped, got %v", err)
	}
	if IsTimeout(err) {
		t.Error("condition error is not a timeout")
	}
}

func TestJitterBounds(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 200; i++ {
		d := Jitter(base, 40)
		if d < 50*time.Millisecond {
			t.Fatalf("jitter below floor: %v", d)
		}
		if d > 140*time.Millisecond {
			t.Fatalf("jitter above +40%%: %v", d)
		}
	}
}

func TestGaussianSecondsNeverNegative(t *testing.T) {
	for i := 0; i < 200; i++ {
		if d := GaussianSeconds(1.0, 2.0); d < 0 {
			t.Fatalf("negative duration: %v", d)
		}
	}
}
