package humanize

import (
	"testing"
	"time"
)

func TestKeystrokeDelayFloor(t *testing.T) {
	cfg := DefaultTypingConfig()
	for i := 0; i < 500; i++ {
		if d := keystrokeDelay('a', cfg, 1); d < 30*time.Millisecond {
			t.Fatalf("delay below floor: %v", d)
		}
	}
}

func TestKeystrokeDelayFirstKeySlower(t *testing.T) {
	cfg := &TypingConfig{
		BaseDelayMs:           80,
		VariationMs:           1,
		ThinkPauseProbability: 0,
		ThinkPauseMinMs:       1,
		ThinkPauseMaxMs:       2,
	}
	first := keystrokeDelay('a', cfg, 0)
	later := keystrokeDelay('a', cfg, 5)
	if first <= later {
		t.Errorf("first key %v should be slower than later key %v", first, later)
	}
}

func TestKeystrokeDelayPunctuationSlower(t *testing.T) {
	cfg := &TypingConfig{
		BaseDelayMs:           100,
		VariationMs:           1,
		ThinkPauseProbability: 0,
		ThinkPauseMinMs:       1,
		ThinkPauseMaxMs:       2,
	}
	plain := keystrokeDelay('a', cfg, 1)
	period := keystrokeDelay('.', cfg, 1)
	if period <= plain {
		t.Errorf("period %v should be slower than plain key %v", period, plain)
	}
}

func TestCredentialConfigFaster(t *testing.T) {
	def := DefaultTypingConfig()
	cred := CredentialTypingConfig()
	if cred.BaseDelayMs >= def.BaseDelayMs {
		t.Errorf("credential typing should be faster: %d vs %d", cred.BaseDelayMs, def.BaseDelayMs)
	}
}
