package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/proto"
)

func writeEnvelope(t *testing.T, path string, envelope CookieEnvelope) {
	t.Helper()
	data, err := json.Marshal(envelope)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	writeEnvelope(t, path, CookieEnvelope{
		Cookies: []*proto.NetworkCookie{
			{Name: "li_at", Value: "secret", Domain: ".linkedin.com"},
		},
		UserAgent: "Mozilla/5.0 test",
		Timestamp: time.Now().Add(-48 * time.Hour),
	})

	envelope, err := LoadEnvelope(path)
	if err != nil {
		t.Fatalf("LoadEnvelope: %v", err)
	}
	if len(envelope.Cookies) != 1 || envelope.Cookies[0].Name != "li_at" {
		t.Errorf("unexpected cookies: %+v", envelope.Cookies)
	}
	if envelope.UserAgent != "Mozilla/5.0 test" {
		t.Errorf("unexpected user agent: %q", envelope.UserAgent)
	}
	if age := envelope.Age(); age < 47*time.Hour || age > 49*time.Hour {
		t.Errorf("unexpected age: %v", age)
	}
}

func TestLoadEnvelopeMissingFile(t *testing.T) {
	_, err := LoadEnvelope(filepath.Join(t.TempDir(), "nope.json"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadEnvelopeRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	writeEnvelope(t, path, CookieEnvelope{UserAgent: "ua", Timestamp: time.Now()})

	if _, err := LoadEnvelope(path); err == nil {
		t.Error("envelope without cookies must be rejected")
	}
}

func TestLoadEnvelopeRejectsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	if err := os.WriteFile(path, []byte("{oops"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEnvelope(path); err == nil {
		t.Error("corrupt envelope must be rejected")
	}
}
