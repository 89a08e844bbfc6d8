package persistence

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordCollectedProfilesDedupes(t *testing.T) {
	store := newTestStore(t)

	first := []CollectedProfile{
		{ProfileURL: "https://www.linkedin.com/in/alice", Name: "Alice Smith", PageNumber: 1},
		{ProfileURL: "https://www.linkedin.com/in/bob", Name: "Bob Jones", PageNumber: 1},
	}
	n, err := store.RecordCollectedProfiles(first)
	if err != nil {
		t.Fatalf("RecordCollectedProfiles: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 new profiles, got %d", n)
	}

	// Second page re-lists alice with a different name; first sighting wins
	second := []CollectedProfile{
		{ProfileURL: "https://www.linkedin.com/in/alice", Name: "Different Name", PageNumber: 2},
		{ProfileURL: "https://www.linkedin.com/in/carol", Name: "Carol White", PageNumber: 2},
	}
	n, err = store.RecordCollectedProfiles(second)
	if err != nil {
		t.Fatalf("RecordCollectedProfiles: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 new profile, got %d", n)
	}

	total, err := store.CollectedCount()
	if err != nil {
		t.Fatalf("CollectedCount: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 total, got %d", total)
	}
}

func TestExtractionRunLifecycle(t *testing.T) {
	store := newTestStore(t)
	url := "https://www.linkedin.com/in/alice"

	done, err := store.IsExtracted(url)
	if err != nil {
		t.Fatalf("IsExtracted: %v", err)
	}
	if done {
		t.Error("profile should not be extracted yet")
	}

	id, err := store.StartExtraction("run-1", url)
	if err != nil {
		t.Fatalf("StartExtraction: %v", err)
	}

	// In progress is not completed
	done, _ = store.IsExtracted(url)
	if done {
		t.Error("in-progress run should not count as extracted")
	}

	if err := store.CompleteExtraction(id, "1_Alice_Smith"); err != nil {
		t.Fatalf("CompleteExtraction: %v", err)
	}

	done, err = store.IsExtracted(url)
	if err != nil {
		t.Fatalf("IsExtracted: %v", err)
	}
	if !done {
		t.Error("completed run should count as extracted")
	}
}

func TestFailedRunDoesNotBlockRetry(t *testing.T) {
	store := newTestStore(t)
	url := "https://www.linkedin.com/in/bob"

	id, err := store.StartExtraction("run-1", url)
	if err != nil {
		t.Fatalf("StartExtraction: %v", err)
	}
	if err := store.FailExtraction(id, "navigation timeout"); err != nil {
		t.Fatalf("FailExtraction: %v", err)
	}

	done, err := store.IsExtracted(url)
	if err != nil {
		t.Fatalf("IsExtracted: %v", err)
	}
	if done {
		t.Error("failed run must not mark the profile as extracted")
	}

	stats, err := store.TodayStats()
	if err != nil {
		t.Fatalf("TodayStats: %v", err)
	}
	if stats.ExtractionsFailed != 1 {
		t.Errorf("expected 1 failed extraction, got %d", stats.ExtractionsFailed)
	}
}

func TestRunMarkersErrorOnClosedStore(t *testing.T) {
	store := newTestStore(t)
	id, err := store.StartExtraction("run-1", "https://www.linkedin.com/in/alice")
	if err != nil {
		t.Fatalf("StartExtraction: %v", err)
	}
	store.Close()

	if err := store.CompleteExtraction(id, "1_Alice_Smith"); err == nil {
		t.Error("CompleteExtraction on a closed store must report the lost resume marker")
	}
	if err := store.FailExtraction(id, "boom"); err == nil {
		t.Error("FailExtraction on a closed store must report an error")
	}
}

func TestDailyStatsAccumulate(t *testing.T) {
	store := newTestStore(t)

	if err := store.RecordPageProcessed(7); err != nil {
		t.Fatalf("RecordPageProcessed: %v", err)
	}
	if err := store.RecordPageProcessed(3); err != nil {
		t.Fatalf("RecordPageProcessed: %v", err)
	}

	stats, err := store.TodayStats()
	if err != nil {
		t.Fatalf("TodayStats: %v", err)
	}
	if stats.PagesProcessed != 2 {
		t.Errorf("expected 2 pages processed, got %d", stats.PagesProcessed)
	}
	if stats.ProfilesFound != 10 {
		t.Errorf("expected 10 profiles found, got %d", stats.ProfilesFound)
	}
}
