package extractor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"linkedin-harvester/record"
)

func TestCleanFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Jane Doe", "Jane_Doe"},
		{"accents folded", "José Muñoz", "Jose_Munoz"},
		{"punctuation dropped", "Dr. Jane O'Doe, PhD", "Dr_Jane_ODoe_PhD"},
		{"hyphen kept", "Mary-Jane Watson", "Mary-Jane_Watson"},
		{"cjk kept", "田中 太郎", "田中_太郎"},
		{"hangul kept", "김철수", "김철수"},
		{"empty falls back", "", "unknown_profile"},
		{"symbols only fall back", "✓✓✓", "unknown_profile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanFilename(tt.in); got != tt.want {
				t.Errorf("CleanFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanFilenameLength(t *testing.T) {
	long := strings.Repeat("VeryLongName ", 20)
	got := CleanFilename(long)
	if len(got) > maxFilenameLen {
		t.Errorf("length %d exceeds cap %d", len(got), maxFilenameLen)
	}
	if strings.HasSuffix(got, "_") {
		t.Errorf("truncated name should not end in underscore: %q", got)
	}

	// Multibyte names must truncate on rune boundaries
	cjk := CleanFilename(strings.Repeat("田中", 60))
	if n := len([]rune(cjk)); n > maxFilenameLen {
		t.Errorf("rune length %d exceeds cap %d", n, maxFilenameLen)
	}
	for _, r := range cjk {
		if r == '�' {
			t.Fatalf("truncation split a rune: %q", cjk)
		}
	}
}

func TestNextFolderNumber(t *testing.T) {
	dir := t.TempDir()

	if n := NextFolderNumber(dir); n != 1 {
		t.Errorf("empty dir: expected 1, got %d", n)
	}

	for _, name := range []string{"1_Alice_Smith", "2_Bob_Jones", "7_Carol_White", "notes", "x_bad"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	// A stray file must not count
	if err := os.WriteFile(filepath.Join(dir, "9_file.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if n := NextFolderNumber(dir); n != 8 {
		t.Errorf("expected 8, got %d", n)
	}
}

func TestNextFolderNumberMissingDir(t *testing.T) {
	if n := NextFolderNumber(filepath.Join(t.TempDir(), "nope")); n != 1 {
		t.Errorf("missing dir: expected 1, got %d", n)
	}
}

func TestWriteRecord(t *testing.T) {
	dir := t.TempDir()
	folder, err := ProfileFolder(dir, 3, "Jane_Doe")
	if err != nil {
		t.Fatalf("ProfileFolder: %v", err)
	}
	if filepath.Base(folder) != "3_Jane_Doe" {
		t.Errorf("unexpected folder name: %s", folder)
	}

	rec := record.Assemble(record.ProfileInfo{
		Name:          "Jane Doe",
		CleanFilename: "Jane_Doe",
		ProfileURL:    "https://www.linkedin.com/in/janedoe",
	}, record.ContactInfo{}, nil, nil, "run-1")

	path, err := WriteRecord(folder, "Jane_Doe", rec)
	if err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	if filepath.Base(path) != "Jane_Doe_info.json" {
		t.Errorf("unexpected file name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var loaded record.ProfileRecord
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("record is not valid JSON: %v", err)
	}
	if loaded.ProfileInfo.Name != "Jane Doe" {
		t.Errorf("unexpected name: %q", loaded.ProfileInfo.Name)
	}
	if loaded.ExtractionLog.RunID != "run-1" {
		t.Errorf("unexpected run id: %q", loaded.ExtractionLog.RunID)
	}
	if loaded.Posts == nil || loaded.Comments == nil {
		t.Error("posts and comments must serialize as arrays, not null")
	}
}
