package extractor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"linkedin-harvester/record"
)

const maxFilenameLen = 50

var (
	filenameStripRe = regexp.MustCompile(`[^\p{L}\p{N}_\s\-]`)
	folderNumRe     = regexp.MustCompile(`^(\d+)_`)
)

// CleanFilename turns a display name into a filesystem-safe base name:
// accents folded to ASCII, punctuation dropped, spaces to underscores,
// capped at 50 characters.
func CleanFilename(name string) string {
	folded, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), name)
	if err != nil {
		folded = name
	}

	clean := filenameStripRe.ReplaceAllString(folded, "")
	clean = strings.Join(strings.Fields(clean), "_")
	if r := []rune(clean); len(r) > maxFilenameLen {
		clean = string(r[:maxFilenameLen])
		clean = strings.TrimRight(clean, "_")
	}
	if clean == "" {
		clean = "unknown_profile"
	}
	return clean
}

// NextFolderNumber scans existing "{n}_Name" output folders and returns
// the next sequence number, so reruns keep numbering where they left off.
func NextFolderNumber(outputDir string) int {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return 1
	}
	highest := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m := folderNumRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1
}

// ProfileFolder creates the numbered per-profile output folder and
// returns its path.
func ProfileFolder(outputDir string, number int, cleanName string) (string, error) {
	folder := filepath.Join(outputDir, fmt.Sprintf("%d_%s", number, cleanName))
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", fmt.Errorf("failed to create profile folder: %w", err)
	}
	return folder, nil
}

// WriteRecord writes the unified record as {clean_name}_info.json inside
// the profile folder.
func WriteRecord(folder, cleanName string, rec *record.ProfileRecord) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize record: %w", err)
	}
	path := filepath.Join(folder, cleanName+"_info.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write record: %w", err)
	}
	return path, nil
}
