// Package persistence provides the SQLite ledger behind the harvester:
// collected profile URLs, extraction runs, and daily stats.
package persistence

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const DefaultDBPath = "harvester.db"

// Store handles all persistence operations using SQLite.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the ledger database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}

	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps readers from blocking the single writer
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	store := &Store{db: db, dbPath: dbPath}
	if err := store.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) initTables() error {
	tables := []string{
		// Profile URLs discovered by the collector
		`CREATE TABLE IF NOT EXISTS collected_profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_url TEXT UNIQUE NOT NULL,
			name TEXT,
			page_number INTEGER,
			discovered_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// One row per extraction attempt; the completed row is the
		// resume marker the extractor skips on
		`CREATE TABLE IF NOT EXISTS extraction_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			profile_url TEXT NOT NULL,
			folder TEXT,
			status TEXT DEFAULT 'in_progress',
			error_message TEXT,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME
		)`,

		`CREATE TABLE IF NOT EXISTS daily_stats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date DATE UNIQUE NOT NULL,
			pages_processed INTEGER DEFAULT 0,
			profiles_found INTEGER DEFAULT 0,
			profiles_extracted INTEGER DEFAULT 0,
			extractions_failed INTEGER DEFAULT 0
		)`,
	}

	for _, table := range tables {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_extraction_runs_url ON extraction_runs(profile_url)`,
		`CREATE INDEX IF NOT EXISTS idx_extraction_runs_status ON extraction_runs(status)`,
		`CREATE INDEX IF NOT EXISTS idx_collected_profiles_page ON collected_profiles(page_number)`,
	}

	for _, idx := range indexes {
		if _, err := s.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// Transaction executes fn within a database transaction.
func (s *Store) Transaction(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

func (s *Store) ensureDailyStats() error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO daily_stats (date) VALUES (?)`, todayDate())
	return err
}

func (s *Store) incrementDailyStat(field string, by int) error {
	if err := s.ensureDailyStats(); err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE daily_stats SET %s = %s + ? WHERE date = ?`, field, field)
	_, err := s.db.Exec(query, by, todayDate())
	return err
}

// DailyStats holds today's counters.
type DailyStats struct {
	Date              string
	PagesProcessed    int
	ProfilesFound     int
	ProfilesExtracted int
	ExtractionsFailed int
}

// TodayStats returns today's counters (zeroes when nothing ran yet).
func (s *Store) TodayStats() (*DailyStats, error) {
	stats := &DailyStats{Date: todayDate()}
	err := s.db.QueryRow(`
		SELECT pages_processed, profiles_found, profiles_extracted, extractions_failed
		FROM daily_stats WHERE date = ?
	`, stats.Date).Scan(
		&stats.PagesProcessed, &stats.ProfilesFound,
		&stats.ProfilesExtracted, &stats.ExtractionsFailed,
	)
	if err == sql.ErrNoRows {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}
