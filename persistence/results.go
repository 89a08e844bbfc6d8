package persistence

import (
	"database/sql"
	"fmt"
)

// CollectedProfile is one discovered search result link.
type CollectedProfile struct {
	ProfileURL string
	Name       string
	PageNumber int
}

// RecordCollectedProfiles stores discovered profiles, keeping the name
// from the first sighting of each URL. Returns how many were new.
func (s *Store) RecordCollectedProfiles(profiles []CollectedProfile) (int, error) {
	newCount := 0
	err := s.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT OR IGNORE INTO collected_profiles (profile_url, name, page_number)
			VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, p := range profiles {
			res, err := stmt.Exec(p.ProfileURL, p.Name, p.PageNumber)
			if err != nil {
				return fmt.Errorf("failed to record %s: %w", p.ProfileURL, err)
			}
			n, _ := res.RowsAffected()
			newCount += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newCount, nil
}

// CollectedCount returns the total number of distinct profile URLs seen.
func (s *Store) CollectedCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM collected_profiles`).Scan(&n)
	return n, err
}

// RecordPageProcessed bumps today's pages counter and the found counter.
func (s *Store) RecordPageProcessed(newProfiles int) error {
	if err := s.incrementDailyStat("pages_processed", 1); err != nil {
		return err
	}
	return s.incrementDailyStat("profiles_found", newProfiles)
}

// StartExtraction records the beginning of an extraction attempt and
// returns the row id used to complete or fail it later.
func (s *Store) StartExtraction(runID, profileURL string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO extraction_runs (run_id, profile_url, status)
		VALUES (?, ?, 'in_progress')
	`, runID, profileURL)
	if err != nil {
		return 0, fmt.Errorf("failed to record extraction start: %w", err)
	}
	return res.LastInsertId()
}

// CompleteExtraction marks an extraction run as done.
func (s *Store) CompleteExtraction(id int64, folder string) error {
	_, err := s.db.Exec(`
		UPDATE extraction_runs
		SET status = 'completed', folder = ?, completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, folder, id)
	if err != nil {
		return err
	}
	return s.incrementDailyStat("profiles_extracted", 1)
}

// FailExtraction marks an extraction run as failed with a reason.
func (s *Store) FailExtraction(id int64, reason string) error {
	_, err := s.db.Exec(`
		UPDATE extraction_runs
		SET status = 'failed', error_message = ?, completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, reason, id)
	if err != nil {
		return err
	}
	return s.incrementDailyStat("extractions_failed", 1)
}

// IsExtracted reports whether a completed run already exists for the URL,
// so re-runs skip profiles that finished last time.
func (s *Store) IsExtracted(profileURL string) (bool, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM extraction_runs
		WHERE profile_url = ? AND status = 'completed'
	`, profileURL).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
