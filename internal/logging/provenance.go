package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-update
// LogUpdate writes a provenance entry to the update_log table.
func LogUpdate(db *sql.DB, entry UpdateEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO update_log (version_id, space_name, basis_element, from_index, to_index, check_passed, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.VersionID,
		entry.SpaceName,
		entry.BasisElement,
		entry.FromIndex,
		entry.ToIndex,
		boolToInt(entry.CheckPassed),
		nullIfEmpty(entry.Note),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log update: %w", err)
	}
	return nil
}
// #endregion log-update

// #region list-updates
// ListUpdates returns the last N update_log rows for one space in
// chronological order. last <= 0 returns every row.
func ListUpdates(db *sql.DB, spaceName string, last int) ([]UpdateEntry, error) {
	if last <= 0 {
		last = -1 // SQLite: negative LIMIT means no limit
	}
	rows, err := db.Query(
		`SELECT version_id, space_name, basis_element, from_index, to_index, check_passed, note, created_at FROM (
			SELECT id, version_id, space_name, basis_element, from_index, to_index, check_passed, note, created_at
			FROM update_log WHERE space_name = ?
			ORDER BY id DESC LIMIT ?
		) sub ORDER BY id ASC`, spaceName, last,
	)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	defer rows.Close()

	var entries []UpdateEntry
	for rows.Next() {
		var e UpdateEntry
		var checkPassed int
		var note sql.NullString
		var createdStr string
		if err := rows.Scan(&e.VersionID, &e.SpaceName, &e.BasisElement,
			&e.FromIndex, &e.ToIndex, &checkPassed, &note, &createdStr); err != nil {
			return nil, fmt.Errorf("scan update row: %w", err)
		}
		e.CheckPassed = checkPassed != 0
		if note.Valid {
			e.Note = note.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion list-updates

// #region helpers
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
