package store

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS space_versions (
	version_id   TEXT PRIMARY KEY,
	parent_id    TEXT,
	space_name   TEXT NOT NULL,
	basis_json   TEXT NOT NULL,
	labels_json  TEXT NOT NULL,
	scalars      BLOB NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES space_versions(version_id)
);

CREATE TABLE IF NOT EXISTS update_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	version_id    TEXT NOT NULL,
	space_name    TEXT NOT NULL,
	basis_element TEXT NOT NULL,
	from_index    INTEGER NOT NULL,
	to_index      INTEGER NOT NULL,
	check_passed  INTEGER NOT NULL,
	note          TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES space_versions(version_id)
);

CREATE TABLE IF NOT EXISTS active_space (
	space_name   TEXT PRIMARY KEY,
	version_id   TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES space_versions(version_id)
);
`

// #endregion schema

// #region store-struct

// Store manages versioned state-space snapshots in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region create-initial

// CreateInitialSpace stores rec as the root version of its space name and
// points the active pointer at it. The record gets a fresh version ID and an
// empty parent.
func (s *Store) CreateInitialSpace(rec SpaceRecord) (SpaceRecord, error) {
	rec.VersionID = uuid.New().String()
	rec.ParentID = ""
	rec.CreatedAt = time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return SpaceRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertVersion(tx, rec); err != nil {
		return SpaceRecord{}, err
	}

	_, err = tx.Exec(
		`INSERT INTO active_space (space_name, version_id) VALUES (?, ?)
		 ON CONFLICT(space_name) DO UPDATE SET version_id = excluded.version_id`,
		rec.SpaceName, rec.VersionID,
	)
	if err != nil {
		return SpaceRecord{}, fmt.Errorf("set active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SpaceRecord{}, fmt.Errorf("commit: %w", err)
	}

	return rec, nil
}

// #endregion create-initial

// #region get-current

// GetCurrent reads the active version of the named space.
func (s *Store) GetCurrent(spaceName string) (SpaceRecord, error) {
	var versionID string
	err := s.db.QueryRow(
		`SELECT version_id FROM active_space WHERE space_name = ?`, spaceName,
	).Scan(&versionID)
	if err != nil {
		return SpaceRecord{}, fmt.Errorf("get active for %s: %w", spaceName, err)
	}
	return s.GetVersion(versionID)
}

// #endregion get-current

// #region get-version

// GetVersion retrieves a specific snapshot version by ID.
func (s *Store) GetVersion(id string) (SpaceRecord, error) {
	row := s.db.QueryRow(
		`SELECT version_id, parent_id, space_name, basis_json, labels_json, scalars, created_at
		 FROM space_versions WHERE version_id = ?`, id,
	)
	rec, err := scanVersion(row)
	if err != nil {
		return SpaceRecord{}, fmt.Errorf("get version %s: %w", id, err)
	}
	return rec, nil
}

// #endregion get-version

// #region commit

// CommitSpace inserts a new version and moves the active pointer atomically.
func (s *Store) CommitSpace(rec SpaceRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertVersion(tx, rec); err != nil {
		return err
	}

	_, err = tx.Exec(
		`UPDATE active_space SET version_id = ? WHERE space_name = ?`,
		rec.VersionID, rec.SpaceName,
	)
	if err != nil {
		return fmt.Errorf("update active: %w", err)
	}

	return tx.Commit()
}

// #endregion commit

// #region rollback

// Rollback sets the active pointer of the named space to a previous version.
func (s *Store) Rollback(spaceName, targetVersionID string) error {
	var exists int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM space_versions WHERE version_id = ? AND space_name = ?`,
		targetVersionID, spaceName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check version: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("version %s not found for space %s", targetVersionID, spaceName)
	}

	_, err = s.db.Exec(
		`UPDATE active_space SET version_id = ? WHERE space_name = ?`,
		targetVersionID, spaceName,
	)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// #endregion rollback

// #region list-versions

// ListVersions returns the most recent versions of the named space.
func (s *Store) ListVersions(spaceName string, limit int) ([]SpaceRecord, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, space_name, basis_json, labels_json, scalars, created_at
		 FROM space_versions WHERE space_name = ? ORDER BY created_at DESC LIMIT ?`,
		spaceName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var records []SpaceRecord
	for rows.Next() {
		rec, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// InitialVersion returns the root version (no parent) of the named space.
func (s *Store) InitialVersion(spaceName string) (SpaceRecord, error) {
	var versionID string
	err := s.db.QueryRow(
		`SELECT version_id FROM space_versions
		 WHERE space_name = ? AND parent_id IS NULL
		 ORDER BY created_at ASC LIMIT 1`, spaceName,
	).Scan(&versionID)
	if err != nil {
		return SpaceRecord{}, fmt.Errorf("find initial version for %s: %w", spaceName, err)
	}
	return s.GetVersion(versionID)
}

// #endregion list-versions

// #region row-helpers

type rowScanner interface {
	Scan(dest ...any) error
}

func insertVersion(tx *sql.Tx, rec SpaceRecord) error {
	basisJSON, err := json.Marshal(rec.Elements)
	if err != nil {
		return fmt.Errorf("marshal basis: %w", err)
	}
	labelsJSON, err := json.Marshal(rec.Labels)
	if err != nil {
		return fmt.Errorf("marshal labels: %w", err)
	}

	var parentPtr interface{}
	if rec.ParentID != "" {
		parentPtr = rec.ParentID
	}

	_, err = tx.Exec(
		`INSERT INTO space_versions (version_id, parent_id, space_name, basis_json, labels_json, scalars, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.VersionID, parentPtr, rec.SpaceName, string(basisJSON), string(labelsJSON),
		encodeScalars(rec.Scalars), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert version: %w", err)
	}
	return nil
}

func scanVersion(row rowScanner) (SpaceRecord, error) {
	var rec SpaceRecord
	var parentID sql.NullString
	var basisJSON, labelsJSON string
	var scalarBlob []byte
	var createdStr string

	if err := row.Scan(&rec.VersionID, &parentID, &rec.SpaceName,
		&basisJSON, &labelsJSON, &scalarBlob, &createdStr); err != nil {
		return SpaceRecord{}, err
	}

	if parentID.Valid {
		rec.ParentID = parentID.String
	}
	if err := json.Unmarshal([]byte(basisJSON), &rec.Elements); err != nil {
		return SpaceRecord{}, fmt.Errorf("unmarshal basis: %w", err)
	}
	if err := json.Unmarshal([]byte(labelsJSON), &rec.Labels); err != nil {
		return SpaceRecord{}, fmt.Errorf("unmarshal labels: %w", err)
	}
	rec.Scalars = decodeScalars(scalarBlob)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	return rec, nil
}

// #endregion row-helpers

// #region scalar-encoding

func encodeScalars(scalars []int) []byte {
	buf := make([]byte, len(scalars)*4)
	for i, v := range scalars {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(int32(v)))
	}
	return buf
}

func decodeScalars(b []byte) []int {
	out := make([]int, len(b)/4)
	for i := range out {
		out[i] = int(int32(binary.LittleEndian.Uint32(b[i*4:])))
	}
	return out
}

// #endregion scalar-encoding
