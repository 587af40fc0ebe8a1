package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE update_log (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		version_id    TEXT NOT NULL,
		space_name    TEXT NOT NULL,
		basis_element TEXT NOT NULL,
		from_index    INTEGER NOT NULL,
		to_index      INTEGER NOT NULL,
		check_passed  INTEGER NOT NULL,
		note          TEXT,
		created_at    TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// #endregion helpers

// #region log-update-tests
func TestLogUpdate_Success(t *testing.T) {
	db := setupDB(t)

	entry := UpdateEntry{
		VersionID:    "v1",
		SpaceName:    "demo",
		BasisElement: "e2",
		FromIndex:    0,
		ToIndex:      1,
		CheckPassed:  true,
		Note:         `{"step_id":"s1"}`,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogUpdate(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM update_log").Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	var element string
	var toIndex, checkPassed int
	db.QueryRow("SELECT basis_element, to_index, check_passed FROM update_log").Scan(&element, &toIndex, &checkPassed)
	if element != "e2" {
		t.Errorf("expected basis_element 'e2', got %q", element)
	}
	if toIndex != 1 || checkPassed != 1 {
		t.Errorf("expected to_index 1 / check_passed 1, got %d / %d", toIndex, checkPassed)
	}
}

func TestLogUpdate_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)

	entry := UpdateEntry{
		VersionID:    "v2",
		SpaceName:    "demo",
		BasisElement: "e1",
	}

	before := time.Now().UTC()
	if err := LogUpdate(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM update_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogUpdate_EmptyNote(t *testing.T) {
	db := setupDB(t)

	entry := UpdateEntry{
		VersionID:    "v3",
		SpaceName:    "demo",
		BasisElement: "e1",
		CheckPassed:  true,
	}

	if err := LogUpdate(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var note sql.NullString
	db.QueryRow("SELECT note FROM update_log").Scan(&note)
	if note.Valid {
		t.Error("expected NULL note for empty string")
	}
}

func TestListUpdates_Order(t *testing.T) {
	db := setupDB(t)

	for i, sel := range []string{"e1", "e2", "e3"} {
		entry := UpdateEntry{
			VersionID:    "v1",
			SpaceName:    "demo",
			BasisElement: sel,
			FromIndex:    0,
			ToIndex:      1,
			CheckPassed:  true,
			CreatedAt:    time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
		}
		if err := LogUpdate(db, entry); err != nil {
			t.Fatalf("log update %d: %v", i, err)
		}
	}
	// A row from another space must not show up.
	LogUpdate(db, UpdateEntry{VersionID: "v9", SpaceName: "other", BasisElement: "x"})

	entries, err := ListUpdates(db, "demo", 2)
	if err != nil {
		t.Fatalf("ListUpdates: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected last 2 entries, got %d", len(entries))
	}
	if entries[0].BasisElement != "e2" || entries[1].BasisElement != "e3" {
		t.Fatalf("expected chronological order e2,e3, got %s,%s",
			entries[0].BasisElement, entries[1].BasisElement)
	}
}

func TestLogUpdate_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	if err := LogUpdate(db, UpdateEntry{VersionID: "v4", SpaceName: "demo", BasisElement: "e1"}); err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-update-tests

// #region null-if-empty-tests
func TestNullIfEmpty_Empty(t *testing.T) {
	if result := nullIfEmpty(""); result != nil {
		t.Errorf("expected nil for empty string, got %v", result)
	}
}

func TestNullIfEmpty_NonEmpty(t *testing.T) {
	if result := nullIfEmpty("hello"); result != "hello" {
		t.Errorf("expected 'hello', got %v", result)
	}
}

// #endregion null-if-empty-tests
