package catalog

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func setupCatalog(t *testing.T) *DomainCatalog {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	c, err := NewDomainCatalog(db)
	if err != nil {
		t.Fatalf("NewDomainCatalog: %v", err)
	}
	return c
}

func TestAddAndGet(t *testing.T) {
	c := setupCatalog(t)

	if err := c.Add("traffic-light", []string{"red", "green", "yellow"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	d, err := c.Get("traffic-light")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(d.Labels) != 3 || d.Labels[0] != "red" {
		t.Fatalf("unexpected labels: %v", d.Labels)
	}

	// Lookup is case-insensitive, like the duplicate check.
	if _, err := c.Get("Traffic-Light"); err != nil {
		t.Fatalf("case-insensitive Get: %v", err)
	}
}

func TestAddSkipsDuplicates(t *testing.T) {
	c := setupCatalog(t)

	if err := c.Add("phase", []string{"a", "b"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Same name with different labels is silently skipped, not replaced.
	if err := c.Add("Phase", []string{"x", "y", "z"}); err != nil {
		t.Fatalf("Add duplicate: %v", err)
	}

	defs, err := c.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if len(defs[0].Labels) != 2 {
		t.Fatalf("duplicate add must not replace labels: %v", defs[0].Labels)
	}
}

func TestAddRejectsInvalidDomain(t *testing.T) {
	c := setupCatalog(t)

	if err := c.Add("empty", nil); err == nil {
		t.Fatal("expected error for empty label list")
	}
	if err := c.Add("dup", []string{"a", "a"}); err == nil {
		t.Fatal("expected error for duplicate labels")
	}

	defs, _ := c.List()
	if len(defs) != 0 {
		t.Fatalf("invalid domains must not be stored, got %d", len(defs))
	}
}

func TestGetMissing(t *testing.T) {
	c := setupCatalog(t)
	if _, err := c.Get("nope"); err == nil {
		t.Fatal("expected error for missing domain")
	}
}
