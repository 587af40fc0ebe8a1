package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielpatrickdp/statespace/go-core/internal/space"
)

// #region types

// DomainDef is a stored enumeration definition, reusable across spaces.
type DomainDef struct {
	ID        int
	Name      string
	Labels    []string
	CreatedAt time.Time
}

// #endregion types

// #region catalog

// DomainCatalog manages named enumeration definitions in SQLite.
type DomainCatalog struct {
	db *sql.DB
}

// NewDomainCatalog creates the enum_domains table if needed and returns a
// catalog over the shared database handle.
func NewDomainCatalog(db *sql.DB) (*DomainCatalog, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS enum_domains (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		labels_json TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create enum_domains table: %w", err)
	}
	return &DomainCatalog{db: db}, nil
}

// Add stores a new domain definition. Skips duplicates by name
// (case-insensitive). The label list is validated through space.NewEnum so
// the catalog never holds an unusable domain.
func (c *DomainCatalog) Add(name string, labels []string) error {
	if _, err := space.NewEnum(labels); err != nil {
		return fmt.Errorf("domain %s: %w", name, err)
	}

	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM enum_domains WHERE LOWER(name) = LOWER(?)", name).Scan(&count)
	if err != nil {
		return fmt.Errorf("check duplicate domain: %w", err)
	}
	if count > 0 {
		return nil
	}

	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return fmt.Errorf("marshal labels: %w", err)
	}
	_, err = c.db.Exec(
		"INSERT INTO enum_domains (name, labels_json, created_at) VALUES (?, ?, ?)",
		name, string(labelsJSON), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert domain: %w", err)
	}
	return nil
}

// Get returns the definition with the given name.
func (c *DomainCatalog) Get(name string) (DomainDef, error) {
	var d DomainDef
	var labelsJSON, ts string
	err := c.db.QueryRow(
		"SELECT id, name, labels_json, created_at FROM enum_domains WHERE LOWER(name) = LOWER(?)", name,
	).Scan(&d.ID, &d.Name, &labelsJSON, &ts)
	if err != nil {
		return DomainDef{}, fmt.Errorf("get domain %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(labelsJSON), &d.Labels); err != nil {
		return DomainDef{}, fmt.Errorf("unmarshal labels: %w", err)
	}
	d.CreatedAt, _ = time.Parse(time.RFC3339, ts)
	return d, nil
}

// List returns all stored definitions in insertion order.
func (c *DomainCatalog) List() ([]DomainDef, error) {
	rows, err := c.db.Query("SELECT id, name, labels_json, created_at FROM enum_domains ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	var defs []DomainDef
	for rows.Next() {
		var d DomainDef
		var labelsJSON, ts string
		if err := rows.Scan(&d.ID, &d.Name, &labelsJSON, &ts); err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		if err := json.Unmarshal([]byte(labelsJSON), &d.Labels); err != nil {
			return nil, fmt.Errorf("unmarshal labels: %w", err)
		}
		d.CreatedAt, _ = time.Parse(time.RFC3339, ts)
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

// #endregion catalog
