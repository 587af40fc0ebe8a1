package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/statespace/go-core/internal/logging"
	"github.com/danielpatrickdp/statespace/go-core/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to statespace.db")
	spaceName := flag.String("space", "demo", "space name")
	last := flag.Int("last", 20, "show N most recent versions")
	version := flag.String("version", "", "show single version detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/statespace.db [--space name] [--last N] [--version id] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *version != "" {
		err = runDetailMode(st, *version, *jsonOut)
	} else {
		err = runListMode(st, *spaceName, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	VersionID string `json:"version_id"`
	ParentID  string `json:"parent_id,omitempty"`
	Check     bool   `json:"check"`
	Display   string `json:"display"`
	CreatedAt string `json:"created_at"`
}

func runListMode(st *store.Store, spaceName string, last int, jsonOut bool) error {
	versions, err := st.ListVersions(spaceName, last)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		return fmt.Errorf("no versions found for space %s", spaceName)
	}

	// Build rows (store returns DESC, reverse for chronological)
	rows := make([]listRow, len(versions))
	for i, v := range versions {
		sp, err := v.ToSpace()
		if err != nil {
			return fmt.Errorf("restore %s: %w", v.VersionID, err)
		}
		rows[len(versions)-1-i] = listRow{
			VersionID: v.VersionID,
			ParentID:  v.ParentID,
			Check:     sp.Check(),
			Display:   sp.String(),
			CreatedAt: v.CreatedAt.Format(time.RFC3339),
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%-38s| %-6s| %s\n", "Version", "Check", "Superposition")
	fmt.Printf("%-38s+%-7s+%s\n", "--------------------------------------", "-------", "--------------")
	for _, r := range rows {
		fmt.Printf("%-38s| %-6v| %s\n", r.VersionID, r.Check, r.Display)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOut struct {
	VersionID string          `json:"version_id"`
	ParentID  string          `json:"parent_id,omitempty"`
	SpaceName string          `json:"space_name"`
	Labels    []string        `json:"labels"`
	Display   string          `json:"display"`
	Check     bool            `json:"check"`
	Elements  []detailElement `json:"elements"`
	Updates   []detailUpdate  `json:"updates,omitempty"`
	CreatedAt string          `json:"created_at"`
}

type detailElement struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
	Label string `json:"label"`
	Valid bool   `json:"valid"`
}

type detailUpdate struct {
	BasisElement string `json:"basis_element"`
	FromIndex    int    `json:"from_index"`
	ToIndex      int    `json:"to_index"`
	CheckPassed  bool   `json:"check_passed"`
	CreatedAt    string `json:"created_at"`
}

func runDetailMode(st *store.Store, versionID string, jsonOut bool) error {
	v, err := st.GetVersion(versionID)
	if err != nil {
		return err
	}
	sp, err := v.ToSpace()
	if err != nil {
		return fmt.Errorf("restore %s: %w", v.VersionID, err)
	}
	rep := sp.Audit()

	entries, err := logging.ListUpdates(st.DB(), v.SpaceName, 20)
	if err != nil {
		return err
	}

	out := detailOut{
		VersionID: v.VersionID,
		ParentID:  v.ParentID,
		SpaceName: v.SpaceName,
		Labels:    v.Labels,
		Display:   sp.String(),
		Check:     rep.Passed,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
	for _, e := range rep.Elements {
		out.Elements = append(out.Elements, detailElement{
			Name:  e.Name,
			Index: e.Index,
			Label: e.Label,
			Valid: e.Valid,
		})
	}
	for _, e := range entries {
		out.Updates = append(out.Updates, detailUpdate{
			BasisElement: e.BasisElement,
			FromIndex:    e.FromIndex,
			ToIndex:      e.ToIndex,
			CheckPassed:  e.CheckPassed,
			CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Version:  %s\n", out.VersionID)
	if out.ParentID != "" {
		fmt.Printf("Parent:   %s\n", out.ParentID)
	}
	fmt.Printf("Space:    %s\n", out.SpaceName)
	fmt.Printf("Labels:   %v\n", out.Labels)
	fmt.Printf("Display:  %s\n", out.Display)
	fmt.Printf("Check:    %v\n", out.Check)
	fmt.Println("Elements:")
	for _, e := range out.Elements {
		fmt.Printf("  %-12s index=%-4d label=%-12s valid=%v\n", e.Name, e.Index, e.Label, e.Valid)
	}
	if len(out.Updates) > 0 {
		fmt.Println("Recent updates:")
		for _, u := range out.Updates {
			fmt.Printf("  %-12s %d -> %d  check=%v  %s\n",
				u.BasisElement, u.FromIndex, u.ToIndex, u.CheckPassed, u.CreatedAt)
		}
	}
	return nil
}

// #endregion detail-mode
