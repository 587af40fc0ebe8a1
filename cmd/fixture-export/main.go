package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/statespace/go-core/internal/logging"
	"github.com/danielpatrickdp/statespace/go-core/internal/replay"
	"github.com/danielpatrickdp/statespace/go-core/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to statespace.db")
	spaceName := flag.String("space", "demo", "space name")
	last := flag.Int("last", 0, "number of most recent updates to export (0 = all)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--space name] [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *spaceName, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region extract

func run(dbPath, spaceName string, last int, outPath string) error {
	st, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	initial, err := st.InitialVersion(spaceName)
	if err != nil {
		return fmt.Errorf("find initial version: %w", err)
	}

	entries, err := logging.ListUpdates(st.DB(), spaceName, last)
	if err != nil {
		return fmt.Errorf("query update log: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no logged updates for space %s", spaceName)
	}

	fmt.Printf("Found %d logged updates\n", len(entries))

	fixture, err := buildFixture(initial, entries)
	if err != nil {
		return err
	}

	if err := replay.SaveFixture(outPath, fixture); err != nil {
		return err
	}
	fmt.Printf("Wrote fixture to %s (%d steps)\n", outPath, len(fixture.Steps))
	return nil
}

// #endregion extract

// #region build

func buildFixture(initial store.SpaceRecord, entries []logging.UpdateEntry) (*replay.Fixture, error) {
	steps := make([]replay.FixtureStep, len(entries))
	for i, e := range entries {
		stepID := fmt.Sprintf("step-%d", i+1)
		if e.Note != "" {
			var rec logging.StepRecord
			if err := json.Unmarshal([]byte(e.Note), &rec); err == nil && rec.StepID != "" {
				stepID = rec.StepID
			}
		}
		steps[i] = replay.FixtureStep{StepID: stepID, Selector: e.BasisElement}
	}

	fixture := &replay.Fixture{
		Description: fmt.Sprintf("Session export: %d updates for space %s", len(entries), initial.SpaceName),
		Space: replay.FixtureSpace{
			Name:     initial.SpaceName,
			Elements: initial.Elements,
			Labels:   initial.Labels,
		},
		Steps: steps,
	}

	// Replay from the initial version to derive the expected results.
	sp, err := fixture.BuildSpace()
	if err != nil {
		return nil, fmt.Errorf("build space: %w", err)
	}
	results, summary := replay.Replay(sp, fixture.ToSteps())

	expected := make([]replay.FixtureExpected, len(results))
	for i, r := range results {
		expected[i] = replay.FixtureExpected{
			StepID: r.StepID,
			Action: r.Action,
			Label:  r.ToLabel,
		}
	}
	fixture.ExpectedResults = expected
	fixture.ExpectedDisplay = summary.FinalDisplay
	fixture.ExpectedCheck = summary.CheckPassed

	return fixture, nil
}

// #endregion build
