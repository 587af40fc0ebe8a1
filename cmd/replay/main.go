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
	dbPath := flag.String("db", "", "path to statespace.db (DB mode)")
	spaceName := flag.String("space", "demo", "space name (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/statespace.db [--space name]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *spaceName)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-mode

// loggedStep is a step reconstructed from the update_log table.
type loggedStep struct {
	Selector    string
	ToIndex     int
	CheckPassed bool
}

func runDBMode(dbPath, spaceName string) int {
	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer st.Close()

	initial, err := st.InitialVersion(spaceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "find initial version: %v\n", err)
		return 2
	}
	sp, err := initial.ToSpace()
	if err != nil {
		fmt.Fprintf(os.Stderr, "restore initial version: %v\n", err)
		return 2
	}

	entries, err := logging.ListUpdates(st.DB(), spaceName, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query update log: %v\n", err)
		return 2
	}
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "no logged updates for space %s\n", spaceName)
		return 2
	}

	logged := make([]loggedStep, len(entries))
	steps := make([]replay.Step, len(entries))
	for i, e := range entries {
		logged[i] = loggedStep{
			Selector:    e.BasisElement,
			ToIndex:     e.ToIndex,
			CheckPassed: e.CheckPassed,
		}
		stepID := fmt.Sprintf("step-%d", i+1)
		if e.Note != "" {
			var rec logging.StepRecord
			if err := json.Unmarshal([]byte(e.Note), &rec); err == nil && rec.StepID != "" {
				stepID = rec.StepID
			}
		}
		steps[i] = replay.Step{StepID: stepID, Selector: e.BasisElement}
	}

	results, summary := replay.Replay(sp, steps)
	return printDBComparison(results, summary, logged)
}

// printDBComparison checks each replayed step against the logged landing
// index and check outcome. Returns exit code 1 on any divergence.
func printDBComparison(results []replay.StepResult, summary replay.Summary, logged []loggedStep) int {
	fmt.Printf("%-12s| %-10s| %-10s| %-10s| %s\n", "Step", "Selector", "Logged", "Replayed", "Match")
	fmt.Printf("%-12s+%-11s+%-11s+%-11s+%s\n",
		"------------", "-----------", "-----------", "-----------", "------")

	matches := 0
	total := len(results)
	for i := 0; i < total; i++ {
		r := results[i]
		l := logged[i]
		match := "DIFF"
		if r.ToIndex == l.ToIndex && r.CheckPassed == l.CheckPassed {
			match = "OK"
			matches++
		}
		fmt.Printf("%-12s| %-10s| %-10d| %-10d| %s\n", r.StepID, r.Selector, l.ToIndex, r.ToIndex, match)
	}

	diverge := total - matches
	fmt.Printf("\nFinal: %s  check=%v\n", summary.FinalDisplay, summary.CheckPassed)
	fmt.Printf("Summary: %d total, %d match, %d diverge\n", total, matches, diverge)

	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion db-mode

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	sp, err := f.BuildSpace()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build space: %v\n", err)
		return 2
	}

	results, summary := replay.Replay(sp, f.ToSteps())

	fmt.Printf("%-12s| %-18s| %-18s| %s\n", "Step", "Expected", "Replayed", "Match")
	fmt.Printf("%-12s+%-19s+%-19s+%s\n",
		"------------", "-------------------", "-------------------", "------")

	matches := 0
	total := len(results)
	if len(f.ExpectedResults) < total {
		total = len(f.ExpectedResults)
	}

	for i := 0; i < total; i++ {
		r := results[i]
		e := f.ExpectedResults[i]
		exp := fmt.Sprintf("%s:%s", e.Action, e.Label)
		got := fmt.Sprintf("%s:%s", r.Action, r.ToLabel)
		match := "DIFF"
		if e.Action == r.Action && e.Label == r.ToLabel {
			match = "OK"
			matches++
		}
		fmt.Printf("%-12s| %-18s| %-18s| %s\n", r.StepID, exp, got, match)
	}

	diverge := total - matches
	if f.ExpectedDisplay != "" && summary.FinalDisplay != f.ExpectedDisplay {
		fmt.Printf("\nDisplay mismatch:\n  expected: %s\n  replayed: %s\n", f.ExpectedDisplay, summary.FinalDisplay)
		diverge++
	} else {
		fmt.Printf("\nFinal: %s\n", summary.FinalDisplay)
	}
	if summary.CheckPassed != f.ExpectedCheck {
		fmt.Printf("Check mismatch: expected %v, replayed %v\n", f.ExpectedCheck, summary.CheckPassed)
		diverge++
	}

	fmt.Printf("Summary: %d steps, %d match, %d diverge\n", total, matches, diverge)

	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion fixture-mode
