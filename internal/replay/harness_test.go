package replay

import (
	"testing"

	"github.com/danielpatrickdp/statespace/go-core/internal/space"
)

func demoSpace(t *testing.T) *space.CyclicEnumSpace {
	t.Helper()
	sp, err := space.NewCyclicEnum([]string{"e1", "e2", "e3"}, []string{"state0", "state1", "state2"})
	if err != nil {
		t.Fatalf("NewCyclicEnum: %v", err)
	}
	return sp
}

func TestReplay_AppliesSteps(t *testing.T) {
	sp := demoSpace(t)
	steps := []Step{
		{StepID: "s1", Selector: "e1"},
		{StepID: "s2", Selector: "e1"},
		{StepID: "s3", Selector: "e2"},
	}

	results, summary := Replay(sp, steps)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Action != ActionApply {
			t.Errorf("step %d: expected apply, got %s", i, r.Action)
		}
		if !r.CheckPassed {
			t.Errorf("step %d: expected check to pass", i)
		}
	}
	if results[1].FromLabel != "state1" || results[1].ToLabel != "state2" {
		t.Errorf("step s2: expected state1→state2, got %s→%s",
			results[1].FromLabel, results[1].ToLabel)
	}

	if summary.Applied != 3 || summary.Unknown != 0 {
		t.Fatalf("unexpected summary counts: %+v", summary)
	}
	if summary.FinalDisplay != "state2<e1> + state1<e2> + state0<e3>" {
		t.Fatalf("unexpected final display: %s", summary.FinalDisplay)
	}
	if !summary.CheckPassed {
		t.Fatal("expected final check to pass")
	}
	if summary.Resolution.Collapsed {
		t.Fatal("cyclic enum replay must not collapse")
	}
}

func TestReplay_UnknownSelectorSkipped(t *testing.T) {
	sp := demoSpace(t)
	steps := []Step{
		{StepID: "s1", Selector: "e1"},
		{StepID: "s2", Selector: "e9"},
		{StepID: "s3", Selector: "e1"},
	}

	results, summary := Replay(sp, steps)

	if results[1].Action != ActionUnknownElement {
		t.Fatalf("expected unknown_element, got %s", results[1].Action)
	}
	if results[1].CheckPassed != true {
		t.Fatal("a skipped step must leave the invariant intact")
	}
	// The unknown step must not consume an increment.
	if results[2].FromIndex != 1 || results[2].ToIndex != 2 {
		t.Fatalf("expected e1 to go 1→2, got %d→%d", results[2].FromIndex, results[2].ToIndex)
	}
	if summary.Applied != 2 || summary.Unknown != 1 {
		t.Fatalf("unexpected summary counts: %+v", summary)
	}
}

func TestReplay_WraparoundCycle(t *testing.T) {
	sp := demoSpace(t)
	var steps []Step
	for i := 0; i < 6; i++ { // two full cycles
		steps = append(steps, Step{StepID: "s", Selector: "e3"})
	}

	results, summary := Replay(sp, steps)

	if results[2].ToIndex != 0 {
		t.Fatalf("expected wraparound to 0 on third step, got %d", results[2].ToIndex)
	}
	if summary.FinalDisplay != "state0<e1> + state0<e2> + state0<e3>" {
		t.Fatalf("two full cycles must return to origin: %s", summary.FinalDisplay)
	}
}
