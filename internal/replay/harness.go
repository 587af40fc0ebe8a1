package replay

import (
	"github.com/danielpatrickdp/statespace/go-core/internal/space"
)

// #region types
// Step is one recorded update against a named basis element.
type Step struct {
	StepID   string
	Selector string
}

// Actions a replayed step can take.
const (
	ActionApply          = "apply"
	ActionUnknownElement = "unknown_element"
)

// StepResult captures the outcome of replaying one step.
type StepResult struct {
	StepID   string
	Selector string
	Action   string

	// Index transition, only meaningful for ActionApply.
	FromIndex int
	ToIndex   int
	FromLabel string
	ToLabel   string

	// Invariant check after the step.
	CheckPassed bool
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps   int
	Applied      int
	Unknown      int
	FinalDisplay string
	CheckPassed  bool
	Resolution   space.Resolution
}
// #endregion types

// #region replay
// Replay applies the recorded steps to sp in order, mutating it in place.
// Unknown selectors are recorded and skipped; a rejected step leaves every
// scalar untouched, so divergence from a recording is visible per step.
func Replay(sp *space.CyclicEnumSpace, steps []Step) ([]StepResult, Summary) {
	results := make([]StepResult, 0, len(steps))
	summary := Summary{TotalSteps: len(steps)}

	for _, step := range steps {
		res := StepResult{StepID: step.StepID, Selector: step.Selector}

		from, ok := sp.Index(step.Selector)
		if !ok {
			res.Action = ActionUnknownElement
			res.CheckPassed = sp.Check()
			summary.Unknown++
			results = append(results, res)
			continue
		}

		// Index succeeded, so Update can only fail the same lookup; treat a
		// failure the same way to keep the result exhaustive.
		if err := sp.Update(step.Selector); err != nil {
			res.Action = ActionUnknownElement
			res.CheckPassed = sp.Check()
			summary.Unknown++
			results = append(results, res)
			continue
		}

		to, _ := sp.Index(step.Selector)
		res.Action = ActionApply
		res.FromIndex = from
		res.FromLabel = sp.Enum().Label(from)
		res.ToIndex = to
		res.ToLabel = sp.Enum().Label(to)
		res.CheckPassed = sp.Check()
		summary.Applied++
		results = append(results, res)
	}

	summary.FinalDisplay = sp.String()
	summary.CheckPassed = sp.Check()
	summary.Resolution = sp.Resolve()
	return results, summary
}
// #endregion replay
