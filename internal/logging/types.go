package logging

import "time"

// #region update-entry
// UpdateEntry is a single row in the update_log table: which basis element
// advanced, from which index to which, and whether the invariant check
// passed afterwards.
type UpdateEntry struct {
	VersionID    string
	SpaceName    string
	BasisElement string
	FromIndex    int
	ToIndex      int
	CheckPassed  bool
	Note         string
	CreatedAt    time.Time
}
// #endregion update-entry

// #region step-record
// StepRecord captures one update as serialized into update_log.note for
// deterministic replay and fixture export.
type StepRecord struct {
	StepID   string `json:"step_id"`
	Selector string `json:"selector"`

	FromIndex int    `json:"from_index"`
	ToIndex   int    `json:"to_index"`
	FromLabel string `json:"from_label"`
	ToLabel   string `json:"to_label"`

	CheckPassed bool `json:"check_passed"`
}
// #endregion step-record
