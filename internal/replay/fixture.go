package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/statespace/go-core/internal/space"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string            `json:"description"`
	Space           FixtureSpace      `json:"space"`
	Steps           []FixtureStep     `json:"steps"`
	ExpectedResults []FixtureExpected `json:"expected_results"`
	ExpectedDisplay string            `json:"expected_display"`
	ExpectedCheck   bool              `json:"expected_check"`
}

// FixtureSpace is the JSON-serializable space definition.
type FixtureSpace struct {
	Name     string   `json:"name"`
	Elements []string `json:"elements"`
	Labels   []string `json:"labels"`
}

// FixtureStep mirrors replay.Step with JSON tags.
type FixtureStep struct {
	StepID   string `json:"step_id"`
	Selector string `json:"selector"`
}

// FixtureExpected captures the expected action and resulting label per step.
type FixtureExpected struct {
	StepID string `json:"step_id"`
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// BuildSpace constructs the fixture's starting state space.
func (f *Fixture) BuildSpace() (*space.CyclicEnumSpace, error) {
	return space.NewCyclicEnum(f.Space.Elements, f.Space.Labels)
}

// ToSteps converts the fixture steps to domain Steps.
func (f *Fixture) ToSteps() []Step {
	steps := make([]Step, len(f.Steps))
	for i, s := range f.Steps {
		steps[i] = Step{StepID: s.StepID, Selector: s.Selector}
	}
	return steps
}

// #endregion fixture-loader
