package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spaces.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
spaces:
  - name: demo
    elements: [e1, e2, e3]
    labels: [state0, state1, state2]
  - name: toggle
    elements: [x]
    labels: ["off", "on"]
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Spaces) != 2 {
		t.Fatalf("expected 2 spaces, got %d", len(f.Spaces))
	}

	sp, err := f.Spaces[0].Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := sp.String(); got != "state0<e1> + state0<e2> + state0<e3>" {
		t.Fatalf("unexpected initial display: %s", got)
	}
}

func TestLoad_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no spaces",
			content: "spaces: []\n",
			wantErr: "no spaces defined",
		},
		{
			name: "missing name",
			content: `
spaces:
  - elements: [a]
    labels: [s0]
`,
			wantErr: "has no name",
		},
		{
			name: "duplicate name",
			content: `
spaces:
  - name: demo
    elements: [a]
    labels: [s0]
  - name: demo
    elements: [b]
    labels: [s0]
`,
			wantErr: "duplicate space name",
		},
		{
			name: "no elements",
			content: `
spaces:
  - name: demo
    labels: [s0]
`,
			wantErr: "no basis elements",
		},
		{
			name: "empty labels",
			content: `
spaces:
  - name: demo
    elements: [a]
    labels: []
`,
			wantErr: "invalid domain",
		},
		{
			name: "duplicate labels",
			content: `
spaces:
  - name: demo
    elements: [a]
    labels: [s0, s0]
`,
			wantErr: "invalid domain",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
