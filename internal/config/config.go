package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/statespace/go-core/internal/space"
)

// #region types

// SpaceDef defines one state space: its name, basis elements and the ordered
// enumeration labels of its cyclic domain.
type SpaceDef struct {
	Name     string   `yaml:"name"`
	Elements []string `yaml:"elements"`
	Labels   []string `yaml:"labels"`
}

// File is a space-definition file: the spaces sharing one database.
type File struct {
	Spaces []SpaceDef `yaml:"spaces"`
}

// #endregion types

// #region load

// Load reads and validates a YAML space-definition file. Domain parameters
// are validated up front so bootstrap fails before touching the database.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(f.Spaces) == 0 {
		return nil, fmt.Errorf("config %s: no spaces defined", path)
	}

	seen := make(map[string]struct{}, len(f.Spaces))
	for i, def := range f.Spaces {
		if def.Name == "" {
			return nil, fmt.Errorf("config %s: space %d has no name", path, i)
		}
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("config %s: duplicate space name %q", path, def.Name)
		}
		seen[def.Name] = struct{}{}
		if len(def.Elements) == 0 {
			return nil, fmt.Errorf("config %s: space %s has no basis elements", path, def.Name)
		}
		if _, err := space.NewEnum(def.Labels); err != nil {
			return nil, fmt.Errorf("config %s: space %s: %w", path, def.Name, err)
		}
	}
	return &f, nil
}

// Build constructs the state space this definition describes.
func (d SpaceDef) Build() (*space.CyclicEnumSpace, error) {
	return space.NewCyclicEnum(d.Elements, d.Labels)
}

// #endregion load
