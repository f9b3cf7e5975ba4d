package levels

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/vovakirdan/boxpush/internal/sokoban"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// YAMLCatalog represents the YAML structure of a catalog file.
type YAMLCatalog struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
type YAMLLevel struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Layout []string `yaml:"layout"`
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var yc YAMLCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvls := make([]Level, 0, len(yc.Levels))
	for i, yl := range yc.Levels {
		id := yl.ID
		if id == "" {
			id = fmt.Sprintf("level-%02d", i+1)
		}
		name := yl.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", i+1)
		}
		lvls = append(lvls, Level{
			ID:     id,
			Name:   name,
			Layout: sokoban.Layout(yl.Layout),
		})
	}

	return New(lvls)
}

// LoadFile reads and validates a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return c, nil
}

// Default returns the embedded catalog.
// It panics if the embedded data is invalid, which is a build defect.
func Default() *Catalog {
	c, err := Parse(defaultLevelsYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded catalog: %v", err))
	}
	return c
}

// Load returns the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
