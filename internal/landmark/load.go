package landmark

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDataset []byte

type dataset struct {
	Landmarks []Landmark `yaml:"landmarks"`
}

// Default returns a fresh copy of the embedded dataset.
func Default() (*Set, error) {
	return Parse(defaultDataset)
}

// Parse decodes a YAML dataset ("landmarks:" list) into a validated set.
func Parse(data []byte) (*Set, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode landmarks: %w", err)
	}

	return NewSet(ds.Landmarks)
}

// Load reads a dataset file. An empty path yields the embedded dataset.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}
