// Package config handles configuration loading and shared data structures.
package config

import (
	"errors"
	"os"

	"github.com/vista6040/vistamap/internal/interaction"
	"github.com/vista6040/vistamap/internal/scene"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Origin            string            `yaml:"origin" json:"origin"`
	DestinationSuffix string            `yaml:"destination_suffix,omitempty" json:"destination_suffix,omitempty"`
	DirectionsURL     string            `yaml:"directions_url,omitempty" json:"-"`
	LandmarksFile     string            `yaml:"landmarks_file,omitempty" json:"-"`
	Connectors        []scene.Connector `yaml:"connectors,omitempty" json:"-"`
	Maps              []Map             `yaml:"maps" json:"maps"`
}

// Map is one rendering profile of the landmark map, e.g. the full
// location page or the compact home page preview.
type Map struct {
	Index       *int     `yaml:"index,omitempty" json:"index,omitempty"`
	ShowLegend  *bool    `yaml:"show_legend,omitempty" json:"-"`
	EnableModal *bool    `yaml:"enable_modal,omitempty" json:"-"`
	Name        string   `yaml:"name" json:"name"`
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Aliases     []string `yaml:"aliases,omitempty" json:"-"`
	Width       float64  `yaml:"width,omitempty" json:"width"`
	Height      float64  `yaml:"height,omitempty" json:"height"`
	Padding     float64  `yaml:"padding,omitempty" json:"padding"`
	Preview     bool     `yaml:"preview,omitempty" json:"preview,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
// A missing file falls back to Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML configuration. Omitted top-level fields keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Maps = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Maps) == 0 {
		cfg.Maps = Default().Maps
	}

	return cfg, nil
}

// Default is the configuration of the 6040 Vista site.
func Default() *Config {
	full, home := 0, 1
	return &Config{
		Origin:            "6040 Vista, Gitere, Northern Bypass, Nairobi",
		DestinationSuffix: "Nairobi, Kenya",
		DirectionsURL:     interaction.DefaultDirectionsURL,
		Connectors: []scene.Connector{
			{To: "northern-bypass"},
			{To: "westlands-gcm", Control: []float64{50, 30}},
			{To: "two-rivers", Control: []float64{-30, 20}},
		},
		Maps: []Map{
			{Index: &full, Name: "location", Title: "Location", Aliases: []string{"full"}},
			{Index: &home, Name: "home", Title: "Neighbourhood", Aliases: []string{"preview"}, Preview: true},
		},
	}
}

// Directions returns the outbound link builder for this site.
func (c *Config) Directions() interaction.Directions {
	return interaction.Directions{
		BaseURL: c.DirectionsURL,
		Origin:  c.Origin,
		Suffix:  c.DestinationSuffix,
	}
}

// SceneOptions resolves the profile into scene options. Legend and modal
// are on unless disabled explicitly; the canvas falls back to scene defaults.
func (c *Config) SceneOptions(m Map) scene.Options {
	return scene.Options{
		ID:          m.Name,
		Connectors:  c.Connectors,
		Width:       m.Width,
		Height:      m.Height,
		Padding:     m.Padding,
		Preview:     m.Preview,
		ShowLegend:  m.ShowLegend == nil || *m.ShowLegend,
		EnableModal: m.EnableModal == nil || *m.EnableModal,
	}.Normalize()
}
