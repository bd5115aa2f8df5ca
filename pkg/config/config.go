// Package config loads Wayfarer's YAML configuration. The file lives at
// ~/.wayfarer/config.yaml by default; a missing file is not an error and
// yields the built-in defaults, so the app runs out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/wayfarer/pkg/journey"
)

// Place is one stop on the simulated journey.
type Place struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
}

// JourneyConfig drives the scripted location provider.
type JourneyConfig struct {
	Places       []Place  `yaml:"places"`
	MoveInterval Duration `yaml:"move_interval"`
}

// SpeechConfig drives the scripted recognizer used in demo mode.
type SpeechConfig struct {
	Utterances      []string `yaml:"utterances"`
	SegmentInterval Duration `yaml:"segment_interval"`
}

// PhotosConfig configures the photo picker: where to look and which file
// names count as pickable images (glob patterns).
type PhotosConfig struct {
	Dir      string   `yaml:"dir"`
	Patterns []string `yaml:"patterns"`
}

// Config is the full application configuration.
type Config struct {
	Journey JourneyConfig `yaml:"journey"`
	Speech  SpeechConfig  `yaml:"speech"`
	Photos  PhotosConfig  `yaml:"photos"`

	// SynthesisDelay simulates the latency of narrative generation.
	SynthesisDelay Duration `yaml:"synthesis_delay"`
}

// DefaultPath returns the default config file location,
// ~/.wayfarer/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".wayfarer", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Journey: JourneyConfig{
			Places: []Place{
				{Name: "Tokyo", Lat: 35.6762, Lng: 139.6503},
				{Name: "Kyoto", Lat: 35.0116, Lng: 135.7681},
				{Name: "Osaka", Lat: 34.6937, Lng: 135.5023},
			},
			MoveInterval: Duration(45 * time.Second),
		},
		Speech: SpeechConfig{
			Utterances: []string{
				"The streets here smell like rain and grilled food",
				"I could stay in this garden all afternoon",
				"We almost missed the last train back",
			},
			SegmentInterval: Duration(350 * time.Millisecond),
		},
		Photos: PhotosConfig{
			Dir:      ".",
			Patterns: []string{"*.jpg", "*.jpeg", "*.png", "*.heic"},
		},
		SynthesisDelay: Duration(2 * time.Second),
	}
}

// Load reads the config file at path, filling omitted fields from the
// defaults. An empty path means DefaultPath; a missing file yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults backfills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := Default()
	if len(c.Journey.Places) == 0 {
		c.Journey.Places = def.Journey.Places
	}
	if c.Journey.MoveInterval <= 0 {
		c.Journey.MoveInterval = def.Journey.MoveInterval
	}
	if len(c.Speech.Utterances) == 0 {
		c.Speech.Utterances = def.Speech.Utterances
	}
	if c.Speech.SegmentInterval <= 0 {
		c.Speech.SegmentInterval = def.Speech.SegmentInterval
	}
	if c.Photos.Dir == "" {
		c.Photos.Dir = def.Photos.Dir
	}
	if len(c.Photos.Patterns) == 0 {
		c.Photos.Patterns = def.Photos.Patterns
	}
	if c.SynthesisDelay <= 0 {
		c.SynthesisDelay = def.SynthesisDelay
	}
}

func (c *Config) validate() error {
	for i, p := range c.Journey.Places {
		if p.Name == "" {
			return fmt.Errorf("journey.places[%d]: name is required", i)
		}
	}
	if _, err := NewPhotoMatcher(c.Photos.Patterns); err != nil {
		return err
	}
	return nil
}

// Waypoints converts the configured places into journey waypoints.
func (c *Config) Waypoints() []journey.Waypoint {
	wps := make([]journey.Waypoint, len(c.Journey.Places))
	for i, p := range c.Journey.Places {
		wps[i] = journey.Waypoint{Name: p.Name, Lat: p.Lat, Lng: p.Lng}
	}
	return wps
}
