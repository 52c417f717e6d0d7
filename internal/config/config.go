// Package config provides configuration loading and validation for the studymatch CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WeightOverrides optionally replaces the default factor weights. When set,
// all five weights must be present and sum to 1.0; partial overrides are
// rejected so a typo cannot silently skew the ranking.
type WeightOverrides struct {
	Subjects     *float64 `json:"subjects,omitempty"`
	Timezone     *float64 `json:"timezone,omitempty"`
	SkillLevel   *float64 `json:"skill_level,omitempty"`
	Availability *float64 `json:"availability,omitempty"`
	StudyStyle   *float64 `json:"study_style,omitempty"`
}

// Config represents the studymatch configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Ranking
	Limit    int              `json:"limit,omitempty"`     // Maximum candidates returned per ranking
	MinScore int              `json:"min_score,omitempty"` // Minimum total score to include a candidate
	Weights  *WeightOverrides `json:"weights,omitempty"`   // Alternate factor weight profile

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}

	if c.Weights != nil {
		return c.Weights.validate()
	}
	return nil
}

func (w *WeightOverrides) validate() error {
	fields := map[string]*float64{
		"subjects":     w.Subjects,
		"timezone":     w.Timezone,
		"skill_level":  w.SkillLevel,
		"availability": w.Availability,
		"study_style":  w.StudyStyle,
	}

	sum := 0.0
	for name, value := range fields {
		if value == nil {
			return fmt.Errorf("config error: weights override must set all factors, missing '%s'", name)
		}
		if *value < 0 {
			return fmt.Errorf("config error: weight '%s' must be non-negative", name)
		}
		sum += *value
	}

	// Tolerate float representation noise around 1.0.
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("config error: weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
