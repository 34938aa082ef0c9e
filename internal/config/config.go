// Package config holds runtime settings for the portal CLI, layered in
// increasing precedence: built-in defaults, then a JSON file, then
// command-line flags.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: location of the SQLite store backing all persistence.
//   - QuizDuration: total time allowed per quiz attempt.
type Config struct {
	DatabasePath string
	QuizDuration time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "caprep.db"
	c.QuizDuration = 10 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
