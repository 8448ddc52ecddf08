package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sort policies for the standings and schedule tables.
const (
	SortByRecord = "record" // wins, then differential, then points-for
	SortByPoints = "points" // points-for only
)

// Config holds everything the run needs: which league to fetch, how to name
// the output, and where to put it. Values come from an optional YAML file,
// overridden by environment variables, on top of baked-in defaults.
type Config struct {
	LeagueID    string `yaml:"league_id"`
	TitlePrefix string `yaml:"title_prefix"`
	OutputDir   string `yaml:"output_dir"`
	SortPolicy  string `yaml:"sort_policy"`
	// SnapshotDir enables the raw JSON snapshot cache when non-empty.
	// Left empty, every run fetches fresh and writes nothing but the PDF.
	SnapshotDir string `yaml:"snapshot_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LeagueID:    "1180242943416172544",
		TitlePrefix: "NZFFFA Championship",
		OutputDir:   ".",
		SortPolicy:  SortByRecord,
	}
}

// Load reads path if it exists, then applies environment overrides.
// A missing file is fine; a malformed one is not.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	if v := os.Getenv("SLEEPER_LEAGUE_ID"); v != "" {
		cfg.LeagueID = v
	}
	if v := os.Getenv("RECAP_TITLE_PREFIX"); v != "" {
		cfg.TitlePrefix = v
	}
	if v := os.Getenv("RECAP_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("RECAP_SNAPSHOT_DIR"); v != "" {
		cfg.SnapshotDir = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot act on.
func (c Config) Validate() error {
	if c.LeagueID == "" {
		return fmt.Errorf("league_id is required")
	}
	switch c.SortPolicy {
	case SortByRecord, SortByPoints:
	default:
		return fmt.Errorf("invalid sort_policy: %q (want %q or %q)", c.SortPolicy, SortByRecord, SortByPoints)
	}
	return nil
}
