// Package config provides configuration management for GNradial.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Data: path, format
//   - View: root_name, budget, label_limit, inner_label_limit,
//     outer_radius, width, height
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNRADIAL_ prefix with underscores for nesting:
//
//	GNRADIAL_DATA_PATH=~/data/chordata.csv
//	GNRADIAL_VIEW_BUDGET=1400
//	GNRADIAL_LOG_LEVEL=info
//	GNRADIAL_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNradial configuration.
type Config struct {
	// Data describes where taxa are loaded from.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	// View contains thresholds and sizes of the radial picture.
	View ViewConfig `mapstructure:"view" yaml:"view"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers used to parse names
	// while reading SFGA files. Default value is set according to the
	// number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DataConfig points to the taxa table.
type DataConfig struct {
	// Path to a CSV file or an SFGA SQLite file.
	Path string `mapstructure:"path" yaml:"path"`

	// Format is 'csv' or 'sfga'. Empty value means detection by the file
	// extension.
	Format string `mapstructure:"format" yaml:"format"`
}

// ViewConfig keeps settings of the radial tree drawing.
type ViewConfig struct {
	// RootName is the scientific name of the taxon shown on start.
	// If it is not in the data, the global root is used.
	RootName string `mapstructure:"root_name" yaml:"root_name"`

	// Budget is the approximate maximum number of visible nodes.
	// Whole rank tiers get hidden until the picture fits it.
	Budget int `mapstructure:"budget" yaml:"budget"`

	// LabelLimit hides all labels when the number of visible nodes
	// exceeds it.
	LabelLimit int `mapstructure:"label_limit" yaml:"label_limit"`

	// InnerLabelLimit hides labels of non-species nodes when the number
	// of visible nodes exceeds it.
	InnerLabelLimit int `mapstructure:"inner_label_limit" yaml:"inner_label_limit"`

	// OuterRadius is the radius of the most specific visible tier.
	OuterRadius int `mapstructure:"outer_radius" yaml:"outer_radius"`

	// Width of the SVG canvas.
	Width int `mapstructure:"width" yaml:"width"`

	// Height of the SVG canvas.
	Height int `mapstructure:"height" yaml:"height"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		View: ViewConfig{
			RootName:        "Chordata",
			Budget:          1400,
			LabelLimit:      400,
			InnerLabelLimit: 300,
			OuterRadius:     262,
			Width:           2900,
			Height:          900,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
