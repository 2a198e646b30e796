package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDataPath sets the path to the taxa file.
func OptDataPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Path", s) {
			c.Data.Path = s
		}
	}
}

// OptDataFormat sets the format of the taxa file.
// Valid values: "csv", "sfga".
func OptDataFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Data.Format", s) {
			c.Data.Format = s
		}
	}
}

// OptViewRootName sets the scientific name of the starting root.
func OptViewRootName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("View Root Name", s) {
			c.View.RootName = s
		}
	}
}

// OptViewBudget sets the approximate limit of visible nodes.
func OptViewBudget(i int) Option {
	return func(c *Config) {
		if isValidInt("View Budget", i) {
			c.View.Budget = i
		}
	}
}

// OptViewLabelLimit sets the number of visible nodes above which no
// labels are drawn.
func OptViewLabelLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("View Label Limit", i) {
			c.View.LabelLimit = i
		}
	}
}

// OptViewInnerLabelLimit sets the number of visible nodes above which only
// species get labels.
func OptViewInnerLabelLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("View Inner Label Limit", i) {
			c.View.InnerLabelLimit = i
		}
	}
}

// OptViewOuterRadius sets the radius of the outermost tier.
func OptViewOuterRadius(i int) Option {
	return func(c *Config) {
		if isValidInt("View Outer Radius", i) {
			c.View.OuterRadius = i
		}
	}
}

// OptViewWidth sets the width of the canvas.
func OptViewWidth(i int) Option {
	return func(c *Config) {
		if isValidInt("View Width", i) {
			c.View.Width = i
		}
	}
}

// OptViewHeight sets the height of the canvas.
func OptViewHeight(i int) Option {
	return func(c *Config) {
		if isValidInt("View Height", i) {
			c.View.Height = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for name parsing.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
