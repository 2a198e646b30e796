package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnradial/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnradial"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnradial"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnradial", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnradial", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.Data.Path)
	assert.Equal(t, "", cfg.Data.Format)

	assert.Equal(t, "Chordata", cfg.View.RootName)
	assert.Equal(t, 1400, cfg.View.Budget)
	assert.Equal(t, 400, cfg.View.LabelLimit)
	assert.Equal(t, 300, cfg.View.InnerLabelLimit)
	assert.Equal(t, 262, cfg.View.OuterRadius)
	assert.Equal(t, 2900, cfg.View.Width)
	assert.Equal(t, 900, cfg.View.Height)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
}

func TestOptionStrings(t *testing.T) {
	tests := []struct {
		name     string
		opt      config.Option
		get      func(*config.Config) string
		expected string
	}{
		{
			name:     "data path is trimmed",
			opt:      config.OptDataPath("  /data/taxa.csv "),
			get:      func(c *config.Config) string { return c.Data.Path },
			expected: "/data/taxa.csv",
		},
		{
			name:     "empty data path is ignored",
			opt:      config.OptDataPath("   "),
			get:      func(c *config.Config) string { return c.Data.Path },
			expected: "",
		},
		{
			name:     "data format lowercased",
			opt:      config.OptDataFormat("SFGA"),
			get:      func(c *config.Config) string { return c.Data.Format },
			expected: "sfga",
		},
		{
			name:     "unknown data format is ignored",
			opt:      config.OptDataFormat("xlsx"),
			get:      func(c *config.Config) string { return c.Data.Format },
			expected: "",
		},
		{
			name:     "root name",
			opt:      config.OptViewRootName(" Mammalia "),
			get:      func(c *config.Config) string { return c.View.RootName },
			expected: "Mammalia",
		},
		{
			name:     "empty root name keeps default",
			opt:      config.OptViewRootName(""),
			get:      func(c *config.Config) string { return c.View.RootName },
			expected: "Chordata",
		},
		{
			name:     "log level",
			opt:      config.OptLogLevel("DEBUG"),
			get:      func(c *config.Config) string { return c.Log.Level },
			expected: "debug",
		},
		{
			name:     "unknown log level is ignored",
			opt:      config.OptLogLevel("trace"),
			get:      func(c *config.Config) string { return c.Log.Level },
			expected: "info",
		},
		{
			name:     "log format",
			opt:      config.OptLogFormat("tint"),
			get:      func(c *config.Config) string { return c.Log.Format },
			expected: "tint",
		},
		{
			name:     "unknown log format is ignored",
			opt:      config.OptLogFormat("xml"),
			get:      func(c *config.Config) string { return c.Log.Format },
			expected: "json",
		},
		{
			name:     "log destination",
			opt:      config.OptLogDestination("stderr"),
			get:      func(c *config.Config) string { return c.Log.Destination },
			expected: "stderr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.expected, tt.get(cfg))
		})
	}
}

func TestOptionInts(t *testing.T) {
	tests := []struct {
		name string
		opt  func(int) config.Option
		get  func(*config.Config) int
		def  int
	}{
		{"budget", config.OptViewBudget,
			func(c *config.Config) int { return c.View.Budget }, 1400},
		{"label limit", config.OptViewLabelLimit,
			func(c *config.Config) int { return c.View.LabelLimit }, 400},
		{"inner label limit", config.OptViewInnerLabelLimit,
			func(c *config.Config) int { return c.View.InnerLabelLimit }, 300},
		{"outer radius", config.OptViewOuterRadius,
			func(c *config.Config) int { return c.View.OuterRadius }, 262},
		{"width", config.OptViewWidth,
			func(c *config.Config) int { return c.View.Width }, 2900},
		{"height", config.OptViewHeight,
			func(c *config.Config) int { return c.View.Height }, 900},
		{"jobs", config.OptJobsNumber,
			func(c *config.Config) int { return c.JobsNumber }, runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt(42)})
			assert.Equal(t, 42, tt.get(cfg))

			cfg = config.New()
			cfg.Update([]config.Option{tt.opt(0), tt.opt(-7)})
			assert.Equal(t, tt.def, tt.get(cfg))
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptDataPath("taxa.csv"),
			config.OptViewBudget(200),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		})

		assert.Equal(t, "taxa.csv", cfg.Data.Path)
		assert.Equal(t, 200, cfg.View.Budget)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		// untouched fields keep defaults
		assert.Equal(t, 400, cfg.View.LabelLimit)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptViewRootName("Aves"),
			config.OptViewRootName("Mammalia"),
		})
		assert.Equal(t, "Mammalia", cfg.View.RootName)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("round trip of persistent fields", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptDataPath("/data/col.sqlite"),
			config.OptDataFormat("sfga"),
			config.OptViewRootName("Mammalia"),
			config.OptViewBudget(700),
			config.OptViewLabelLimit(120),
			config.OptViewInnerLabelLimit(60),
			config.OptViewOuterRadius(300),
			config.OptViewWidth(1000),
			config.OptViewHeight(800),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(3),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Data, newCfg.Data)
		assert.Equal(t, original.View, newCfg.View)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptHomeDir("/custom/home")})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())
		assert.Equal(t, "", newCfg.HomeDir)
	})
}
