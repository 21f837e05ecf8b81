// Package config handles splattool configuration loading and management.
package config

import (
	"gonum.org/v1/plot/vg"

	"github.com/lgingerich/gsplat-viewer/pkg/splat"
)

// Config holds all tool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Loader  LoaderConfig  `yaml:"loader"`
	Report  ReportConfig  `yaml:"report"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Format  string `yaml:"format"` // "console" or "json"
}

// LoaderConfig tunes the splat field transform.
type LoaderConfig struct {
	Workers           int `yaml:"workers"`            // 0 = GOMAXPROCS
	ParallelThreshold int `yaml:"parallel_threshold"` // records
}

// ReportConfig holds settings for inspection output.
type ReportConfig struct {
	Bins      int     `yaml:"bins"`
	WidthIn   float64 `yaml:"width_in"`
	HeightIn  float64 `yaml:"height_in"`
	DumpLimit int     `yaml:"dump_limit"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Format:  "console",
		},
		Loader: LoaderConfig{
			Workers:           0,
			ParallelThreshold: splat.DefaultParallelThreshold,
		},
		Report: ReportConfig{
			Bins:      50,
			WidthIn:   6,
			HeightIn:  4,
			DumpLimit: 10,
		},
	}
}

// LoaderOptions converts the loader settings for splat.LoadWithOptions.
func (c *Config) LoaderOptions() splat.Options {
	return splat.Options{
		Workers:           c.Loader.Workers,
		ParallelThreshold: c.Loader.ParallelThreshold,
	}
}

// PlotSize returns the histogram canvas size.
func (r ReportConfig) PlotSize() (width, height vg.Length) {
	return vg.Length(r.WidthIn) * vg.Inch, vg.Length(r.HeightIn) * vg.Inch
}
