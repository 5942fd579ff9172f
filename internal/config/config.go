// Package config loads and validates the run options shared by
// cmd/vhdl-simplify and cmd/vhdl-rtsim: which VHDL standard revision a
// fixture design targets, whether the kernel's TRACE output is on, and
// how simulation time gets displayed.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// Config is the top-level configuration for the simplifier/kernel tools.
type Config struct {
	// Standard is the VHDL standard revision a fixture design targets:
	// "1993", "2002", "2008", "2019". It has no effect on the simplifier
	// itself (a single pass of rules covers all revisions in scope here)
	// and is not read by either command; it is only loaded, validated and
	// saved.
	Standard string `json:"standard,omitempty"`

	// Trace enables the kernel's TRACE logging (spec §4.10), gated
	// further by glog's own -v flag.
	Trace bool `json:"trace,omitempty"`

	// TimeDisplay accepts "auto" (FormatTime's coarsest-unit rule) or "fs"
	// (raw femtoseconds). Neither command reads it: simulation time is
	// always rendered with rt.FormatTime.
	TimeDisplay string `json:"timeDisplay,omitempty"`

	// Simplify holds options specific to the tree rewriter.
	Simplify SimplifyConfig `json:"simplify,omitempty"`
}

// SimplifyConfig contains simplifier-specific options.
type SimplifyConfig struct {
	// DumpResidual is loaded, validated and saved but not read:
	// vhdl-simplify always prints the residual tree via ir.Dump, and
	// vhdl-rtsim does not run the simplifier.
	DumpResidual bool `json:"dumpResidual,omitempty"`
}

// Default returns a sensible default configuration.
func Default() *Config {
	return &Config{
		Standard:    "2008",
		Trace:       false,
		TimeDisplay: "auto",
		Simplify: SimplifyConfig{
			DumpResidual: false,
		},
	}
}

// Load finds and loads the configuration file.
//
// Search order:
//  1. ./vhdl_sim.json (current working directory)
//  2. ./.vhdl_sim.json (current working directory)
//  3. <rootPath>/vhdl_sim.json (if different from cwd)
//  4. <rootPath>/.vhdl_sim.json (if different from cwd)
//  5. ~/.config/vhdl-sim-core/config.json
//
// Falls back to Default if no config file is found, and to Default (with
// a warning) if the file found is invalid.
func Load(rootPath string) *Config {
	cwd, _ := os.Getwd()

	searchPaths := []string{
		filepath.Join(cwd, "vhdl_sim.json"),
		filepath.Join(cwd, ".vhdl_sim.json"),
	}

	if info, err := os.Stat(rootPath); err == nil && info.IsDir() {
		if absRoot, err := filepath.Abs(rootPath); err == nil && absRoot != cwd {
			searchPaths = append(searchPaths,
				filepath.Join(rootPath, "vhdl_sim.json"),
				filepath.Join(rootPath, ".vhdl_sim.json"),
			)
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".config", "vhdl-sim-core", "config.json"))
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFile(path)
		if err != nil {
			glog.Warningf("Could not load config %s: %v (using defaults)", path, err)
			return Default()
		}
		return cfg
	}

	return Default()
}

// LoadFile loads and validates configuration from a specific file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Standard == "" {
		c.Standard = "2008"
	}
	if c.TimeDisplay == "" {
		c.TimeDisplay = "auto"
	}
}

// Save writes the configuration to a file as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
