// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a dashboard run. Settings have
// built-in defaults that an optional YAML file can override.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shootdash/shootdash/internal/fips"
	"github.com/shootdash/shootdash/internal/incident"
)

const dateLayout = "2006-01-02"

// Config is the configuration of one dashboard run.
type Config struct {
	// Sources maps each source name to its file, relative to the
	// data directory.
	Sources map[string]string `yaml:"sources"`

	// Window is the inclusive date range of the monthly chart, as
	// YYYY-MM-DD strings.
	Window struct {
		From string `yaml:"from"`
		To   string `yaml:"to"`
	} `yaml:"window"`

	// Top is the number of states in the ranking chart.
	Top int `yaml:"top"`

	// Ties is "all" or "first"; see incident.TiePolicy.
	Ties string `yaml:"ties"`

	// StateMap lists states left off the state map.
	StateMap struct {
		Exclude []int `yaml:"exclude"`
	} `yaml:"state_map"`

	Corrections []incident.Correction `yaml:"corrections"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{
		Sources: map[string]string{
			incident.Shootings: "Q1_final.csv",
			incident.Counties:  "Q2_dataset.csv",
			incident.Schools:   "School-incidents-csv.csv",
			incident.Crimes:    "dataset-crimes-usa.csv",
		},
		Top:  15,
		Ties: "all",
		Corrections: []incident.Correction{
			{
				Source:     incident.Crimes,
				Op:         incident.OpAdd,
				StateCode:  50,
				State:      "Vermont",
				Population: 647464,
				Note:       "no mass shootings recorded in this source",
			},
		},
	}
	c.Window.From = "2019-01-01"
	c.Window.To = "2023-12-31"
	c.StateMap.Exclude = []int{11}
	return c
}

// Load reads the YAML file at path over the defaults. If path is "",
// Load returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses YAML data over the defaults and validates the result.
// Sources named in data replace their default file; lists in data
// replace the default lists.
func Parse(data []byte) (*Config, error) {
	c := Default()
	sources := c.Sources
	c.Sources = nil
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	for name, file := range c.Sources {
		sources[name] = file
	}
	c.Sources = sources
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks c for unknown sources, bad dates, and invalid
// corrections.
func (c *Config) Validate() error {
	for name, file := range c.Sources {
		if _, ok := incident.Schemas[name]; !ok {
			return fmt.Errorf("unknown source %q", name)
		}
		if file == "" {
			return fmt.Errorf("source %q has no file", name)
		}
	}
	for name := range incident.Schemas {
		if _, ok := c.Sources[name]; !ok {
			return fmt.Errorf("no file for source %q", name)
		}
	}
	w, err := c.TimeWindow()
	if err != nil {
		return err
	}
	if !w.From.IsZero() && !w.To.IsZero() && w.To.Before(w.From) {
		return fmt.Errorf("window ends %s before it starts %s", c.Window.To, c.Window.From)
	}
	if c.Top <= 0 {
		return fmt.Errorf("top must be positive, got %d", c.Top)
	}
	if _, err := c.TiePolicy(); err != nil {
		return err
	}
	for _, code := range c.StateMap.Exclude {
		if _, ok := fips.Lookup(fips.State(code)); !ok {
			return fmt.Errorf("state_map: unknown state code %d", code)
		}
	}
	for _, corr := range c.Corrections {
		if err := corr.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the file of source, joined to dir unless it is
// absolute.
func (c *Config) Path(dir, source string) string {
	file := c.Sources[source]
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// TimeWindow parses Window. An empty bound leaves that end of the
// window open.
func (c *Config) TimeWindow() (incident.Window, error) {
	from, err := parseBound(c.Window.From)
	if err != nil {
		return incident.Window{}, fmt.Errorf("window from: %w", err)
	}
	to, err := parseBound(c.Window.To)
	if err != nil {
		return incident.Window{}, fmt.Errorf("window to: %w", err)
	}
	return incident.Window{From: from, To: to}, nil
}

func parseBound(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

// TiePolicy parses Ties.
func (c *Config) TiePolicy() (incident.TiePolicy, error) {
	switch c.Ties {
	case "all":
		return incident.TagAll, nil
	case "first":
		return incident.FirstWins, nil
	}
	return 0, fmt.Errorf("ties must be \"all\" or \"first\", got %q", c.Ties)
}

// Excluded reports whether code is left off the state map.
func (c *Config) Excluded(code fips.State) bool {
	for _, x := range c.StateMap.Exclude {
		if fips.State(x) == code {
			return true
		}
	}
	return false
}
