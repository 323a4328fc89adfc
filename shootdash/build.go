// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/shootdash/shootdash/internal/config"
	"github.com/shootdash/shootdash/internal/fips"
	"github.com/shootdash/shootdash/internal/incident"
)

// dashboard holds every aggregate the charts are drawn from.
type dashboard struct {
	window incident.Window

	// top ranks states by shootings per 100k.
	top []incident.RateRow

	// counties is shootings per 100k residents of each county.
	counties []incident.RateRow

	// states is shootings per 100k for every state on the map, with
	// zero for states without data.
	states []incident.RateRow

	correlation []incident.CorrelationRow
	fit         incident.Fit
	fitOK       bool

	monthly []incident.Bucket
	mean    float64

	suspects []incident.YearTotals
}

// loadSources reads every source named in cfg from dir and applies
// cfg's corrections. Any failure is fatal to the run.
func loadSources(cfg *config.Config, dir string) (map[string][]incident.Incident, error) {
	names := make([]string, 0, len(incident.Schemas))
	for name := range incident.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	data := make(map[string][]incident.Incident)
	for _, name := range names {
		path := cfg.Path(dir, name)
		incs, stats, err := incident.LoadFile(path, incident.Schemas[name])
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		vlogf("%s: %d rows from %s (%d skipped, %d undated)", name, stats.Rows, path, stats.Skipped, stats.Undated)
		incs, err = incident.ApplyCorrections(name, incs, cfg.Corrections)
		if err != nil {
			return nil, err
		}
		data[name] = incs
	}
	return data, nil
}

// build computes the dashboard's aggregates from loaded sources.
func build(cfg *config.Config, data map[string][]incident.Incident) (*dashboard, error) {
	d := new(dashboard)
	var err error
	if d.window, err = cfg.TimeWindow(); err != nil {
		return nil, err
	}
	ties, err := cfg.TiePolicy()
	if err != nil {
		return nil, err
	}

	// State ranking and state map.
	shootings := data[incident.Shootings]
	facts, err := incident.StateFacts(shootings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", incident.Shootings, err)
	}
	rates := make([]incident.RateRow, len(facts))
	for i, f := range facts {
		rates[i] = f.RateRow()
	}
	d.top = incident.TopN(rates, cfg.Top)

	var mapKeys []incident.Key
	for _, s := range fips.States() {
		if !cfg.Excluded(s.Code) {
			mapKeys = append(mapKeys, incident.Key(s.Code))
		}
	}
	d.states = incident.LookupRates(mapKeys, rates, incident.LeftWithDefault, 0)
	for i := range d.states {
		if d.states[i].Name == "" {
			info, _ := fips.Lookup(fips.State(d.states[i].Key))
			d.states[i].Name = info.Name
		}
	}

	// County rates.
	counties := data[incident.Counties]
	countyPops, err := incident.PopulationsOf(counties, incident.ByCounty, incident.CountyName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", incident.Counties, err)
	}
	var missing []incident.Key
	d.counties, missing = incident.Rates(incident.GroupCount(counties, incident.ByCounty), countyPops, incident.Per100k)
	if len(missing) > 0 {
		vlogf("counties: %d counties without population left out", len(missing))
	}

	// School incidents against mass shootings.
	crimes := data[incident.Crimes]
	statePops, err := incident.PopulationsOf(crimes, incident.ByState, incident.StateName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", incident.Crimes, err)
	}
	school := incident.GroupCount(data[incident.Schools], incident.ByState)
	mass := incident.GroupCount(crimes, incident.ByState)
	d.correlation, missing = incident.Correlate(school, mass, statePops, incident.Inner)
	if len(missing) > 0 {
		vlogf("correlation: states without population left out: %v", missing)
	}
	d.fit, d.fitOK = incident.Regress(d.correlation)

	// Monthly series and yearly suspect totals.
	d.monthly = incident.Monthly(shootings, d.window, ties)
	d.mean = incident.MeanCount(d.monthly)
	d.suspects = incident.SuspectsByYear(counties)

	return d, nil
}

var verbose bool

func vlogf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}
