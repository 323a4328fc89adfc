// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package incident loads firearm-violence incident tables and
// aggregates them by geographic and temporal keys.
//
// Every table is read once and never modified. Aggregations return
// fresh slices sorted by key, so their output does not depend on the
// order of the input rows.
package incident

import (
	"time"

	"github.com/shootdash/shootdash/internal/fips"
)

// Incident is one reported event from any source. Fields a source does
// not provide are left zero.
type Incident struct {
	// ID is the source's incident identifier, if any.
	ID string

	// State is the state name as written by the source.
	State string

	// StateCode is the state FIPS code. If the source only gives a
	// county code, StateCode is derived from it.
	StateCode fips.State

	// County and CountyName identify the county, if the source
	// gives one.
	County     fips.County
	CountyName string

	// Date is the incident date. It is the zero Time if the source
	// has no date or the date could not be parsed.
	Date time.Time

	// Year is the incident year. If the source has no year column
	// it is taken from Date.
	Year int

	VictimsKilled    int
	VictimsInjured   int
	SuspectsKilled   int
	SuspectsInjured  int
	SuspectsArrested int

	// Population is the population of the unit the source attaches
	// to this row: the state for state-level sources and the county
	// for county-level sources.
	Population int64

	// StateShootings and StateRate are the source's own per-state
	// shooting count and rate per 100k residents.
	StateShootings int
	StateRate      float64

	// Placeholder is set on rows injected by a Correction. A
	// placeholder makes its unit present in group counts without
	// counting as an incident.
	Placeholder bool
}

// A Key identifies a group: a county or state FIPS code, a Month, or
// a year, depending on the KeyFunc that produced it.
type Key int

// Count is one row of a group count.
type Count struct {
	Key   Key
	Count int
}
