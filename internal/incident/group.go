// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"fmt"
	"sort"
)

// A KeyFunc returns the group key of an incident, or false to leave
// the incident out of the grouping.
type KeyFunc func(*Incident) (Key, bool)

// ByCounty groups by county code.
func ByCounty(inc *Incident) (Key, bool) {
	return Key(inc.County), inc.County != 0
}

// ByState groups by state code.
func ByState(inc *Incident) (Key, bool) {
	return Key(inc.StateCode), inc.StateCode != 0
}

// ByYear groups by incident year.
func ByYear(inc *Incident) (Key, bool) {
	return Key(inc.Year), inc.Year != 0
}

// ByMonth groups by calendar month. Undated incidents are left out.
func ByMonth(inc *Incident) (Key, bool) {
	if inc.Date.IsZero() {
		return 0, false
	}
	return Key(MonthOf(inc.Date)), true
}

// GroupCount counts incidents per key. The result has one row for
// every distinct key, sorted by key. Placeholder incidents make their
// key present without adding to its count.
func GroupCount(incs []Incident, key KeyFunc) []Count {
	counts := make(map[Key]int)
	for i := range incs {
		k, ok := key(&incs[i])
		if !ok {
			continue
		}
		n := counts[k]
		if !incs[i].Placeholder {
			n++
		}
		counts[k] = n
	}
	out := make([]Count, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{k, n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Population is the population reference for one unit.
type Population struct {
	Key        Key
	Name       string
	Population int64
}

// Populations indexes population references by key.
type Populations map[Key]Population

// PopulationsOf collects the population of every unit in incs. name
// gives the display name of an incident's unit and may be nil. Rows
// with a non-positive population are ignored. It is an error for two
// rows to give different populations for the same unit.
func PopulationsOf(incs []Incident, key KeyFunc, name func(*Incident) string) (Populations, error) {
	pops := make(Populations)
	for i := range incs {
		inc := &incs[i]
		k, ok := key(inc)
		if !ok || inc.Population <= 0 {
			continue
		}
		p, ok := pops[k]
		if ok {
			if p.Population != inc.Population {
				return nil, fmt.Errorf("unit %d has conflicting populations %d and %d", k, p.Population, inc.Population)
			}
			if p.Name != "" || name == nil {
				continue
			}
		}
		p.Key, p.Population = k, inc.Population
		if name != nil {
			p.Name = name(inc)
		}
		pops[k] = p
	}
	return pops, nil
}

// StateName and CountyName name an incident's state and county for
// PopulationsOf.
func StateName(inc *Incident) string  { return inc.State }
func CountyName(inc *Incident) string { return inc.CountyName }

// A Scale is the population denominator of a rate.
type Scale float64

const (
	Per100k    Scale = 100000
	PerMillion Scale = 1000000
)

// Rate returns count / population * scale.
func (s Scale) Rate(count int, population int64) float64 {
	return float64(count) * float64(s) / float64(population)
}

// RateRow is a group count normalized by population.
type RateRow struct {
	Key        Key
	Name       string
	Count      int
	Population int64
	Rate       float64
}

// Rates computes the rate of every count whose key has a population
// reference. Counts without one are returned in missing instead of
// being given a rate.
func Rates(counts []Count, pops Populations, scale Scale) (rows []RateRow, missing []Key) {
	for _, c := range counts {
		p, ok := pops[c.Key]
		if !ok {
			missing = append(missing, c.Key)
			continue
		}
		rows = append(rows, RateRow{
			Key:        c.Key,
			Name:       p.Name,
			Count:      c.Count,
			Population: p.Population,
			Rate:       scale.Rate(c.Count, p.Population),
		})
	}
	return rows, missing
}

// TopN returns the n rows with the highest Rate, highest first. Rows
// with equal rates keep their input order. rows is not modified.
func TopN(rows []RateRow, n int) []RateRow {
	out := append([]RateRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rate > out[j].Rate })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// StateFact is the per-state summary a source repeats on each of its
// rows.
type StateFact struct {
	State      Key
	Name       string
	Population int64
	Shootings  int
	Rate       float64
}

// RateRow returns f as a RateRow keyed by state.
func (f StateFact) RateRow() RateRow {
	return RateRow{Key: f.State, Name: f.Name, Count: f.Shootings, Population: f.Population, Rate: f.Rate}
}

// StateFacts returns the distinct per-state facts of incs, one row
// per state sorted by state code. It is an error for rows of the same
// state to disagree.
func StateFacts(incs []Incident) ([]StateFact, error) {
	facts := make(map[Key]StateFact)
	for i := range incs {
		inc := &incs[i]
		k, ok := ByState(inc)
		if !ok || inc.Placeholder {
			continue
		}
		f := StateFact{k, inc.State, inc.Population, inc.StateShootings, inc.StateRate}
		if old, ok := facts[k]; ok {
			if old != f {
				return nil, fmt.Errorf("state %d has conflicting facts %+v and %+v", k, old, f)
			}
			continue
		}
		facts[k] = f
	}
	out := make([]StateFact, 0, len(facts))
	for _, f := range facts {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })
	return out, nil
}
