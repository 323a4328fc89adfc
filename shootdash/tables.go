// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/shootdash/shootdash/internal/fips"
	"github.com/shootdash/shootdash/internal/incident"
)

// Column names shared by the tables and the plots drawn from them.
const (
	colState    = "state"
	colAbbrev   = "abbrev"
	colRank     = "rank"
	colCount    = "shootings"
	colPop      = "population"
	colRate     = "shootings per 100k"
	colCounty   = "county"
	colCol      = "column"
	colRow      = "row"
	colSchool   = "school incidents per million"
	colMass     = "mass shootings per million"
	colMonth    = "month"
	colMonthly  = "mass shootings"
	colExtreme  = "extreme"
	colYear     = "year"
	colCategory = "outcome"
	colSuspects = "suspects"
)

func abbrev(s fips.State) string {
	if info, ok := fips.Lookup(s); ok {
		return info.Abbrev
	}
	return s.String()
}

// rankTable returns rows as a table with one row per state, rank 1
// first.
func rankTable(rows []incident.RateRow) *table.Table {
	var (
		rank  = make([]int, len(rows))
		names = make([]string, len(rows))
		count = make([]int, len(rows))
		pop   = make([]int64, len(rows))
		rate  = make([]float64, len(rows))
	)
	for i, r := range rows {
		rank[i] = i + 1
		names[i] = r.Name
		count[i] = r.Count
		pop[i] = r.Population
		rate[i] = r.Rate
	}
	return new(table.Builder).Add(colRank, rank).Add(colState, names).Add(colCount, count).Add(colPop, pop).Add(colRate, rate).Done()
}

// countyTable returns county rates with the abbreviation of each
// county's state.
func countyTable(rows []incident.RateRow) *table.Table {
	var (
		state  = make([]string, len(rows))
		county = make([]string, len(rows))
		count  = make([]int, len(rows))
		pop    = make([]int64, len(rows))
		rate   = make([]float64, len(rows))
	)
	for i, r := range rows {
		state[i] = abbrev(fips.County(r.Key).State())
		county[i] = r.Name
		count[i] = r.Count
		pop[i] = r.Population
		rate[i] = r.Rate
	}
	return new(table.Builder).Add(colAbbrev, state).Add(colCounty, county).Add(colCount, count).Add(colPop, pop).Add(colRate, rate).Done()
}

// gridTable places state rates on the tile grid. Rows are flipped so
// row 0 of the grid is drawn at the top.
func gridTable(rows []incident.RateRow) *table.Table {
	var (
		names = make([]string, 0, len(rows))
		abbrs = make([]string, 0, len(rows))
		cols  = make([]int, 0, len(rows))
		grid  = make([]int, 0, len(rows))
		rate  = make([]float64, 0, len(rows))
	)
	for _, r := range rows {
		info, ok := fips.Lookup(fips.State(r.Key))
		if !ok {
			continue
		}
		names = append(names, r.Name)
		abbrs = append(abbrs, info.Abbrev)
		cols = append(cols, info.Col)
		grid = append(grid, fips.GridRows-1-info.Row)
		rate = append(rate, r.Rate)
	}
	return new(table.Builder).Add(colState, names).Add(colAbbrev, abbrs).Add(colCol, cols).Add(colRow, grid).Add(colRate, rate).Done()
}

func correlationTable(rows []incident.CorrelationRow) *table.Table {
	var (
		names  = make([]string, len(rows))
		school = make([]float64, len(rows))
		mass   = make([]float64, len(rows))
		pop    = make([]float64, len(rows))
	)
	for i, r := range rows {
		names[i] = r.Name
		school[i] = r.SchoolPerMillion
		mass[i] = r.MassPerMillion
		pop[i] = float64(r.Population)
	}
	return new(table.Builder).Add(colState, names).Add(colMass, mass).Add(colSchool, school).Add(colPop, pop).Done()
}

func monthlyTable(buckets []incident.Bucket) *table.Table {
	var (
		months  = make([]incident.Month, len(buckets))
		counts  = make([]int, len(buckets))
		extreme = make([]string, len(buckets))
	)
	for i, b := range buckets {
		months[i] = b.Month
		counts[i] = b.Count
		extreme[i] = b.Extreme.String()
	}
	return new(table.Builder).Add(colMonth, months).Add(colMonthly, counts).Add(colExtreme, extreme).Done()
}

// suspectsTable returns yearly suspect totals in long form, one row
// per year and outcome.
func suspectsTable(totals []incident.YearTotals) table.Grouping {
	var (
		years   = make([]int, len(totals))
		killed  = make([]int, len(totals))
		injured = make([]int, len(totals))
	)
	for i, t := range totals {
		years[i] = t.Year
		killed[i] = t.SuspectsKilled
		injured[i] = t.SuspectsInjured
	}
	wide := new(table.Builder).Add(colYear, years).Add("killed", killed).Add("injured", injured).Done()
	return table.Unpivot(wide, colCategory, colSuspects, "killed", "injured")
}

// fprintTables writes every aggregate of d to w as text tables.
func fprintTables(w io.Writer, d *dashboard) error {
	tabs := []struct {
		title string
		g     table.Grouping
	}{
		{"Top states by shootings per 100k", rankTable(d.top)},
		{"State map", gridTable(d.states)},
		{"Shootings per 100k by county", countyTable(d.counties)},
		{"School incidents and mass shootings", correlationTable(d.correlation)},
		{"Mass shootings per month", monthlyTable(d.monthly)},
		{"Suspects killed and injured", table.SortBy(suspectsTable(d.suspects), colYear)},
	}
	for i, t := range tabs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s\n", t.title)
		table.Fprint(w, t.g)
	}
	if d.fitOK {
		fmt.Fprintf(w, "\nschool = %.4g + %.4g * mass (r = %.3f)\n", d.fit.Intercept, d.fit.Slope, d.fit.R)
	}
	_, err := fmt.Fprintf(w, "mean mass shootings per month: %.2f\n", d.mean)
	return err
}
