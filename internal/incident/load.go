// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shootdash/shootdash/internal/fips"
)

// ParseError reports a malformed cell or header in a source table.
type ParseError struct {
	Source string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %q: %v", e.Source, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadStats summarizes one ReadCSV call.
type LoadStats struct {
	Rows int

	// Skipped counts rows whose key cell was empty.
	Skipped int

	// Undated counts rows whose date was missing or unparseable.
	Undated int
}

// dateLayouts are tried in order when parsing dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"January 2, 2006",
	"Jan 2, 2006",
	"1/2/2006",
	"01/02/2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LoadFile reads the table at path according to schema.
func LoadFile(path string, schema Schema) ([]Incident, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	defer f.Close()
	return ReadCSV(f, schema)
}

// ReadCSV reads a comma-separated table with a header row from r. Every
// required column of schema must be present in the header; other
// columns are ignored.
//
// Numeric cells that are empty read as zero. Malformed numbers and
// FIPS codes are errors. Missing or unparseable dates leave Date zero
// and are counted in the returned LoadStats.
func ReadCSV(r io.Reader, schema Schema) ([]Incident, LoadStats, error) {
	var stats LoadStats
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, stats, &ParseError{Source: schema.Source, Line: 1, Err: errors.New("empty table")}
	} else if err != nil {
		return nil, stats, &ParseError{Source: schema.Source, Line: 1, Err: err}
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.TrimSpace(name)] = i
	}

	// Resolve schema columns to record positions.
	type binding struct {
		col Column
		pos int
	}
	var binds []binding
	keyPos := -1
	for _, col := range schema.Columns {
		pos, ok := index[col.Name]
		if !ok {
			if col.Required {
				return nil, stats, &ParseError{Source: schema.Source, Line: 1, Column: col.Name, Err: errors.New("missing column")}
			}
			continue
		}
		binds = append(binds, binding{col, pos})
		if col.Field == schema.Key {
			keyPos = pos
		}
	}

	var out []Incident
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, &ParseError{Source: schema.Source, Err: err}
		}
		line, _ := cr.FieldPos(0)
		stats.Rows++

		if keyPos >= 0 && strings.TrimSpace(rec[keyPos]) == "" {
			stats.Skipped++
			continue
		}

		var inc Incident
		hasYear := false
		for _, b := range binds {
			cell := strings.TrimSpace(rec[b.pos])
			if err := setField(&inc, b.col.Field, cell); err != nil {
				return nil, stats, &ParseError{Source: schema.Source, Line: line, Column: b.col.Name, Err: err}
			}
			if b.col.Field == FieldYear && cell != "" {
				hasYear = true
			}
		}
		if inc.StateCode == 0 && inc.County != 0 {
			inc.StateCode = inc.County.State()
		}
		if inc.Date.IsZero() {
			stats.Undated++
		} else if !hasYear {
			inc.Year = inc.Date.Year()
		}
		out = append(out, inc)
	}
	return out, stats, nil
}

func setField(inc *Incident, f Field, cell string) error {
	var err error
	switch f {
	case FieldID:
		inc.ID = cell
	case FieldState:
		inc.State = cell
	case FieldCountyName:
		inc.CountyName = cell
	case FieldStateCode:
		if cell != "" {
			inc.StateCode, err = fips.ParseState(cell)
		}
	case FieldCounty:
		if cell != "" {
			inc.County, err = fips.ParseCounty(cell)
		}
	case FieldDate:
		inc.Date, _ = parseDate(cell)
	case FieldYear:
		inc.Year, err = atoi(cell)
	case FieldVictimsKilled:
		inc.VictimsKilled, err = atoi(cell)
	case FieldVictimsInjured:
		inc.VictimsInjured, err = atoi(cell)
	case FieldSuspectsKilled:
		inc.SuspectsKilled, err = atoi(cell)
	case FieldSuspectsInjured:
		inc.SuspectsInjured, err = atoi(cell)
	case FieldSuspectsArrested:
		inc.SuspectsArrested, err = atoi(cell)
	case FieldPopulation:
		var n int
		n, err = atoi(cell)
		inc.Population = int64(n)
	case FieldStateShootings:
		inc.StateShootings, err = atoi(cell)
	case FieldStateRate:
		if cell != "" {
			inc.StateRate, err = strconv.ParseFloat(cell, 64)
		}
	default:
		panic(fmt.Sprintf("unknown field %d", f))
	}
	return err
}

// atoi parses an integer count. Empty cells are zero and integral
// floats such as "3.0" are accepted.
func atoi(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}
