// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"math"
	"reflect"
	"testing"
)

func TestCorrelate(t *testing.T) {
	school := []Count{{1, 5}, {2, 2}, {3, 4}}
	mass := []Count{{2, 10}, {3, 1}, {4, 7}}
	pops := Populations{
		1: {1, "Alabama", 1000000},
		2: {2, "Alaska", 2000000},
		3: {3, "Nowhere", 500000},
		4: {4, "Arizona", 4000000},
	}

	rows, missing := Correlate(school, mass, pops, Inner)
	var keys []Key
	for _, r := range rows {
		keys = append(keys, r.State)
	}
	if !reflect.DeepEqual(keys, []Key{2, 3}) {
		t.Fatalf("inner join keys = %v, want [2 3]", keys)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v", missing)
	}
	want := CorrelationRow{
		State:            2,
		Name:             "Alaska",
		SchoolIncidents:  2,
		MassShootings:    10,
		Population:       2000000,
		SchoolPerMillion: 1,
		MassPerMillion:   5,
	}
	if rows[0] != want {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
	}

	// Under LeftWithDefault every school state stays, with zero
	// mass shootings where there is no match.
	rows, _ = Correlate(school, mass, pops, LeftWithDefault)
	if len(rows) != 3 || rows[0].State != 1 || rows[0].MassShootings != 0 || rows[0].MassPerMillion != 0 {
		t.Errorf("left join rows = %+v", rows)
	}

	// A state without a population reference is dropped.
	delete(pops, 3)
	rows, missing = Correlate(school, mass, pops, Inner)
	if len(rows) != 1 || !reflect.DeepEqual(missing, []Key{3}) {
		t.Errorf("without population: rows %+v, missing %v", rows, missing)
	}
}

func TestRegress(t *testing.T) {
	// y = 2 + 0.5x exactly.
	var rows []CorrelationRow
	for _, x := range []float64{1, 2, 4, 8} {
		rows = append(rows, CorrelationRow{MassPerMillion: x, SchoolPerMillion: 2 + 0.5*x})
	}
	f, ok := Regress(rows)
	if !ok {
		t.Fatal("Regress failed")
	}
	if math.Abs(f.Intercept-2) > 1e-9 || math.Abs(f.Slope-0.5) > 1e-9 || math.Abs(f.R-1) > 1e-9 {
		t.Errorf("Regress = %+v, want intercept 2, slope 0.5, r 1", f)
	}

	if _, ok := Regress(rows[:1]); ok {
		t.Errorf("Regress of one row succeeded")
	}
	flat := []CorrelationRow{{MassPerMillion: 1, SchoolPerMillion: 1}, {MassPerMillion: 1, SchoolPerMillion: 3}}
	if _, ok := Regress(flat); ok {
		t.Errorf("Regress with constant x succeeded")
	}
}
