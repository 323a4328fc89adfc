// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"reflect"
	"testing"
)

var vermont = Correction{Source: Crimes, Op: OpAdd, StateCode: 50, Population: 647464}

func TestApplyCorrectionsAdd(t *testing.T) {
	incs := []Incident{
		{StateCode: 1, State: "Alabama", Population: 5000000},
		{StateCode: 1, State: "Alabama", Population: 5000000},
	}
	out, err := ApplyCorrections(Crimes, incs, []Correction{vermont})
	if err != nil {
		t.Fatal(err)
	}
	if len(incs) != 2 {
		t.Fatalf("input modified")
	}
	if len(out) != 3 {
		t.Fatalf("got %d rows, want 3", len(out))
	}
	added := out[2]
	if !added.Placeholder || added.State != "Vermont" || added.StateCode != 50 || added.Population != 647464 {
		t.Errorf("added row = %+v", added)
	}

	// The injected state is present with a zero count and its
	// population is known.
	counts := GroupCount(out, ByState)
	if want := []Count{{1, 2}, {50, 0}}; !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
	pops, err := PopulationsOf(out, ByState, StateName)
	if err != nil {
		t.Fatal(err)
	}
	if pops[50].Population != 647464 {
		t.Errorf("Vermont population = %d", pops[50].Population)
	}
	rows, missing := Rates(counts, pops, PerMillion)
	if len(missing) != 0 || rows[1].Rate != 0 {
		t.Errorf("rates = %+v, missing %v", rows, missing)
	}
}

func TestApplyCorrectionsOtherSource(t *testing.T) {
	incs := []Incident{{StateCode: 1}}
	out, err := ApplyCorrections(Schools, incs, []Correction{vermont})
	if err != nil || !reflect.DeepEqual(out, incs) {
		t.Errorf("got %v, %v", out, err)
	}
}

func TestApplyCorrectionsDrop(t *testing.T) {
	incs := []Incident{{StateCode: 11}, {StateCode: 1}, {StateCode: 11}}
	drop := Correction{Source: Shootings, Op: OpDrop, StateCode: 11}
	out, err := ApplyCorrections(Shootings, incs, []Correction{drop})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].StateCode != 1 {
		t.Errorf("got %v", out)
	}
	if incs[0].StateCode != 11 || incs[2].StateCode != 11 {
		t.Errorf("input modified: %v", incs)
	}
}

func TestCorrectionValidate(t *testing.T) {
	for _, c := range []Correction{
		{Source: "bogus", Op: OpAdd, StateCode: 50, Population: 1},
		{Source: Crimes, Op: OpAdd, StateCode: 3, Population: 1},
		{Source: Crimes, Op: OpAdd, StateCode: 50},
		{Source: Crimes, Op: "patch", StateCode: 50},
		{Source: Crimes, Op: OpDrop, State: "Atlantis"},
		{Source: Crimes, Op: OpDrop},
	} {
		if err := c.Validate(); err == nil {
			t.Errorf("%+v: want error", c)
		}
		if _, err := ApplyCorrections(c.Source, nil, []Correction{c}); err == nil {
			t.Errorf("ApplyCorrections(%+v): want error", c)
		}
	}
	if err := vermont.Validate(); err != nil {
		t.Errorf("vermont: %v", err)
	}
}

func TestApplyCorrectionsByName(t *testing.T) {
	incs := []Incident{{StateCode: 11}, {StateCode: 1}}
	got, err := ApplyCorrections(Schools, incs, []Correction{
		{Source: Schools, Op: OpDrop, State: " district of columbia"},
		{Source: Schools, Op: OpAdd, State: "Vermont", Population: 647464},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Incident{
		{StateCode: 1},
		{State: "Vermont", StateCode: 50, Population: 647464, Placeholder: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
