// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/shootdash/shootdash/internal/incident"
)

func TestSuspectsTable(t *testing.T) {
	tab := table.Flatten(suspectsTable([]incident.YearTotals{{Year: 2019, SuspectsKilled: 1, SuspectsInjured: 4}, {Year: 2020, SuspectsKilled: 0, SuspectsInjured: 2}}))
	if got, want := tab.MustColumn(colCategory), []string{"killed", "injured", "killed", "injured"}; !reflect.DeepEqual(got, want) {
		t.Errorf("outcomes: want %v, got %v", want, got)
	}
	if got, want := tab.MustColumn(colSuspects), []int{1, 4, 0, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("suspects: want %v, got %v", want, got)
	}
}

func TestGridTable(t *testing.T) {
	tab := gridTable([]incident.RateRow{
		{Key: 2, Name: "Alaska", Rate: 1},
		{Key: 99, Name: "Nowhere", Rate: 2},
	})
	if tab.Len() != 1 {
		t.Fatalf("want unknown states dropped, got %d rows", tab.Len())
	}
	if got := tab.MustColumn(colAbbrev).([]string); got[0] != "AK" {
		t.Errorf("want AK, got %v", got)
	}
}

func TestFprintTables(t *testing.T) {
	var buf bytes.Buffer
	if err := fprintTables(&buf, testDashboard(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"# Top states by shootings per 100k",
		"# Suspects killed and injured",
		"Jefferson County",
		"Jan 2019",
		"mean mass shootings per month: 1.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
