// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/shootdash/shootdash/internal/incident"
)

func TestTopPlotZeroRate(t *testing.T) {
	p := topPlot([]incident.RateRow{
		{Key: 2, Name: "Alaska", Rate: 0.5},
		{Key: 50, Name: "Vermont", Rate: 0},
	})
	heads := table.Flatten(p.Data())
	if heads.Len() != 2 {
		t.Fatalf("want a point for each state, got %d", heads.Len())
	}
	got := map[string]string{}
	states := heads.MustColumn(colState).([]string)
	for i, l := range heads.MustColumn("label").([]string) {
		got[states[i]] = l
	}
	want := map[string]string{"Alaska": "0.50", "Vermont": "0.00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}
