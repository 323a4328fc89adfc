// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"reflect"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dated(days ...time.Time) []Incident {
	incs := make([]Incident, len(days))
	for i, d := range days {
		incs[i] = Incident{Date: d, Year: d.Year()}
	}
	return incs
}

func TestMonthly(t *testing.T) {
	incs := dated(day(2019, 1, 1), day(2019, 1, 15), day(2019, 2, 1))
	incs = append(incs, Incident{}) // undated
	w := Window{day(2019, 1, 1), day(2023, 12, 31)}

	got := Monthly(incs, w, TagAll)
	jan, feb := MonthOf(day(2019, 1, 1)), MonthOf(day(2019, 2, 1))
	want := []Bucket{
		{jan, 2, ExtremeMax},
		{feb, 1, ExtremeMin},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMonthlyWindow(t *testing.T) {
	incs := dated(
		day(2018, 12, 31),
		day(2019, 1, 1),
		time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC),
		day(2024, 1, 1),
	)
	w := Window{day(2019, 1, 1), day(2023, 12, 31)}
	got := Monthly(incs, w, TagAll)
	if len(got) != 2 || got[0].Month.String() != "Jan 2019" || got[1].Month.String() != "Dec 2023" {
		t.Errorf("got %v", got)
	}
	if all := Monthly(incs, Window{}, TagAll); len(all) != 4 {
		t.Errorf("unbounded window: got %d buckets, want 4", len(all))
	}
}

func TestTagExtremes(t *testing.T) {
	counts := []int{3, 1, 5, 1, 5, 2}
	mk := func() []Bucket {
		b := make([]Bucket, len(counts))
		for i, c := range counts {
			b[i] = Bucket{Month: Month(i), Count: c}
		}
		return b
	}
	tags := func(b []Bucket) []Extreme {
		var out []Extreme
		for _, x := range b {
			out = append(out, x.Extreme)
		}
		return out
	}

	b := mk()
	TagExtremes(b, TagAll)
	want := []Extreme{0, ExtremeMin, ExtremeMax, ExtremeMin, ExtremeMax, 0}
	if got := tags(b); !reflect.DeepEqual(got, want) {
		t.Errorf("TagAll: got %v, want %v", got, want)
	}

	b = mk()
	TagExtremes(b, FirstWins)
	want = []Extreme{0, ExtremeMin, ExtremeMax, 0, 0, 0}
	if got := tags(b); !reflect.DeepEqual(got, want) {
		t.Errorf("FirstWins: got %v, want %v", got, want)
	}

	// A single bucket is both the minimum and the maximum.
	one := []Bucket{{Count: 4}}
	TagExtremes(one, FirstWins)
	if one[0].Extreme != ExtremeMin|ExtremeMax || one[0].Extreme.String() != "min,max" {
		t.Errorf("single bucket tagged %v", one[0].Extreme)
	}
}

func TestMonth(t *testing.T) {
	m := MonthOf(time.Date(2020, 2, 29, 13, 0, 0, 0, time.UTC))
	if m.Year() != 2020 || m.Month() != time.February || m.String() != "Feb 2020" {
		t.Errorf("MonthOf = %d (%v)", m, m)
	}
	if next := m + 1; next.String() != "Mar 2020" {
		t.Errorf("m+1 = %v", next)
	}
	if dec := MonthOf(day(2019, 12, 1)); dec+1 != MonthOf(day(2020, 1, 1)) {
		t.Errorf("months not contiguous across years")
	}
}

func TestMeanCount(t *testing.T) {
	if got := MeanCount(nil); got != 0 {
		t.Errorf("MeanCount(nil) = %v", got)
	}
	b := []Bucket{{Count: 1}, {Count: 2}, {Count: 6}}
	if got := MeanCount(b); got != 3 {
		t.Errorf("MeanCount = %v, want 3", got)
	}
}

func TestExtremeString(t *testing.T) {
	for e, want := range map[Extreme]string{0: "medium", ExtremeMin: "min", ExtremeMax: "max"} {
		if e.String() != want {
			t.Errorf("%d.String() = %q, want %q", e, e.String(), want)
		}
	}
}
