// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import "sort"

// YearTotals sums suspect outcomes over one incident year.
type YearTotals struct {
	Year            int
	SuspectsKilled  int
	SuspectsInjured int
}

// SuspectsByYear totals suspects killed and injured per incident
// year, in year order. Incidents without a year are left out.
func SuspectsByYear(incs []Incident) []YearTotals {
	byYear := make(map[int]*YearTotals)
	for i := range incs {
		inc := &incs[i]
		if inc.Year == 0 || inc.Placeholder {
			continue
		}
		t := byYear[inc.Year]
		if t == nil {
			t = &YearTotals{Year: inc.Year}
			byYear[inc.Year] = t
		}
		t.SuspectsKilled += inc.SuspectsKilled
		t.SuspectsInjured += inc.SuspectsInjured
	}
	out := make([]YearTotals, 0, len(byYear))
	for _, t := range byYear {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
