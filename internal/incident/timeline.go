// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"strings"
	"time"

	"github.com/aclements/go-moremath/stats"
)

// A Month is a calendar month, counted from January of year 0.
type Month int

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month(t.Year()*12 + int(t.Month()) - 1)
}

func (m Month) Year() int {
	return int(m) / 12
}

func (m Month) Month() time.Month {
	return time.Month(int(m)%12 + 1)
}

// Time returns midnight UTC on the first day of m.
func (m Month) Time() time.Time {
	return time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	return m.Time().Format("Jan 2006")
}

// A Window is an inclusive range of days. A zero From or To leaves
// that side unbounded.
type Window struct {
	From, To time.Time
}

// Contains reports whether t falls on a day in w.
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// Extreme marks a bucket whose count is the global minimum, maximum,
// or both.
type Extreme uint8

const (
	ExtremeMin Extreme = 1 << iota
	ExtremeMax
)

func (e Extreme) String() string {
	var parts []string
	if e&ExtremeMin != 0 {
		parts = append(parts, "min")
	}
	if e&ExtremeMax != 0 {
		parts = append(parts, "max")
	}
	if parts == nil {
		return "medium"
	}
	return strings.Join(parts, ",")
}

// TiePolicy says which buckets are tagged when several share the
// minimum or maximum count.
type TiePolicy int

const (
	// TagAll tags every bucket with the extreme count.
	TagAll TiePolicy = iota

	// FirstWins tags only the earliest such bucket.
	FirstWins
)

func (p TiePolicy) String() string {
	switch p {
	case TagAll:
		return "all"
	case FirstWins:
		return "first"
	}
	return "TiePolicy(?)"
}

// Bucket is the incident count of one month.
type Bucket struct {
	Month   Month
	Count   int
	Extreme Extreme
}

// Monthly counts dated incidents in w per calendar month. Months with
// no incidents have no bucket. Buckets are in month order and tagged
// by TagExtremes.
func Monthly(incs []Incident, w Window, ties TiePolicy) []Bucket {
	counts := GroupCount(incs, func(inc *Incident) (Key, bool) {
		if inc.Date.IsZero() || !w.Contains(inc.Date) {
			return 0, false
		}
		return ByMonth(inc)
	})
	buckets := make([]Bucket, len(counts))
	for i, c := range counts {
		buckets[i] = Bucket{Month: Month(c.Key), Count: c.Count}
	}
	TagExtremes(buckets, ties)
	return buckets
}

// TagExtremes sets the Extreme of each bucket by comparing its count to
// the minimum and maximum over all buckets.
func TagExtremes(buckets []Bucket, ties TiePolicy) {
	if len(buckets) == 0 {
		return
	}
	lo, hi := buckets[0].Count, buckets[0].Count
	for _, b := range buckets {
		if b.Count < lo {
			lo = b.Count
		}
		if b.Count > hi {
			hi = b.Count
		}
	}
	var sawLo, sawHi bool
	for i := range buckets {
		b := &buckets[i]
		b.Extreme = 0
		if b.Count == lo && !(sawLo && ties == FirstWins) {
			b.Extreme |= ExtremeMin
			sawLo = true
		}
		if b.Count == hi && !(sawHi && ties == FirstWins) {
			b.Extreme |= ExtremeMax
			sawHi = true
		}
	}
}

// MeanCount returns the mean bucket count, or 0 if there are no
// buckets.
func MeanCount(buckets []Bucket) float64 {
	if len(buckets) == 0 {
		return 0
	}
	xs := make([]float64, len(buckets))
	for i, b := range buckets {
		xs[i] = float64(b.Count)
	}
	return stats.Mean(xs)
}
