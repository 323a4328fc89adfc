// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

// JoinPolicy says what a join does with a left key that has no
// partner on the right.
type JoinPolicy int

const (
	// Inner drops unmatched left keys.
	Inner JoinPolicy = iota

	// LeftWithDefault keeps unmatched left keys and fills the right
	// side with a default value.
	LeftWithDefault
)

func (p JoinPolicy) String() string {
	switch p {
	case Inner:
		return "inner"
	case LeftWithDefault:
		return "left"
	}
	return "JoinPolicy(?)"
}

// Joined is one row of JoinCounts.
type Joined struct {
	Key         Key
	Left, Right int
}

// JoinCounts joins left and right on Key. Rows are in left order.
// Right keys absent from left are always dropped. Under
// LeftWithDefault, unmatched left rows get Right = def.
func JoinCounts(left, right []Count, policy JoinPolicy, def int) []Joined {
	rindex := make(map[Key]int, len(right))
	for _, c := range right {
		rindex[c.Key] = c.Count
	}
	var out []Joined
	for _, l := range left {
		r, ok := rindex[l.Key]
		if !ok {
			if policy != LeftWithDefault {
				continue
			}
			r = def
		}
		out = append(out, Joined{l.Key, l.Count, r})
	}
	return out
}

// LookupRates returns the rate row of each of keys, in keys order.
// Under Inner, keys without a rate are left out. Under
// LeftWithDefault, they get a row with only Key and Rate = def set.
func LookupRates(keys []Key, rates []RateRow, policy JoinPolicy, def float64) []RateRow {
	index := make(map[Key]RateRow, len(rates))
	for _, r := range rates {
		index[r.Key] = r
	}
	var out []RateRow
	for _, k := range keys {
		r, ok := index[k]
		if !ok {
			if policy != LeftWithDefault {
				continue
			}
			r = RateRow{Key: k, Rate: def}
		}
		out = append(out, r)
	}
	return out
}
