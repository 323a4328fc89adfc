// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fips

import "strings"

// StateInfo describes a state-level unit. Col and Row place the state
// on a tile grid map, with row 0 at the top.
type StateInfo struct {
	Code   State
	Name   string
	Abbrev string
	Col    int
	Row    int
}

// GridRows is the number of rows in the tile grid.
const GridRows = 8

var states = []StateInfo{
	{1, "Alabama", "AL", 6, 6},
	{2, "Alaska", "AK", 0, 0},
	{4, "Arizona", "AZ", 1, 5},
	{5, "Arkansas", "AR", 4, 5},
	{6, "California", "CA", 0, 4},
	{8, "Colorado", "CO", 2, 4},
	{9, "Connecticut", "CT", 9, 3},
	{10, "Delaware", "DE", 9, 4},
	{11, "District of Columbia", "DC", 8, 5},
	{12, "Florida", "FL", 8, 7},
	{13, "Georgia", "GA", 7, 6},
	{15, "Hawaii", "HI", 0, 7},
	{16, "Idaho", "ID", 1, 2},
	{17, "Illinois", "IL", 5, 2},
	{18, "Indiana", "IN", 5, 3},
	{19, "Iowa", "IA", 4, 3},
	{20, "Kansas", "KS", 3, 5},
	{21, "Kentucky", "KY", 5, 4},
	{22, "Louisiana", "LA", 4, 6},
	{23, "Maine", "ME", 10, 0},
	{24, "Maryland", "MD", 8, 4},
	{25, "Massachusetts", "MA", 9, 2},
	{26, "Michigan", "MI", 6, 2},
	{27, "Minnesota", "MN", 4, 2},
	{28, "Mississippi", "MS", 5, 6},
	{29, "Missouri", "MO", 4, 4},
	{30, "Montana", "MT", 2, 2},
	{31, "Nebraska", "NE", 3, 4},
	{32, "Nevada", "NV", 1, 3},
	{33, "New Hampshire", "NH", 10, 1},
	{34, "New Jersey", "NJ", 8, 3},
	{35, "New Mexico", "NM", 2, 5},
	{36, "New York", "NY", 8, 2},
	{37, "North Carolina", "NC", 6, 5},
	{38, "North Dakota", "ND", 3, 2},
	{39, "Ohio", "OH", 6, 3},
	{40, "Oklahoma", "OK", 3, 6},
	{41, "Oregon", "OR", 0, 3},
	{42, "Pennsylvania", "PA", 7, 3},
	{44, "Rhode Island", "RI", 10, 3},
	{45, "South Carolina", "SC", 7, 5},
	{46, "South Dakota", "SD", 3, 3},
	{47, "Tennessee", "TN", 5, 5},
	{48, "Texas", "TX", 3, 7},
	{49, "Utah", "UT", 1, 4},
	{50, "Vermont", "VT", 9, 1},
	{51, "Virginia", "VA", 7, 4},
	{53, "Washington", "WA", 0, 2},
	{54, "West Virginia", "WV", 6, 4},
	{55, "Wisconsin", "WI", 5, 1},
	{56, "Wyoming", "WY", 2, 3},
}

var byCode = func() map[State]int {
	m := make(map[State]int, len(states))
	for i, s := range states {
		m[s.Code] = i
	}
	return m
}()

// States returns the 50 states and the District of Columbia in code
// order. The caller must not modify the result.
func States() []StateInfo {
	return states
}

// Lookup returns the reference entry for code.
func Lookup(code State) (StateInfo, bool) {
	i, ok := byCode[code]
	if !ok {
		return StateInfo{}, false
	}
	return states[i], true
}

// ByName returns the reference entry for a state name, ignoring case
// and surrounding space.
func ByName(name string) (StateInfo, bool) {
	name = strings.TrimSpace(name)
	for _, s := range states {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return StateInfo{}, false
}
