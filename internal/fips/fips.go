// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fips parses and relates U.S. Federal Information Processing
// Standards codes for states and counties.
//
// A county code is five decimal digits: the two-digit code of its
// state followed by a three-digit county number. Tabular sources
// commonly store these as integers, so a leading zero may be missing
// ("1001" is Autauga County, Alabama). The parent state of a county is
// always the county code divided by 1000.
package fips

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is wrapped by all parse errors returned by this
// package.
var ErrMalformed = errors.New("malformed FIPS code")

// MaxState is the largest assigned state-level code (U.S. Virgin
// Islands).
const MaxState = 78

// A State is a two-digit state FIPS code.
type State int

// A County is a five-digit county FIPS code.
type County int

// State returns the code of the state containing c.
func (c County) State() State {
	return State(c / 1000)
}

func (c County) String() string {
	return fmt.Sprintf("%05d", int(c))
}

func (s State) String() string {
	return fmt.Sprintf("%02d", int(s))
}

// Valid reports whether s is in the range of assigned state codes.
func (s State) Valid() bool {
	return s >= 1 && s <= MaxState
}

// Valid reports whether c has a valid state part and a non-zero
// county part.
func (c County) Valid() bool {
	return c.State().Valid() && c%1000 != 0
}

// ParseState parses a one- or two-digit state code.
func ParseState(s string) (State, error) {
	n, err := parseDigits(s, 2)
	if err != nil {
		return 0, fmt.Errorf("%w: state %q: %v", ErrMalformed, s, err)
	}
	st := State(n)
	if !st.Valid() {
		return 0, fmt.Errorf("%w: state %q: out of range", ErrMalformed, s)
	}
	return st, nil
}

// ParseCounty parses a county code of four or five digits. The
// four-digit form is a five-digit code whose leading zero was lost.
func ParseCounty(s string) (County, error) {
	n, err := parseDigits(s, 5)
	if err != nil {
		return 0, fmt.Errorf("%w: county %q: %v", ErrMalformed, s, err)
	}
	if len(strings.TrimSuffix(strings.TrimSpace(s), ".0")) < 4 {
		return 0, fmt.Errorf("%w: county %q: too short", ErrMalformed, s)
	}
	c := County(n)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: county %q: out of range", ErrMalformed, s)
	}
	return c, nil
}

// parseDigits parses s as an unsigned decimal number of at most max
// digits. A trailing ".0" is accepted, since numeric columns are often
// written as floats.
func parseDigits(s string, max int) (int, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".0")
	if s == "" {
		return 0, errors.New("empty")
	}
	if len(s) > max {
		return 0, errors.New("too long")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.New("non-digit")
		}
	}
	return strconv.Atoi(s)
}
