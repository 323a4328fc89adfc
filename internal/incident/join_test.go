// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"reflect"
	"testing"
)

func TestJoinCounts(t *testing.T) {
	left := []Count{{1, 10}, {2, 20}, {3, 30}}
	right := []Count{{2, 200}, {3, 300}, {4, 400}}

	got := JoinCounts(left, right, Inner, -1)
	want := []Joined{{2, 20, 200}, {3, 30, 300}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("inner: got %v, want %v", got, want)
	}

	got = JoinCounts(left, right, LeftWithDefault, 0)
	want = []Joined{{1, 10, 0}, {2, 20, 200}, {3, 30, 300}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("left: got %v, want %v", got, want)
	}

	if got := JoinCounts(nil, right, LeftWithDefault, 0); len(got) != 0 {
		t.Errorf("empty left: got %v", got)
	}
}

func TestLookupRates(t *testing.T) {
	rates := []RateRow{{Key: 6, Name: "California", Rate: 1.5}, {Key: 1, Name: "Alabama", Rate: 2}}
	keys := []Key{1, 2, 6}

	got := LookupRates(keys, rates, Inner, 0)
	want := []RateRow{rates[1], rates[0]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("inner: got %v, want %v", got, want)
	}

	got = LookupRates(keys, rates, LeftWithDefault, 0)
	want = []RateRow{rates[1], {Key: 2, Rate: 0}, rates[0]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("left: got %v, want %v", got, want)
	}
}

func TestJoinPolicyString(t *testing.T) {
	if Inner.String() != "inner" || LeftWithDefault.String() != "left" {
		t.Errorf("got %q, %q", Inner, LeftWithDefault)
	}
}
