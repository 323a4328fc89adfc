// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"fmt"

	"github.com/shootdash/shootdash/internal/fips"
)

// Correction operations.
const (
	// OpAdd injects a placeholder row for a state, making the state
	// present with a zero count and a known population.
	OpAdd = "add"

	// OpDrop removes every row of a state from a source.
	OpDrop = "drop"
)

// A Correction is a manual fix applied to one source after it is
// loaded.
type Correction struct {
	Source     string `yaml:"source"`
	Op         string `yaml:"op"`
	StateCode  int    `yaml:"state_fips,omitempty"`
	State      string `yaml:"state,omitempty"`
	Population int64  `yaml:"population,omitempty"`
	Note       string `yaml:"note,omitempty"`
}

// Target returns the state c applies to. It is StateCode if set, and
// otherwise the state named by State.
func (c Correction) Target() (fips.StateInfo, error) {
	if c.StateCode == 0 {
		info, ok := fips.ByName(c.State)
		if !ok {
			return fips.StateInfo{}, fmt.Errorf("correction: unknown state %q", c.State)
		}
		return info, nil
	}
	info, ok := fips.Lookup(fips.State(c.StateCode))
	if !ok {
		return fips.StateInfo{}, fmt.Errorf("correction: unknown state code %d", c.StateCode)
	}
	return info, nil
}

// Validate checks that c names a known source, operation and state.
func (c Correction) Validate() error {
	if _, ok := Schemas[c.Source]; !ok {
		return fmt.Errorf("correction: unknown source %q", c.Source)
	}
	target, err := c.Target()
	if err != nil {
		return err
	}
	switch c.Op {
	case OpAdd:
		if c.Population <= 0 {
			return fmt.Errorf("correction: add %s to %s: population must be positive", target.Name, c.Source)
		}
	case OpDrop:
	default:
		return fmt.Errorf("correction: unknown op %q", c.Op)
	}
	return nil
}

// ApplyCorrections returns incs with every correction for source
// applied in order. incs is not modified.
func ApplyCorrections(source string, incs []Incident, cs []Correction) ([]Incident, error) {
	out := incs
	copied := false
	for _, c := range cs {
		if c.Source != source {
			continue
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !copied {
			out = append([]Incident(nil), incs...)
			copied = true
		}
		target, _ := c.Target()
		code := target.Code
		switch c.Op {
		case OpAdd:
			name := c.State
			if name == "" {
				name = target.Name
			}
			out = append(out, Incident{
				State:       name,
				StateCode:   code,
				Population:  c.Population,
				Placeholder: true,
			})
		case OpDrop:
			kept := out[:0]
			for _, inc := range out {
				if inc.StateCode != code {
					kept = append(kept, inc)
				}
			}
			out = kept
		}
	}
	return out, nil
}
