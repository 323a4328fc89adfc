// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

import (
	"math"

	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
)

// CorrelationRow pairs the school incident and mass shooting counts
// of one state.
type CorrelationRow struct {
	State            Key
	Name             string
	SchoolIncidents  int
	MassShootings    int
	Population       int64
	SchoolPerMillion float64
	MassPerMillion   float64
}

// Correlate joins per-state school incident counts with per-state
// mass shooting counts under policy, then attaches each state's
// population and name from pops. States without a population reference
// cannot be given rates and are returned in missing.
func Correlate(school, mass []Count, pops Populations, policy JoinPolicy) (rows []CorrelationRow, missing []Key) {
	for _, j := range JoinCounts(school, mass, policy, 0) {
		p, ok := pops[j.Key]
		if !ok {
			missing = append(missing, j.Key)
			continue
		}
		rows = append(rows, CorrelationRow{
			State:            j.Key,
			Name:             p.Name,
			SchoolIncidents:  j.Left,
			MassShootings:    j.Right,
			Population:       p.Population,
			SchoolPerMillion: PerMillion.Rate(j.Left, p.Population),
			MassPerMillion:   PerMillion.Rate(j.Right, p.Population),
		})
	}
	return rows, missing
}

// Fit is a least squares line Y = Intercept + Slope*X with the Pearson
// correlation R of the data it was fit to.
type Fit struct {
	Intercept, Slope float64
	R                float64
}

// Regress fits school incidents per million against mass shootings
// per million. It returns false if there are fewer than two rows or
// the mass shooting rates are all equal.
func Regress(rows []CorrelationRow) (Fit, bool) {
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i], ys[i] = r.MassPerMillion, r.SchoolPerMillion
	}
	if len(xs) < 2 {
		return Fit{}, false
	}
	if lo, hi := stats.Bounds(xs); lo == hi {
		return Fit{}, false
	}

	res := fit.PolynomialRegression(xs, ys, nil, 1)
	f := Fit{Intercept: res.Coefficients[0], Slope: res.Coefficients[1]}
	f.R = pearson(xs, ys)
	return f, true
}

func pearson(xs, ys []float64) float64 {
	mx, my := stats.Mean(xs), stats.Mean(ys)
	var sxy, sxx, syy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}
