// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"html/template"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/shootdash/shootdash/internal/incident"
)

var (
	colorRed     = color.RGBA{0xcb, 0x18, 0x1d, 0xff}
	colorDarkRed = color.RGBA{0x67, 0x00, 0x0d, 0xff}
	colorPink    = color.RGBA{0xfc, 0x92, 0x72, 0xff}
	colorGray    = color.Gray{192}
)

// reds is a sequential light to dark red gradient.
var reds = palette.RGBGradient{Colors: []color.RGBA{
	{0xff, 0xf5, 0xf0, 0xff},
	{0xfc, 0xbb, 0xa1, 0xff},
	{0xfb, 0x6a, 0x4a, 0xff},
	{0xcb, 0x18, 0x1d, 0xff},
	{0x67, 0x00, 0x0d, 0xff},
}}

// redLevels samples reds at n evenly spaced levels.
func redLevels(n int) []color.Color {
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = reds.Map(float64(i) / float64(n-1))
	}
	return cs
}

// chart is one rendered dashboard panel.
type chart struct {
	Title string
	SVG   template.HTML
}

const (
	chartWidth  = 560
	chartHeight = 420
)

// renderCharts draws every dashboard panel of d.
func renderCharts(d *dashboard) ([]chart, error) {
	plots := []struct {
		title string
		plot  *gg.Plot
	}{
		{"States with the most shootings per 100k citizens", topPlot(d.top)},
		{"Shootings per 100k citizens by state", statePlot(d.states)},
		{"Shootings per 100k citizens by county", countyPlot(d.counties)},
		{"School incidents and mass shootings per million citizens", correlationPlot(d.correlation, d.fitOK)},
		{"Mass shootings per month", monthlyPlot(d.monthly, d.mean)},
		{"Suspects killed and injured per year", suspectsPlot(d.suspects)},
	}
	var out []chart
	for _, p := range plots {
		if p.plot == nil {
			vlogf("no data for %q", p.title)
			continue
		}
		svg, err := renderSVG(p.plot, chartWidth, chartHeight)
		if err != nil {
			return nil, fmt.Errorf("rendering %q: %w", p.title, err)
		}
		out = append(out, chart{p.title, svg})
	}
	return out, nil
}

// renderSVG renders p as an inline SVG element.
func renderSVG(p *gg.Plot, w, h int) (template.HTML, error) {
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, w, h); err != nil {
		return "", err
	}
	svg := buf.String()
	if i := strings.Index(svg, "<svg"); i > 0 {
		// Drop the XML prolog.
		svg = svg[i:]
	}
	return template.HTML(svg), nil
}

// topPlot draws a lollipop chart of the ranked states, rank 1 at
// the top.
func topPlot(rows []incident.RateRow) *gg.Plot {
	if len(rows) == 0 {
		return nil
	}
	n := len(rows)
	var (
		names = make([]string, n)
		state []string
		pos   []int
		rate  []float64
		label []string
		head  []bool
	)
	for i, r := range rows {
		y := n - 1 - i
		names[y] = r.Name
		// Each stem runs from 0 to the rate. The head is the second row.
		for j, x := range []float64{0, r.Rate} {
			state = append(state, r.Name)
			pos = append(pos, y)
			rate = append(rate, x)
			label = append(label, strconv.FormatFloat(r.Rate, 'f', 2, 64))
			head = append(head, j == 1)
		}
	}
	tab := new(table.Builder).Add(colState, state).Add(colRank, pos).Add(colRate, rate).Add("label", label).Add("head", head).Done()

	plot := gg.NewPlot(tab)
	ys := gg.NewOrdinalScale()
	ys.SetFormatter(func(y int) string { return names[y] })
	plot.SetScale("y", ys)
	plot.SetScale("x", gg.NewLinearScaler().Include(0))

	plot.GroupBy(colState)
	plot.Add(gg.LayerPaths{X: colRate, Y: colRank, Color: plot.Const(colorGray)})
	plot.SetData(table.Filter(plot.Data(), func(head bool) bool { return head }, "head"))
	plot.Add(gg.LayerPoints{X: colRate, Y: colRank, Color: plot.Const(colorRed)})
	plot.Add(gg.LayerTags{X: colRate, Y: colRank, Label: "label"})
	plot.Add(gg.AxisLabel("y", ""))
	return plot
}

// statePlot draws state rates as a tile grid map.
func statePlot(rows []incident.RateRow) *gg.Plot {
	tab := gridTable(rows)
	if tab.Len() == 0 {
		return nil
	}
	plot := gg.NewPlot(tab)
	fill := gg.NewLinearScaler().Include(0)
	fill.Ranger(gg.NewColorRanger(redLevels(9)))
	plot.SetScale("fill", fill)
	plot.Add(gg.LayerTiles{X: colCol, Y: colRow, Fill: colRate})

	// Tag the worst states.
	worst := rows[0].Rate
	for _, r := range rows {
		worst = math.Max(worst, r.Rate)
	}
	if worst > 0 {
		plot.Save()
		plot.SetData(table.FilterEq(tab, colRate, worst))
		plot.Add(gg.LayerTags{X: colCol, Y: colRow, Label: colAbbrev})
		plot.Restore()
	}
	plot.Add(gg.AxisLabel("x", ""), gg.AxisLabel("y", ""))
	return plot
}

// countyPlot draws the rate of each county as a point in its
// state's column.
func countyPlot(rows []incident.RateRow) *gg.Plot {
	if len(rows) == 0 {
		return nil
	}
	plot := gg.NewPlot(countyTable(rows))
	stroke := gg.NewLinearScaler().Include(0)
	stroke.Ranger(gg.NewColorRanger(redLevels(9)[2:]))
	plot.SetScale("stroke", stroke)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))
	plot.Add(gg.LayerPoints{X: colAbbrev, Y: colRate, Color: colRate})
	plot.Add(gg.AxisLabel("x", ""))
	return plot
}

// correlationPlot draws school incidents against mass shootings with
// one point per state sized by population, and the least squares
// line if the data admits one.
func correlationPlot(rows []incident.CorrelationRow, fit bool) *gg.Plot {
	if len(rows) == 0 {
		return nil
	}
	plot := gg.NewPlot(correlationTable(rows))
	plot.Add(gg.LayerPoints{X: colMass, Y: colSchool, Color: plot.Const(colorRed), Size: colPop})
	if fit {
		plot.Save()
		plot.Stat(ggstat.LeastSquares{X: colMass, Y: colSchool})
		plot.Add(gg.LayerLines{X: colMass, Y: colSchool, Color: plot.Const(colorDarkRed)})
		plot.Restore()
	}
	return plot
}

// monthlyPlot draws the monthly series with its mean, a rule at each
// year start, and tags on the minimum and maximum months.
func monthlyPlot(buckets []incident.Bucket, mean float64) *gg.Plot {
	if len(buckets) == 0 {
		return nil
	}
	var g table.Grouping = monthlyTable(buckets)
	g = table.MapCols(g, func(month []incident.Month, count []int, tooltip []string) {
		for i, m := range month {
			tooltip[i] = fmt.Sprintf("%s: %d", m, count[i])
		}
	}, colMonth, colMonthly)("tooltip")
	g = table.MapCols(g, func(extreme []string, c []color.RGBA) {
		for i, e := range extreme {
			c[i] = colorRed
			if e != incident.Extreme(0).String() {
				c[i] = colorDarkRed
			}
		}
	}, colExtreme)("color")
	counts := make([]float64, len(buckets))
	for i, b := range buckets {
		counts[i] = float64(b.Count)
	}
	_, hi := stats.Bounds(counts)

	plot := gg.NewPlot(g)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))

	// Year starts.
	var ruleX []incident.Month
	var ruleY []float64
	first, last := buckets[0].Month, buckets[len(buckets)-1].Month
	for m := first + 1; m <= last; m++ {
		if m.Month() == 1 {
			ruleX = append(ruleX, m, m)
			ruleY = append(ruleY, 0, hi)
		}
	}
	if len(ruleX) > 0 {
		plot.Save()
		plot.SetData(new(table.Builder).Add(colMonth, ruleX).Add(colMonthly, ruleY).Done())
		plot.GroupBy(colMonth)
		plot.Add(gg.LayerPaths{X: colMonth, Y: colMonthly, Color: plot.Const(colorGray)})
		plot.Restore()
	}

	// Mean.
	plot.Save()
	plot.SetData(new(table.Builder).
		Add(colMonth, []incident.Month{first, last}).
		Add(colMonthly, []float64{mean, mean}).
		AddConst("label", fmt.Sprintf("mean %.1f", mean)).
		Done())
	plot.Add(gg.LayerLines{X: colMonth, Y: colMonthly, Color: plot.Const(colorPink)})
	plot.Add(gg.LayerTags{X: colMonth, Y: colMonthly, Label: "label"})
	plot.Restore()

	plot.Add(gg.LayerLines{X: colMonth, Y: colMonthly, Color: plot.Const(colorRed)})
	plot.Add(gg.LayerPoints{X: colMonth, Y: colMonthly, Color: "color"})
	plot.Add(gg.LayerTooltips{X: colMonth, Y: colMonthly, Label: "tooltip"})

	plot.Save()
	plot.SetData(table.Filter(plot.Data(), func(e string) bool { return e != incident.Extreme(0).String() }, colExtreme))
	plot.Add(gg.LayerTags{X: colMonth, Y: colMonthly, Label: colExtreme})
	plot.Restore()

	plot.Add(gg.AxisLabel("x", ""))
	return plot
}

// suspectsPlot draws suspects killed and injured as side by side bars
// for each year.
func suspectsPlot(totals []incident.YearTotals) *gg.Plot {
	if len(totals) == 0 {
		return nil
	}
	long := table.MapTables(suspectsTable(totals), func(_ table.GroupID, t *table.Table) *table.Table {
		years := t.MustColumn(colYear).([]int)
		cats := t.MustColumn(colCategory).([]string)
		xs := make([]float64, len(years))
		for i := range xs {
			off := 0.15
			if cats[i] == "killed" {
				off = -off
			}
			xs[i] = float64(years[i]) + off
		}
		return table.NewBuilder(t).Add("x", xs).Done()
	})
	base := table.MapTables(long, func(_ table.GroupID, t *table.Table) *table.Table {
		return table.NewBuilder(t).Add(colSuspects, make([]int, t.Len())).Done()
	})

	plot := gg.NewPlot(table.Concat(long, base))
	stroke := gg.NewOrdinalScale()
	stroke.Ranger(gg.NewColorRanger([]color.Color{colorPink, colorRed}))
	plot.SetScale("stroke", stroke)
	xs := gg.NewLinearScaler()
	xs.SetFormatter(func(x float64) string {
		if x != math.Trunc(x) {
			return ""
		}
		return strconv.Itoa(int(x))
	})
	plot.SetScale("x", xs)
	plot.SetScale("y", gg.NewLinearScaler().Include(0))

	plot.Save()
	plot.GroupBy("x")
	plot.Add(gg.LayerPaths{X: "x", Y: colSuspects, Color: colCategory})
	plot.Restore()

	plot.SetData(long)
	plot.Add(gg.LayerPoints{X: "x", Y: colSuspects, Color: colCategory})
	plot.Add(gg.AxisLabel("x", colYear))
	return plot
}
