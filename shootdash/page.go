// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"html/template"
	"io"
	"time"

	"github.com/shootdash/shootdash/internal/incident"
)

const htmlPage = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
  margin: 0 auto;
  max-width: 1200px;
}
h1 {
  color: #67000d;
}
p.summary {
  color: #777;
}
div.grid {
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: 16px;
}
div.chart>h2 {
  font-size: 110%;
}
div.chart>svg {
  max-width: 100%;
  height: auto;
}
    </style>
  </head>
  <body>
    <h1>{{.Title}}</h1>
    <p class="summary">
      Incidents from {{date .Window.From}} to {{date .Window.To}}.
      {{with .Mean}}A mean of {{printf "%.1f" .}} mass shootings per month.{{end}}
      {{if .FitOK}}School incidents per million = {{printf "%.3g" .Fit.Intercept}} + {{printf "%.3g" .Fit.Slope}} &times; mass shootings per million (r = {{printf "%.2f" .Fit.R}}).{{end}}
    </p>
    <div class="grid">
{{range .Charts}}
      <div class="chart">
        <h2>{{.Title}}</h2>
        {{.SVG}}
      </div>
{{end}}
    </div>
  </body>
</html>
`

var htmlFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "any date"
		}
		return t.Format("January 2, 2006")
	},
}

var htmlTemplate = template.Must(template.New("dashboard").Funcs(htmlFuncs).Parse(htmlPage))

// page is the data the dashboard template is executed with.
type page struct {
	Title  string
	Window incident.Window
	Mean   float64
	Fit    incident.Fit
	FitOK  bool
	Charts []chart
}

func writePage(w io.Writer, d *dashboard, charts []chart) error {
	return htmlTemplate.Execute(w, page{
		Title:  "Mass shootings across the US",
		Window: d.window,
		Mean:   d.mean,
		Fit:    d.fit,
		FitOK:  d.fitOK,
		Charts: charts,
	})
}
