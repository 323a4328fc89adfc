// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shootdash builds a dashboard of firearm violence in the US
// from four CSV sources.
//
// shootdash reads mass shooting incidents with their per-state
// shooting rates, county-level incidents with suspect outcomes,
// school incidents, and a per-state crime table with populations.
// It writes a single HTML page with six charts: the states with the
// most shootings per 100k citizens, a state map and a county
// breakdown of the same rate, school incidents against mass
// shootings per million citizens, mass shootings per month, and
// suspects killed and injured per year.
//
// Source file names, the time window, the ranking size, and data
// corrections can be set in a YAML file given with -config.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/shootdash/shootdash/internal/config"
	"golang.org/x/term"
)

func main() {
	log.SetPrefix("shootdash: ")
	log.SetFlags(0)

	var (
		flagData    = flag.String("data", ".", "read source CSV files from `dir`")
		flagConfig  = flag.String("config", "", "read configuration from YAML `file`")
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable   = flag.Bool("table", false, "output tables instead of a dashboard")
		flagOpen    = flag.String("open", "", "open the dashboard with `command` after writing it")
		flagVerbose = flag.Bool("v", false, "log load statistics and dropped keys")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	verbose = *flagVerbose
	if !verbose {
		gg.Warning.SetOutput(io.Discard)
	}
	if *flagOpen != "" && *flagOut == "" {
		log.Fatal("-open requires -o")
	}
	if *flagOut == "" && !*flagTable && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("not writing HTML to a terminal; use -o or redirect stdout")
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	data, err := loadSources(cfg, *flagData)
	if err != nil {
		log.Fatal(err)
	}
	d, err := build(cfg, data)
	if err != nil {
		log.Fatal(err)
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *flagTable {
		err = fprintTables(f, d)
	} else {
		var charts []chart
		charts, err = renderCharts(d)
		if err == nil {
			err = writePage(f, d, charts)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
	if f != os.Stdout {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}

	if *flagOpen != "" {
		cmd, err := viewerCommand(*flagOpen, *flagOut)
		if err != nil {
			log.Fatal(err)
		}
		if err := cmd.Run(); err != nil {
			log.Fatal(err)
		}
	}
}
