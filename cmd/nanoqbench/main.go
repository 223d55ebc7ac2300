// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Nanoqbench aggregates the replicate benchmark measurements from the
// nanoq paper and renders the comparison figures.
//
// Usage:
//
//	nanoqbench [-dir directory] [-layout name] [-summary file] [-plot file] [-dist file] [-memplot file]
//
// With no arguments it reads the replicate timing benchmarks from
// ./replicate_benchmarks and overwrites benchmarks.tsv, benchmarks.png
// and distributions.png in the working directory.
//
// Each input file holds the repeated trials of one benchmark run as
// headerless whitespace-delimited numeric columns and encodes its
// categorical fields in its underscore-separated name. The -layout
// flag selects the dataset convention: "replicate" for
// tool_task_file names with a seconds column, or "zymo" for tool_file
// names with seconds and kilobytes columns (which additionally
// produces the memory figure).
//
// The first trial of every file is discarded as a cold start and the
// next ten form the sample; full-dataset runs contribute a second
// sample from their trailing rows. See package benchfile for the
// policy.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/esteinig/nanoq-bench/benchfile"
	"github.com/esteinig/nanoq-bench/benchplot"
	"github.com/esteinig/nanoq-bench/benchtab"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: nanoqbench [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagDir     = flag.String("dir", "replicate_benchmarks", "read benchmark files from `directory`")
	flagLayout  = flag.String("layout", "replicate", "dataset `layout`: replicate or zymo")
	flagSummary = flag.String("summary", "benchmarks.tsv", "write the tab-separated summary to `file`")
	flagPlot    = flag.String("plot", "benchmarks.png", "write the runtime figure to `file`")
	flagDist    = flag.String("dist", "distributions.png", "write the distribution figure to `file`, empty to skip")
	flagMemPlot = flag.String("memplot", "benchmarks_mem.png", "write the memory figure to `file` (zymo layout only)")
)

func main() {
	log.SetPrefix("nanoqbench: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
	}
	layout, ok := benchfile.Layouts[*flagLayout]
	if !ok {
		flag.Usage()
	}

	c := &benchfile.Collector{Dir: *flagDir, Layout: layout}
	ms, err := c.Collect()
	if err != nil {
		log.Fatal(err)
	}

	table, err := benchtab.Summarize(ms, layout.HasMem())
	if err != nil {
		log.Fatal(err)
	}
	table.FprintRows(os.Stdout)

	if err := writeSummary(table, *flagSummary); err != nil {
		log.Fatal(err)
	}
	if err := benchplot.TimeFigure(table, *flagPlot); err != nil {
		log.Fatal(err)
	}
	if *flagDist != "" {
		if err := benchplot.DistributionFigure(ms, *flagDist); err != nil {
			log.Fatal(err)
		}
	}
	if layout.HasMem() {
		if err := benchplot.MemFigure(table, *flagMemPlot); err != nil {
			log.Fatal(err)
		}
	}
}

func writeSummary(table *benchtab.Table, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err := table.WriteTSV(w); err != nil {
		return err
	}
	return w.Flush()
}
