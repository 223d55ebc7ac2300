// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfile reads the replicate benchmark files produced by
// the paper's timing harness.
//
// Each file holds the repeated trials of one (tool, task, dataset)
// combination as headerless whitespace-delimited numeric columns, and
// encodes its categorical fields in its underscore-separated name.
// A Layout declares both conventions for a dataset; the collector
// decodes names, reads payloads, applies the cold-start sampling
// policy, and flattens everything into one slice of measurements.
package benchfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// A Measurement is one kept benchmark trial, tagged with the
// categorical fields of its source file.
type Measurement struct {
	Tool string
	Task string
	File string

	// Time is the elapsed wall time in seconds.
	Time float64

	// Mem is the peak resident memory in kilobytes. Zero when the
	// layout has no memory column.
	Mem float64
}

// A Collector reads every benchmark file in one directory, without
// recursing, and concatenates the kept rows. Row order across files
// is not meaningful.
type Collector struct {
	// Dir is the directory to scan. It must exist.
	Dir string

	// Layout declares the dataset's filename and column schema.
	Layout Layout
}

// Collect scans c.Dir and returns the concatenated measurements.
// A missing directory, a misnamed file, or a malformed payload row
// aborts with an error naming the offending file.
func (c *Collector) Collect() ([]Measurement, error) {
	ents, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, err
	}

	var all []Measurement
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		ms, err := c.collectFile(ent.Name())
		if err != nil {
			return nil, err
		}
		all = append(all, ms...)
	}
	return all, nil
}

func (c *Collector) collectFile(base string) ([]Measurement, error) {
	name, err := ParseName(base, c.Layout)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(c.Dir, base)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := readRows(f, path, c.Layout)
	if err != nil {
		return nil, err
	}

	primary, secondary := sampleRows(rows, name.FullVariant())

	fileLabel := name.File
	if name.FullVariant() {
		fileLabel = FullPrimaryLabel
	}
	ms := c.tag(primary, name, fileLabel)
	ms = append(ms, c.tag(secondary, name, FullSecondaryLabel)...)
	return ms, nil
}

// sampleRows applies the sampling policy: drop the cold-start rows,
// keep the next PrimarySampleSize rows, and for full-variant files
// additionally keep everything from SecondarySampleStart onward.
func sampleRows(rows [][]float64, full bool) (primary, secondary [][]float64) {
	lo := ColdStartDiscard
	if lo > len(rows) {
		lo = len(rows)
	}
	hi := ColdStartDiscard + PrimarySampleSize
	if hi > len(rows) {
		hi = len(rows)
	}
	primary = rows[lo:hi]
	if full && len(rows) > SecondarySampleStart {
		secondary = rows[SecondarySampleStart:]
	}
	return primary, secondary
}

// tag attaches the categorical fields to a slice of payload rows.
func (c *Collector) tag(rows [][]float64, name Name, fileLabel string) []Measurement {
	timeCol, memCol := -1, -1
	for i, col := range c.Layout.Columns {
		switch col {
		case ColTime:
			timeCol = i
		case ColMem:
			memCol = i
		}
	}
	if timeCol < 0 {
		// Layouts are package constants; a layout without a time
		// column is a programming error, not bad input.
		panic(fmt.Sprintf("layout %s has no %s column", c.Layout.Name, ColTime))
	}

	ms := make([]Measurement, 0, len(rows))
	for _, row := range rows {
		m := Measurement{
			Tool: name.Tool,
			Task: name.Task,
			File: fileLabel,
			Time: row[timeCol],
		}
		if memCol >= 0 {
			m.Mem = row[memCol]
		}
		ms = append(ms, m)
	}
	return ms
}
