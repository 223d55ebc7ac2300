// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab aggregates benchmark measurements into per-group
// summary statistics.
package benchtab

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/esteinig/nanoq-bench/benchfile"
)

// KBPerMB converts the kilobyte memory column to the megabytes
// reported in the summary and figures.
const KBPerMB = 1000

// A Key identifies one summary group: one tool exercising one task
// against one input file variant.
type Key struct {
	Task, File, Tool string
}

// A Metrics holds the measurements of a single metric for all trials
// of a particular group, plus their derived statistics.
type Metrics struct {
	Unit   string    // unit being measured ("s" or "MB")
	Values []float64 // measured values, in input order
	Mean   float64   // sample mean of Values
	Std    float64   // sample standard deviation of Values; NaN if len(Values) < 2
}

// computeStats updates the derived statistics in m from the raw
// samples in m.Values.
func (m *Metrics) computeStats() {
	s := stats.Sample{Xs: m.Values}
	m.Mean = s.Mean()
	if len(m.Values) < 2 {
		// A single trial says nothing about sampling variability.
		m.Std = math.NaN()
		return
	}
	m.Std = s.StdDev()
}

// A Row is the summary of one group.
type Row struct {
	Key
	Time *Metrics // seconds
	Mem  *Metrics // megabytes, nil when the input has no memory column
}

// A Table is the summarized benchmark data: one row per distinct
// (task, file, tool) combination, in order of first appearance.
type Table struct {
	Rows   []*Row
	HasMem bool
}

// ErrNoMeasurements is returned by Summarize for an empty input, which
// almost always means the input directory was wrong.
var ErrNoMeasurements = errors.New("no measurements to summarize")

// Summarize groups the measurements by (task, file, tool) and computes
// the sample mean and sample standard deviation of each metric per
// group. Memory values are rescaled from kilobytes to megabytes.
// Grouping is exhaustive and stable: every distinct combination
// present appears exactly once, in order of first appearance.
func Summarize(ms []benchfile.Measurement, hasMem bool) (*Table, error) {
	if len(ms) == 0 {
		return nil, ErrNoMeasurements
	}

	t := &Table{HasMem: hasMem}
	rows := make(map[Key]*Row)
	for _, m := range ms {
		key := Key{Task: m.Task, File: m.File, Tool: m.Tool}
		row, ok := rows[key]
		if !ok {
			row = &Row{Key: key, Time: &Metrics{Unit: "s"}}
			if hasMem {
				row.Mem = &Metrics{Unit: "MB"}
			}
			rows[key] = row
			t.Rows = append(t.Rows, row)
		}
		row.Time.Values = append(row.Time.Values, m.Time)
		if hasMem {
			row.Mem.Values = append(row.Mem.Values, m.Mem/KBPerMB)
		}
	}

	for _, row := range t.Rows {
		row.Time.computeStats()
		if row.Mem != nil {
			row.Mem.computeStats()
		}
	}
	return t, nil
}

// Tasks returns the distinct task labels in first-appearance order.
func (t *Table) Tasks() []string {
	return t.distinct(func(r *Row) string { return r.Task })
}

// Files returns the distinct file labels in first-appearance order.
func (t *Table) Files() []string {
	return t.distinct(func(r *Row) string { return r.File })
}

// Tools returns the distinct tool names in first-appearance order.
func (t *Table) Tools() []string {
	return t.distinct(func(r *Row) string { return r.Tool })
}

func (t *Table) distinct(field func(*Row) string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range t.Rows {
		if f := field(r); !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// Lookup returns the summary row for key, or nil if the combination
// never appeared in the input.
func (t *Table) Lookup(key Key) *Row {
	for _, r := range t.Rows {
		if r.Key == key {
			return r
		}
	}
	return nil
}
