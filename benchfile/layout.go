// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfile

// Sampling policy for repeated-trial benchmark files. Row position
// encodes meaning in these files, so the positions are named here
// rather than scattered as literals.
const (
	// ColdStartDiscard is the number of leading rows dropped from
	// every file. The first trial pays for cache population and
	// process startup and is not representative.
	ColdStartDiscard = 1

	// PrimarySampleSize is the number of rows kept after the
	// cold-start discard.
	PrimarySampleSize = 10

	// SecondarySampleStart is the row offset at which the secondary
	// sample of a full-variant file begins.
	SecondarySampleStart = 12

	// FullVariantToken marks a file whose trailing rows are a run
	// against the full dataset.
	FullVariantToken = "full"

	// FullPrimaryLabel and FullSecondaryLabel are the file labels
	// attached to the two samples of a full-variant file.
	FullPrimaryLabel   = "zymo"
	FullSecondaryLabel = "zymo_full"
)

// Column names understood by the payload reader.
const (
	ColTime = "time"
	ColMem  = "mem"
)

// A Layout declares the shape of one benchmark dataset: which
// categorical fields are encoded in a filename, in order, and which
// numeric columns each row of the payload carries.
//
// Filenames are underscore-separated. A name must split into exactly
// len(Fields) tokens; anything else is a fatal parse error, since a
// misnamed file would silently land in the wrong group.
type Layout struct {
	// Name identifies the layout in flags and error messages.
	Name string

	// Fields are the categorical fields encoded in a filename,
	// in token order. Recognized fields: "tool", "task", "file".
	Fields []string

	// Fixed supplies constant values for categorical fields not
	// encoded in the name.
	Fixed map[string]string

	// Columns is the numeric column schema of the payload,
	// in column order.
	Columns []string
}

// HasMem reports whether the layout's payload carries a memory column.
func (l Layout) HasMem() bool {
	for _, c := range l.Columns {
		if c == ColMem {
			return true
		}
	}
	return false
}

// Replicate is the layout of the replicate timing benchmarks: names
// like "nanoq_filt_gz" and a single seconds column per row.
var Replicate = Layout{
	Name:    "replicate",
	Fields:  []string{"tool", "task", "file"},
	Columns: []string{ColTime},
}

// Zymo is the layout of the Zymo dataset benchmarks: names like
// "nanoq_full" with seconds and kilobytes columns per row. All runs
// exercise the statistics task.
var Zymo = Layout{
	Name:    "zymo",
	Fields:  []string{"tool", "file"},
	Fixed:   map[string]string{"task": "stat"},
	Columns: []string{ColTime, ColMem},
}

// Layouts maps layout names to their definitions, for flag parsing.
var Layouts = map[string]Layout{
	Replicate.Name: Replicate,
	Zymo.Name:      Zymo,
}
