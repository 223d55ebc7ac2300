// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/esteinig/nanoq-bench/benchfile"
)

func measure(tool, task, file string, time, mem float64) benchfile.Measurement {
	return benchfile.Measurement{Tool: tool, Task: task, File: file, Time: time, Mem: mem}
}

func TestSummarizeStats(t *testing.T) {
	ms := []benchfile.Measurement{
		// Two identical trials: mean v, stddev 0.
		measure("nanoq", "filt", "gz", 4, 0),
		measure("nanoq", "filt", "gz", 4, 0),
		// Two distinct trials: mean 2, sample stddev sqrt(2).
		measure("filtlong", "filt", "gz", 1, 0),
		measure("filtlong", "filt", "gz", 3, 0),
		// A single trial: mean v, stddev undefined.
		measure("nanofilt", "filt", "gz", 7, 0),
	}
	table, err := Summarize(ms, false)
	if err != nil {
		t.Fatal(err)
	}

	check := func(tool string, wantMean, wantStd float64) {
		t.Helper()
		r := table.Lookup(Key{Task: "filt", File: "gz", Tool: tool})
		if r == nil {
			t.Fatalf("no summary row for %s", tool)
		}
		if r.Time.Mean != wantMean {
			t.Errorf("%s: time mean = %v, want %v", tool, r.Time.Mean, wantMean)
		}
		if math.IsNaN(wantStd) {
			if !math.IsNaN(r.Time.Std) {
				t.Errorf("%s: time stddev = %v, want NaN", tool, r.Time.Std)
			}
		} else if math.Abs(r.Time.Std-wantStd) > 1e-12 {
			t.Errorf("%s: time stddev = %v, want %v", tool, r.Time.Std, wantStd)
		}
	}

	check("nanoq", 4, 0)
	check("filtlong", 2, math.Sqrt2)
	check("nanofilt", 7, math.NaN())
}

func TestSummarizeGrouping(t *testing.T) {
	// Every distinct (task, file, tool) triple appears exactly once,
	// in order of first appearance.
	ms := []benchfile.Measurement{
		measure("nanoq", "filt", "gz", 1, 0),
		measure("nanoq", "stat", "gz", 2, 0),
		measure("nanoq", "filt", "fq", 3, 0),
		measure("nanoq", "filt", "gz", 4, 0),
		measure("filtlong", "filt", "gz", 5, 0),
		measure("nanoq", "stat", "gz", 6, 0),
	}
	table, err := Summarize(ms, false)
	if err != nil {
		t.Fatal(err)
	}

	var got []Key
	for _, r := range table.Rows {
		got = append(got, r.Key)
	}
	want := []Key{
		{Task: "filt", File: "gz", Tool: "nanoq"},
		{Task: "stat", File: "gz", Tool: "nanoq"},
		{Task: "filt", File: "fq", Tool: "nanoq"},
		{Task: "filt", File: "gz", Tool: "filtlong"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary keys mismatch (-want +got):\n%s", diff)
	}

	if got, want := table.Tasks(), []string{"filt", "stat"}; !cmp.Equal(want, got) {
		t.Errorf("Tasks() = %v, want %v", got, want)
	}
	if got, want := table.Files(), []string{"gz", "fq"}; !cmp.Equal(want, got) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
	if got, want := table.Tools(), []string{"nanoq", "filtlong"}; !cmp.Equal(want, got) {
		t.Errorf("Tools() = %v, want %v", got, want)
	}
}

func TestSummarizeMemRescale(t *testing.T) {
	ms := []benchfile.Measurement{
		measure("nanoq", "stat", "zymo", 1, 2000000),
		measure("nanoq", "stat", "zymo", 1, 2000000),
	}
	table, err := Summarize(ms, true)
	if err != nil {
		t.Fatal(err)
	}
	r := table.Lookup(Key{Task: "stat", File: "zymo", Tool: "nanoq"})
	if r == nil || r.Mem == nil {
		t.Fatal("no memory summary for nanoq")
	}
	if r.Mem.Mean != 2000 {
		t.Errorf("mem mean = %v MB, want 2000", r.Mem.Mean)
	}
	if r.Mem.Std != 0 {
		t.Errorf("mem stddev = %v, want 0", r.Mem.Std)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil, false); err != ErrNoMeasurements {
		t.Fatalf("Summarize(nil) error = %v, want ErrNoMeasurements", err)
	}
}
