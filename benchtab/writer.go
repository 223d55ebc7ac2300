// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTSV writes the summary table as tab-separated values with a
// header row. Memory columns are included only when the table has
// memory data. An undefined standard deviation is written as NaN.
func (t *Table) WriteTSV(w io.Writer) error {
	cols := []string{"task", "file", "tool", "time", "time_sd"}
	if t.HasMem {
		cols = append(cols, "mem", "mem_sd")
	}
	if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
		return err
	}

	for _, r := range t.Rows {
		fields := []string{
			r.Task, r.File, r.Tool,
			formatValue(r.Time.Mean), formatValue(r.Time.Std),
		}
		if t.HasMem {
			fields = append(fields, formatValue(r.Mem.Mean), formatValue(r.Mem.Std))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// FprintRows prints one human-readable line per summary row, in the
// style of the original analysis output.
func (t *Table) FprintRows(w io.Writer) {
	for _, r := range t.Rows {
		fmt.Fprintf(w, "task=%s file=%s tool=%s time=%s%s ±%s", r.Task, r.File, r.Tool, formatValue(r.Time.Mean), r.Time.Unit, formatValue(r.Time.Std))
		if r.Mem != nil {
			fmt.Fprintf(w, " mem=%s%s ±%s", formatValue(r.Mem.Mean), r.Mem.Unit, formatValue(r.Mem.Std))
		}
		fmt.Fprintln(w)
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
