// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/esteinig/nanoq-bench/benchtab"
)

// TimeFigure renders the runtime comparison: one grouped-bar panel
// per task, x = file variant, hue = tool, y = mean seconds.
func TimeFigure(t *benchtab.Table, path string) error {
	return barFigure(t, "seconds\n", timeMean, path)
}

// MemFigure renders the memory comparison in the same arrangement,
// y = mean megabytes. The table must carry memory data.
func MemFigure(t *benchtab.Table, path string) error {
	if !t.HasMem {
		return fmt.Errorf("%s: summary table has no memory data", path)
	}
	return barFigure(t, "MB\n", memMean, path)
}

func timeMean(r *benchtab.Row) float64 { return r.Time.Mean }
func memMean(r *benchtab.Row) float64  { return r.Mem.Mean }

func barFigure(t *benchtab.Table, yLabel string, mean func(*benchtab.Row) float64, path string) error {
	var panels []*plot.Plot
	for _, task := range t.Tasks() {
		p, err := barPanel(t, task, yLabel, mean)
		if err != nil {
			return err
		}
		panels = append(panels, p)
	}
	return writePanels(panels, path)
}

func barPanel(t *benchtab.Table, task, yLabel string, mean func(*benchtab.Row) float64) (*plot.Plot, error) {
	var files, tools []string
	seenFile := make(map[string]bool)
	seenTool := make(map[string]bool)
	for _, r := range t.Rows {
		if r.Task != task {
			continue
		}
		if !seenFile[r.File] {
			seenFile[r.File] = true
			files = append(files, r.File)
		}
		if !seenTool[r.Tool] {
			seenTool[r.Tool] = true
			tools = append(tools, r.Tool)
		}
	}
	tools = orderTools(tools)

	p := plot.New()
	p.Title.Text = taskTitle(task)
	p.Y.Label.Text = yLabel
	p.Y.Min = 0

	barWidth := vg.Points(16)
	for i, tool := range tools {
		values := make(plotter.Values, len(files))
		for j, file := range files {
			if r := t.Lookup(benchtab.Key{Task: task, File: file, Tool: tool}); r != nil {
				values[j] = mean(r)
			}
			// A combination never benchmarked stays at zero,
			// leaving a gap in the group.
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, err
		}
		bars.Color = toolColor(tool)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(i)-float64(len(tools)-1)/2) * (barWidth + vg.Points(2))
		p.Add(bars)
		p.Legend.Add(tool, bars)
	}

	p.NominalX(files...)
	p.Legend.Top = true
	return p, nil
}
