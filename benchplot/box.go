// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/esteinig/nanoq-bench/benchfile"
)

// DistributionFigure renders the raw trial distributions: one panel
// per task, a box plot per (file, tool) with the individual trial
// times overlaid as points.
func DistributionFigure(ms []benchfile.Measurement, path string) error {
	var tasks []string
	seen := make(map[string]bool)
	for _, m := range ms {
		if !seen[m.Task] {
			seen[m.Task] = true
			tasks = append(tasks, m.Task)
		}
	}

	var panels []*plot.Plot
	for _, task := range tasks {
		p, err := boxPanel(ms, task)
		if err != nil {
			return err
		}
		panels = append(panels, p)
	}
	return writePanels(panels, path)
}

func boxPanel(ms []benchfile.Measurement, task string) (*plot.Plot, error) {
	var files, tools []string
	seenFile := make(map[string]bool)
	seenTool := make(map[string]bool)
	values := make(map[[2]string]plotter.Values)
	for _, m := range ms {
		if m.Task != task {
			continue
		}
		if !seenFile[m.File] {
			seenFile[m.File] = true
			files = append(files, m.File)
		}
		if !seenTool[m.Tool] {
			seenTool[m.Tool] = true
			tools = append(tools, m.Tool)
		}
		k := [2]string{m.File, m.Tool}
		values[k] = append(values[k], m.Time)
	}
	tools = orderTools(tools)

	p := plot.New()
	p.Title.Text = taskTitle(task)
	p.Y.Label.Text = "seconds\n"

	// Dodge the boxes of one file group across [-0.4, 0.4] around the
	// group's nominal position.
	step := 0.8 / float64(len(tools))
	for ti, tool := range tools {
		var thumb *plotter.Scatter
		for fi, file := range files {
			vs, ok := values[[2]string{file, tool}]
			if !ok {
				continue
			}
			loc := float64(fi) - 0.4 + (float64(ti)+0.5)*step

			box, err := plotter.NewBoxPlot(vg.Points(12), loc, vs)
			if err != nil {
				return nil, err
			}
			box.FillColor = toolColor(tool)
			p.Add(box)

			pts := make(plotter.XYs, len(vs))
			for i, v := range vs {
				pts[i].X = loc
				pts[i].Y = v
			}
			strip, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, err
			}
			strip.GlyphStyle = draw.GlyphStyle{
				Color:  toolColor(tool),
				Radius: vg.Points(1.5),
				Shape:  draw.CircleGlyph{},
			}
			p.Add(strip)
			thumb = strip
		}
		if thumb != nil {
			p.Legend.Add(tool, thumb)
		}
	}

	p.NominalX(files...)
	p.Legend.Top = true
	p.Y.Min = 0
	return p, nil
}
