// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Per-panel canvas size, matching the original figure proportions.
const (
	panelWidth  = 7 * vg.Inch
	panelHeight = 4.5 * vg.Inch
)

// writePanels tiles the plots side by side on one canvas and writes
// it as a PNG, overwriting path.
func writePanels(plots []*plot.Plot, path string) (err error) {
	if len(plots) == 0 {
		return fmt.Errorf("%s: no panels to draw", path)
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(len(plots))*panelWidth, panelHeight),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Points(12),
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(f)
	return err
}
