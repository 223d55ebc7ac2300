// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders the benchmark comparison figures.
//
// Figure style is presentation configuration: grouped bars of group
// means for the headline comparison, and box-and-strip panels for the
// raw trial distributions. The per-tool colors and the tool ordering
// are fixed so that a tool keeps its color across every figure in the
// paper.
package benchplot

import "image/color"

// toolOrder fixes the hue order of tools within a bar group. Tools
// not listed are appended in input order.
var toolOrder = []string{
	"filtlong",
	"nanofilt",
	"nanoq",
	"nanostat",
	"nanostat-t8",
	"rust-bio-tools",
	"crab",
}

// toolColors assigns every tool its fixed color (Okabe-Ito palette,
// anchored on the published figures).
var toolColors = map[string]color.Color{
	"filtlong":       rgb(0xE6, 0x9F, 0x00),
	"nanofilt":       rgb(0x56, 0xB4, 0xE9),
	"nanoq":          rgb(0x00, 0x9E, 0x73),
	"nanostat":       rgb(0xD5, 0x5E, 0x00),
	"nanostat-t8":    rgb(0xCC, 0x79, 0xA7),
	"rust-bio-tools": rgb(0x00, 0x72, 0xB2),
	"crab":           rgb(0xF0, 0xE4, 0x42),
}

// fallbackColor is used for tools without a palette entry.
var fallbackColor = rgb(0x99, 0x99, 0x99)

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// toolColor returns the fixed color for a tool.
func toolColor(tool string) color.Color {
	if c, ok := toolColors[tool]; ok {
		return c
	}
	return fallbackColor
}

// orderTools returns the given tools in the fixed hue order, with
// unlisted tools appended in their input order.
func orderTools(tools []string) []string {
	rank := make(map[string]int, len(toolOrder))
	for i, t := range toolOrder {
		rank[t] = i
	}
	ordered := make([]string, 0, len(tools))
	for _, want := range toolOrder {
		for _, t := range tools {
			if t == want {
				ordered = append(ordered, t)
			}
		}
	}
	for _, t := range tools {
		if _, ok := rank[t]; !ok {
			ordered = append(ordered, t)
		}
	}
	return ordered
}

// taskTitles maps task labels to panel titles.
var taskTitles = map[string]string{
	"filt": "Read filter",
	"stat": "Read statistics",
}

func taskTitle(task string) string {
	if t, ok := taskTitles[task]; ok {
		return t
	}
	return task
}
