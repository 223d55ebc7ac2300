// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A SyntaxError represents a malformed row on a particular line of a
// benchmark payload file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// readRows parses a whitespace/tab-delimited numeric payload with no
// header row. Every non-blank line must have exactly one float per
// declared column. fileName is used in error messages.
func readRows(r io.Reader, fileName string, layout Layout) ([][]float64, error) {
	var rows [][]float64
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(layout.Columns) {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("row has %d fields, %s layout wants %d (%s)", len(fields), layout.Name, len(layout.Columns), strings.Join(layout.Columns, " "))}
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &SyntaxError{fileName, line, fmt.Sprintf("column %s: %v", layout.Columns[i], err)}
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}
	return rows, nil
}
