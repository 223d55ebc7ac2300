// Copyright 2026 The nanoq-bench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	// Three replicate files of 11 trials each: one cold start
	// discarded, ten kept per file.
	dir := t.TempDir()
	bench := filepath.Join(dir, "replicate_benchmarks")
	if err := os.Mkdir(bench, 0777); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"nanoq_filt_gz", "nanoq_stat_gz", "filtlong_filt_gz"} {
		var buf bytes.Buffer
		for i := 0; i < 11; i++ {
			fmt.Fprintf(&buf, "%d.5\n", i)
		}
		if err := os.WriteFile(filepath.Join(bench, name), buf.Bytes(), 0666); err != nil {
			t.Fatal(err)
		}
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"nanoqbench"}

	oldExit := exit
	defer func() { exit = oldExit }()
	exit = func(code int) { t.Fatalf("exit(%d) called", code) }

	main()

	data, err := os.ReadFile("benchmarks.tsv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("summary has %d lines, want header plus 3 rows:\n%s", len(lines), data)
	}
	if strings.Contains(string(data), "zymo_full") {
		t.Errorf("summary contains a zymo_full row:\n%s", data)
	}

	for _, name := range []string{"benchmarks.png", "distributions.png"} {
		img, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(img, []byte("\x89PNG")) {
			t.Errorf("%s is not a PNG image", name)
		}
	}
	if _, err := os.Stat("benchmarks_mem.png"); err == nil {
		t.Error("replicate layout produced a memory figure")
	}
}
