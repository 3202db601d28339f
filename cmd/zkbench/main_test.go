// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/polybase/zkbench/fixture"
)

const smallFixture = "../../fixture/testdata/small.json"

// zkbench runs the command line args and returns its standard output.
func zkbench(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	if stderr.Len() > 0 {
		t.Logf("stderr:\n%s", stderr.String())
	}
	return stdout.String(), err
}

func TestTable(t *testing.T) {
	out, err := zkbench(t, "--fixture", smallFixture, "table", "--metric", "memory")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"machine: ubuntu-16-shared\nmetric: memory\n", "1MB", "2MB", "Noir (Barretenberg)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}

	if _, err := zkbench(t, "--fixture", smallFixture, "table", "--machine", "vax"); err == nil {
		t.Errorf("table --machine vax succeeded")
	}

	out, err = zkbench(t, "--fixture", smallFixture, "table", "--framework", "noir,polylang")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Miden") || strings.Index(out, "Noir") > strings.Index(out, "Polylang") {
		t.Errorf("table --framework noir,polylang:\n%s", out)
	}
	if _, err := zkbench(t, "--fixture", smallFixture, "table", "--framework", "zokrates"); err == nil {
		t.Errorf("table --framework zokrates succeeded")
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, err := zkbench(t, "--log-level", "loud", "table"); err == nil {
		t.Errorf("--log-level loud succeeded")
	}
}

func TestCombineUpload(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "benchmarks.json")
	if _, err := zkbench(t, "combine", "--dir", "../../fixture/testdata/benchmarks", "-o", out); err != nil {
		t.Fatal(err)
	}
	store, err := fixture.Open(context.Background(), out)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := store.Meta().LastUpdated, "2023-09-30T08:00:00Z"; got != want {
		t.Errorf("combined lastUpdated = %q, want %q", got, want)
	}
	poly, _ := store.Framework("polylang")
	if _, ok := poly.Metrics.Get("ubuntu-16-shared"); !ok {
		t.Errorf("combined fixture has no polylang results")
	}

	src := "sqlite3:" + filepath.Join(dir, "archive.db")
	id, err := zkbench(t, "upload", "--db", src, out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(id) != "1" {
		t.Errorf("upload printed %q, want snapshot 1", id)
	}
	archived, err := fixture.Open(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	for i, fw := range archived.Frameworks() {
		if want := store.Frameworks()[i]; !fw.Metrics.Equal(want.Metrics) {
			t.Errorf("archived %s results differ from combined results", fw.ID)
		}
	}

	list, err := zkbench(t, "snapshots", "--db", src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(list, "LAST UPDATED") || !strings.Contains(list, "2023-09-30T08:00:00Z") {
		t.Errorf("snapshots output:\n%s", list)
	}
	if got := strings.Count(strings.TrimSpace(list), "\n"); got != 1 {
		t.Errorf("snapshots listed %d rows, want 1:\n%s", got, list)
	}

	if _, err := zkbench(t, "upload", "--db", "sqlite3", out); err == nil {
		t.Errorf("upload with a bad --db succeeded")
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	if _, err := zkbench(t, "--fixture", smallFixture, "render", "-o", dir); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"index.html",
		"ubuntu-64-shared/proof-size.html",
		"chart/ubuntu-16-shared/time/pedersen.svg",
	} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			t.Error(err)
		}
	}

	if _, err := zkbench(t, "--fixture", smallFixture, "render"); err == nil {
		t.Errorf("render without -o succeeded")
	}
}
