// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"context"
	"fmt"
	"io"

	"github.com/polybase/zkbench/benchtab"
	"github.com/polybase/zkbench/storage/fs"
)

// Export writes the site as static files to fsys: index.html for the
// default selection, <machine>/<metric>.html for every selection and
// the charts they show under chart/. Toggles in exported pages are
// relative links, and no analytics are sent.
func (a *App) Export(ctx context.Context, fsys fs.FS) error {
	def := benchtab.DefaultSelection()
	if err := a.exportPage(ctx, fsys, "index.html", a.page(def, linker{static: true})); err != nil {
		return err
	}
	for _, sel := range benchtab.AllSelections() {
		d := a.page(sel, linker{static: true, root: "../"})
		if err := a.exportPage(ctx, fsys, staticPage(sel), d); err != nil {
			return err
		}
		for _, c := range chartCases(a.project(sel)) {
			name := staticChart(sel, c)
			err := writeFile(ctx, fsys, name, "image/svg+xml", func(w io.Writer) error {
				return a.writeChart(w, sel, c)
			})
			if err != nil {
				return err
			}
		}
		a.logger().Info("exported page", "selection", sel.String())
	}
	return nil
}

func (a *App) exportPage(ctx context.Context, fsys fs.FS, name string, d *pageData) error {
	return writeFile(ctx, fsys, name, "text/html; charset=utf-8", func(w io.Writer) error {
		return a.renderPage(w, d)
	})
}

// chartCases returns the benchmark cases of t that have a heading row.
func chartCases(t *benchtab.Table) []string {
	var cases []string
	for _, r := range t.Rows {
		if r.Heading && r.Case != "" {
			cases = append(cases, r.Case)
		}
	}
	return cases
}

// writeFile creates name in fsys with the given content type and
// fills it with write.
func writeFile(ctx context.Context, fsys fs.FS, name, contentType string, write func(io.Writer) error) error {
	w, err := fsys.NewWriter(ctx, name, map[string]string{"Content-Type": contentType})
	if err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	if err := write(w); err != nil {
		w.CloseWithError(err)
		return fmt.Errorf("export %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	return nil
}
