// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/polybase/zkbench/benchtab"
	"github.com/polybase/zkbench/benchtree"
	"github.com/polybase/zkbench/benchunit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

var errUnknownCase = errors.New("unknown benchmark case")

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// chart handles /chart/{case}.svg?machine=...&metric=...
func (a *App) chart(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	c, ok := strings.CutSuffix(file, ".svg")
	if !ok || c == "" {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	sel, err := benchtab.ParseSelection(q.Get("machine"), q.Get("metric"))
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	var buf bytes.Buffer
	if err := a.writeChart(&buf, sel, c); err != nil {
		if errors.Is(err, errUnknownCase) {
			http.NotFound(w, r)
			return
		}
		a.logger().ErrorContext(r.Context(), "render chart", "case", c, "selection", sel.String(), "err", err)
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

// writeChart draws the results of benchmark case c under sel as an
// SVG line chart with one line per framework and one X position per
// input.
func (a *App) writeChart(w io.Writer, sel benchtab.Selection, c string) error {
	t := a.project(sel)

	title := ""
	var rows []benchtab.Row
	for _, r := range t.Rows {
		if r.Case != c {
			continue
		}
		if r.Heading {
			title = r.Name
			continue
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w %q", errUnknownCase, c)
	}
	if title == "" {
		title = rows[0].Name
	}

	metric, ok := benchtab.LookupMetric(sel.Metric)
	if !ok {
		return fmt.Errorf("unknown metric %q", sel.Metric)
	}
	cls := benchunit.ClassOf(metric.Path)
	var all []float64
	for _, r := range rows {
		for _, cell := range r.Cells {
			if v, ok := measurement(cell, sel); ok {
				all = append(all, v)
			}
		}
	}
	scale := benchunit.CommonScale(all, cls)

	pl := plot.New()
	pl.Title.Text = title
	pl.Y.Label.Text = fmt.Sprintf("%s (%s)", metric.Label, scale.Label)
	pl.Y.Min = 0
	pl.Legend.Top = true
	pl.Add(plotter.NewGrid())

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	pl.NominalX(names...)

	for i, col := range t.Columns {
		var pts plotter.XYs
		for x, r := range rows {
			if v, ok := measurement(r.Cells[i], sel); ok {
				pts = append(pts, plotter.XY{X: float64(x), Y: v / scale.Factor})
			}
		}
		if len(pts) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		pl.Add(line, points)
		pl.Legend.Add(col.Name, line, points)
	}

	can := vgsvg.New(chartWidth, chartHeight)
	pl.Draw(draw.New(can))
	_, err := can.WriteTo(w)
	return err
}

// measurement returns the numeric value of cell under sel, in
// seconds for time and bytes otherwise.
func measurement(cell benchtab.Cell, sel benchtab.Selection) (float64, bool) {
	if !cell.Present {
		return 0, false
	}
	if sel.Metric == "time" {
		return seconds(cell.Raw)
	}
	return cell.Raw.Float()
}

func seconds(v benchtree.Value) (float64, bool) {
	secs, _ := v.Get("secs")
	nanos, _ := v.Get("nanos")
	s, okS := secs.Int()
	n, okN := nanos.Int()
	if !okS || !okN {
		return 0, false
	}
	return benchunit.Seconds(s, n), true
}
