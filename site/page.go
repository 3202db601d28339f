// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"embed"
	"fmt"
	"io"
	"net/url"

	"github.com/google/safehtml/template"
	"github.com/polybase/zkbench/benchtab"
	"github.com/polybase/zkbench/internal/config"
	"github.com/polybase/zkbench/internal/date"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.New("index.tmpl").ParseFS(template.TrustedFSFromEmbed(templateFS), "templates/*.tmpl"))

// pageData is the data passed to index.tmpl.
type pageData struct {
	// Static is set for exported pages, whose toggles are links
	// rather than forms.
	Static bool

	Selection benchtab.Selection
	Machines  []toggle
	Metrics   []toggle
	Table     tableData
	Charts    []chartData

	LastUpdated    string
	LastUpdatedAgo string

	Social []config.Link
	FAQ    []config.FAQ
}

// A toggle switches the page to Machine and Metric.
type toggle struct {
	Label   string
	Machine string
	Metric  string
	Href    string
	Class   string
}

type tableData struct {
	Columns []columnData
	Rows    []rowData
}

type columnData struct {
	Name string
	URL  string
}

type rowData struct {
	Name  string
	Desc  string
	Class string
	Cells []cellData
}

type cellData struct {
	Text  string
	Note  string
	Class string
}

type chartData struct {
	Title string
	URL   string
}

// A linker builds the URLs in a page. The zero linker builds links
// for the server; static linkers build relative links between
// exported files, from a page root levels below the export root.
type linker struct {
	static bool
	root   string
}

// page returns the URL of the page showing sel, or "" if pages are
// reached by form submission.
func (l linker) page(sel benchtab.Selection) string {
	if !l.static {
		return ""
	}
	return l.root + staticPage(sel)
}

func (l linker) chart(sel benchtab.Selection, c string) string {
	if !l.static {
		q := url.Values{"machine": {sel.Machine}, "metric": {sel.Metric}}
		return "/chart/" + url.PathEscape(c) + ".svg?" + q.Encode()
	}
	return l.root + staticChart(sel, c)
}

// staticPage is the export path of the page showing sel.
func staticPage(sel benchtab.Selection) string {
	return sel.Machine + "/" + metricSlug(sel.Metric) + ".html"
}

// staticChart is the export path of the chart of case c under sel.
func staticChart(sel benchtab.Selection, c string) string {
	return "chart/" + sel.Machine + "/" + metricSlug(sel.Metric) + "/" + c + ".svg"
}

func metricSlug(id string) string {
	if m, ok := benchtab.LookupMetric(id); ok {
		return m.Slug
	}
	return id
}

func class(selected bool) string {
	if selected {
		return "toggle selected"
	}
	return "toggle"
}

// page assembles the data for the page showing sel.
func (a *App) page(sel benchtab.Selection, l linker) *pageData {
	t := a.project(sel)
	d := &pageData{
		Static:    l.static,
		Selection: sel,
		Social:    a.Site.Social,
		FAQ:       a.Site.FAQ,
	}
	for _, m := range benchtab.Machines {
		s := benchtab.Selection{Machine: m.ID, Metric: sel.Metric}
		d.Machines = append(d.Machines, toggle{
			Label:   m.Label,
			Machine: s.Machine,
			Metric:  s.Metric,
			Href:    l.page(s),
			Class:   class(m.ID == sel.Machine),
		})
	}
	for _, m := range benchtab.Metrics {
		s := benchtab.Selection{Machine: sel.Machine, Metric: m.ID}
		d.Metrics = append(d.Metrics, toggle{
			Label:   m.Label,
			Machine: s.Machine,
			Metric:  s.Metric,
			Href:    l.page(s),
			Class:   class(m.ID == sel.Metric),
		})
	}

	for _, c := range t.Columns {
		d.Table.Columns = append(d.Table.Columns, columnData{Name: c.Name, URL: c.URL})
	}
	for _, r := range t.Rows {
		row := rowData{
			Name:  r.Name,
			Desc:  r.Desc,
			Class: fmt.Sprintf("indent-%d", r.Indent),
		}
		if r.Heading && r.Case != "" {
			row.Class += " heading"
			d.Charts = append(d.Charts, chartData{Title: r.Name, URL: l.chart(sel, r.Case)})
		}
		for _, c := range r.Cells {
			cell := cellData{Text: c.Text, Note: c.Annotation}
			if !c.Present {
				cell.Class = "missing"
			}
			row.Cells = append(row.Cells, cell)
		}
		d.Table.Rows = append(d.Table.Rows, row)
	}

	if meta := a.Store.Meta(); meta.LastUpdated != "" {
		if ts, err := meta.Time(); err == nil {
			d.LastUpdated = date.Format(ts)
			d.LastUpdatedAgo = date.Since(ts, a.now())
		} else {
			a.logger().Warn("bad lastUpdated in fixture", "lastUpdated", meta.LastUpdated, "err", err)
		}
	}
	return d
}

func (a *App) renderPage(w io.Writer, d *pageData) error {
	return tmpl.ExecuteTemplate(w, "index.tmpl", d)
}
