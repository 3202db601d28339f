// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab projects benchmark fixtures onto the comparison
// table: one row per Property, one column per framework.
package benchtab

import (
	"fmt"
	"io"
	"strings"

	"github.com/polybase/zkbench/benchtree"
	"github.com/polybase/zkbench/fixture"
	"github.com/polybase/zkbench/internal/texttab"
)

// A Table is the comparison grid for a single Selection.
type Table struct {
	Selection Selection
	Columns   []Column
	Rows      []Row
}

// A Column identifies the framework shown in a column.
type Column struct {
	ID   string
	Name string
	URL  string
}

// A Row is one projected Property.
type Row struct {
	Name   string
	Desc   string
	Indent int
	Case   string
	// Heading is set for rows with no Path, which only title the
	// rows below them.
	Heading bool
	// Cells has one entry per Column, in Column order.
	Cells []Cell
}

// A Cell is the value of one Property for one framework.
type Cell struct {
	FrameworkID string
	// Raw is the resolved value and Present reports whether there
	// was one.
	Raw     benchtree.Value
	Present bool
	// Text is the formatted value, or the row's placeholder if
	// there was no value.
	Text string
	// Annotation is the row's note for this framework, if any.
	Annotation string
}

// Project builds the Table of props against fws under sel. Each cell
// resolves its row's Path against the framework's Tree, with sel's
// bindings, and formats the result with the row's Formatter.
//
// Project is pure: the same arguments always give equal Tables.
func Project(props []Property, fws []fixture.Framework, sel Selection) *Table {
	t := &Table{Selection: sel}
	trees := make([]benchtree.Value, len(fws))
	for i, fw := range fws {
		t.Columns = append(t.Columns, Column{ID: fw.ID, Name: fw.Name, URL: fw.URL})
		trees[i] = fw.Tree()
	}
	b := sel.Bindings()
	for _, p := range props {
		row := Row{
			Name:    p.Name,
			Desc:    p.Desc,
			Indent:  p.Indent,
			Case:    p.Case,
			Heading: p.Path.IsZero(),
			Cells:   make([]Cell, len(fws)),
		}
		for i, fw := range fws {
			v, ok := benchtree.Resolve(trees[i], p.Path, b)
			text := p.Placeholder
			if ok {
				text = p.Formatter.Format(v, ok, sel)
			}
			row.Cells[i] = Cell{
				FrameworkID: fw.ID,
				Raw:         v,
				Present:     ok,
				Text:        text,
				Annotation:  p.Annotations[fw.ID],
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Cell returns the cell in the first row named row and the column of
// framework fwID.
func (t *Table) Cell(row, fwID string) (Cell, bool) {
	for _, r := range t.Rows {
		if r.Name != row {
			continue
		}
		for _, c := range r.Cells {
			if c.FrameworkID == fwID {
				return c, true
			}
		}
		return Cell{}, false
	}
	return Cell{}, false
}

// WriteText writes t to w as a fixed-width text table, preceded by
// the selection. Cells with an annotation are marked with "*" and the
// annotations are listed after the table.
func (t *Table) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "machine: %s\nmetric: %s\n\n", t.Selection.Machine, t.Selection.Metric)

	var tab texttab.Table
	tab.Row().Cell("")
	for _, c := range t.Columns {
		tab.Cell(c.Name, texttab.Center)
	}
	var notes []string
	for _, r := range t.Rows {
		tab.Row().Cell(strings.Repeat("  ", r.Indent) + r.Name)
		for i, c := range r.Cells {
			text := c.Text
			if c.Annotation != "" {
				text += "*"
				notes = append(notes, fmt.Sprintf("* %s, %s: %s", r.Name, t.Columns[i].Name, c.Annotation))
			}
			tab.Cell(text, texttab.Right)
		}
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	if len(notes) > 0 {
		fmt.Fprintln(w)
	}
	for _, n := range notes {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
