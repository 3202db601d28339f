// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of a text table. Cells are added row by row with
// Row and Cell, which return the Table so calls can be chained.
//
// The zero Table is empty and ready to use.
type Table struct {
	rows   [][]cell
	widths []int
}

type cell struct {
	value string
	align align
}

// CellOption configures a single cell.
type CellOption func(c *cell)

var (
	Left   CellOption = func(c *cell) { c.align = alignLeft }
	Center CellOption = func(c *cell) { c.align = alignCenter }
	Right  CellOption = func(c *cell) { c.align = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// pad pads s to width w according to a. Left-aligned cells are not
// padded on the right; Format does that only where another cell
// follows.
func (a align) pad(s string, w int) string {
	n := utf8.RuneCountInString(s)
	switch a {
	case alignCenter:
		return strings.Repeat(" ", (w-n)/2) + s
	case alignRight:
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a cell to the current row, starting a row if there is
// none yet.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	r := len(t.rows) - 1
	col := len(t.rows[r])
	t.rows[r] = append(t.rows[r], c)
	for len(t.widths) <= col {
		t.widths = append(t.widths, 0)
	}
	if n := utf8.RuneCountInString(value); n > t.widths[col] {
		t.widths[col] = n
	}
	return t
}

// Format lays out t and writes it to w. Columns are separated by two
// spaces and lines carry no trailing spaces.
func (t *Table) Format(w io.Writer) error {
	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		pending := 0 // spaces owed before the next non-empty cell
		for col, c := range row {
			if col > 0 {
				pending += 2
			}
			s := c.align.pad(c.value, t.widths[col])
			if strings.TrimSpace(s) == "" {
				pending += t.widths[col]
				continue
			}
			line.WriteString(strings.Repeat(" ", pending))
			line.WriteString(s)
			pending = t.widths[col] - utf8.RuneCountInString(s)
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
