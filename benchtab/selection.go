// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"

	"github.com/polybase/zkbench/benchtree"
)

// A Machine is a hardware configuration benchmarks were run on.
type Machine struct {
	ID    string // key in the fixture, e.g. "ubuntu-16-shared"
	Label string // toggle label, e.g. "16x CPU"
}

// A Metric is a measurement dimension that can be displayed.
type Metric struct {
	ID    string // selection value, e.g. "proof size"
	Label string // toggle label
	Slug  string // file name component for exported pages
	// Path is the dotted path of the measurement within a single
	// benchmark result. It is the value bound to $metric.
	Path string
}

// Machines lists the selectable machines in display order.
var Machines = []Machine{
	{ID: "ubuntu-16-shared", Label: "16x CPU"},
	{ID: "ubuntu-64-shared", Label: "64x CPU"},
}

// Metrics lists the selectable metrics in display order.
var Metrics = []Metric{
	{ID: "time", Label: "Time", Slug: "time", Path: "time"},
	{ID: "memory", Label: "Memory", Slug: "memory", Path: "metrics.memory_usage_bytes"},
	{ID: "proof size", Label: "Proof Size", Slug: "proof-size", Path: "metrics.proof_size_bytes"},
}

// LookupMachine returns the Machine with the given ID.
func LookupMachine(id string) (Machine, bool) {
	for _, m := range Machines {
		if m.ID == id {
			return m, true
		}
	}
	return Machine{}, false
}

// LookupMetric returns the Metric with the given ID or slug.
func LookupMetric(id string) (Metric, bool) {
	for _, m := range Metrics {
		if m.ID == id || m.Slug == id {
			return m, true
		}
	}
	return Metric{}, false
}

// A Selection is the machine and metric currently displayed.
type Selection struct {
	Machine string // a Machine ID
	Metric  string // a Metric ID
}

// DefaultSelection returns the selection shown on first load.
func DefaultSelection() Selection {
	return Selection{Machine: Machines[0].ID, Metric: Metrics[0].ID}
}

// ParseSelection returns the Selection for machine and metric, which
// must be a known Machine ID and a known Metric ID or slug. An empty
// argument selects the default.
func ParseSelection(machine, metric string) (Selection, error) {
	sel := DefaultSelection()
	if machine != "" {
		m, ok := LookupMachine(machine)
		if !ok {
			return Selection{}, fmt.Errorf("unknown machine %q", machine)
		}
		sel.Machine = m.ID
	}
	if metric != "" {
		m, ok := LookupMetric(metric)
		if !ok {
			return Selection{}, fmt.Errorf("unknown metric %q", metric)
		}
		sel.Metric = m.ID
	}
	return sel, nil
}

// AllSelections returns every machine and metric combination, machine
// major.
func AllSelections() []Selection {
	var sels []Selection
	for _, ma := range Machines {
		for _, me := range Metrics {
			sels = append(sels, Selection{Machine: ma.ID, Metric: me.ID})
		}
	}
	return sels
}

// Bindings returns the variable bindings for s: "machine" is bound to
// the machine ID and "metric" to the metric's field path. A selection
// naming an unknown metric leaves "metric" unbound.
func (s Selection) Bindings() benchtree.Bindings {
	b := benchtree.Bindings{"machine": s.Machine}
	if m, ok := LookupMetric(s.Metric); ok {
		b["metric"] = m.Path
	}
	return b
}

func (s Selection) String() string {
	return s.Machine + "/" + s.Metric
}
