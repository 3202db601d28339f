// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/polybase/zkbench/benchtree"
	"github.com/polybase/zkbench/benchunit"
)

// A Formatter turns a resolved value into display text.
type Formatter int

const (
	// Passthrough shows strings as is, numbers in decimal, and
	// sequences as their elements joined by ", ".
	Passthrough Formatter = iota
	// Boolean shows true as ✅ and false as ❌. Other values are
	// passed through.
	Boolean
	// Accelerators shows a list of accelerator names as
	// "✅ Metal, CUDA", or ❌ if the list is empty.
	Accelerators
	// SelectedMetric formats as Duration when the selected metric
	// is "time" and as ByteSize otherwise.
	SelectedMetric
	// Duration shows a {secs, nanos} mapping in seconds with two
	// decimal places.
	Duration
	// ByteSize shows a byte count scaled to KB, MB, etc.
	ByteSize
)

const (
	yes = "✅"
	no  = "❌"
)

func (f Formatter) String() string {
	switch f {
	case Passthrough:
		return "Passthrough"
	case Boolean:
		return "Boolean"
	case Accelerators:
		return "Accelerators"
	case SelectedMetric:
		return "SelectedMetric"
	case Duration:
		return "Duration"
	case ByteSize:
		return "ByteSize"
	}
	return fmt.Sprintf("Formatter(%d)", int(f))
}

// Format formats v under selection sel. If ok is false there is no
// value and Format returns "". Values of an unexpected shape fall back
// to Passthrough.
func (f Formatter) Format(v benchtree.Value, ok bool, sel Selection) string {
	if !ok {
		return ""
	}
	switch f {
	case Boolean:
		if b, isBool := v.Bool(); isBool {
			if b {
				return yes
			}
			return no
		}
	case Accelerators:
		if v.Kind() == benchtree.Sequence {
			if v.Len() == 0 {
				return no
			}
			return yes + " " + passthrough(v)
		}
	case SelectedMetric:
		if sel.Metric == "time" {
			return Duration.Format(v, ok, sel)
		}
		return ByteSize.Format(v, ok, sel)
	case Duration:
		secs, _ := v.Get("secs")
		nanos, _ := v.Get("nanos")
		s, okS := secs.Int()
		n, okN := nanos.Int()
		if okS && okN {
			return benchunit.FormatDuration(s, n)
		}
	case ByteSize:
		if n, isNum := v.Float(); isNum {
			return benchunit.FormatBytes(n)
		}
	}
	return passthrough(v)
}

func passthrough(v benchtree.Value) string {
	switch v.Kind() {
	case benchtree.Null:
		return ""
	case benchtree.String:
		s, _ := v.Str()
		return s
	case benchtree.Number:
		f, _ := v.Float()
		return strconv.FormatFloat(f, 'f', -1, 64)
	case benchtree.Bool:
		b, _ := v.Bool()
		return strconv.FormatBool(b)
	case benchtree.Sequence:
		parts := make([]string, 0, v.Len())
		for _, x := range v.Elems() {
			parts = append(parts, passthrough(x))
		}
		return strings.Join(parts, ", ")
	}
	return v.String()
}
