// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats benchmark measurements for display.
//
// Durations are shown in seconds with two decimal places. Byte counts
// are scaled by powers of 1024 and shown with the familiar "KB", "MB"
// labels, with at most two decimal places and no trailing zeros.
package benchunit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Class specifies how values of a measurement are scaled.
type Class int

const (
	// Decimal values are scaled by powers of 1000 with SI
	// prefixes. Durations in seconds are Decimal.
	Decimal Class = iota
	// Binary values are scaled by powers of 1024. Byte counts are
	// Binary.
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the Class of a measurement given its unit or its
// field path, such as "metrics.proof_size_bytes". Measurements
// counting bytes are Binary. Everything else, including time, is
// Decimal.
func ClassOf(unit string) Class {
	for _, tok := range strings.FieldsFunc(unit, func(r rune) bool {
		return r == '/' || r == '*' || r == '_' || r == ' ' || r == '.'
	}) {
		switch tok {
		case "B", "bytes", "KB", "MB", "GB":
			return Binary
		}
	}
	return Decimal
}

// A Scaler represents a scaling factor for a number and the label to
// print after the scaled value.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Label (e.g., 1 KB => 1024)
	Label  string  // Unit label ("KB", "ms", etc)
	Trim   bool    // Drop trailing zeros after the decimal point
}

// Format formats val according to the scale and appends its label.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	if s.Trim && s.Prec > 0 {
		buf = trimZeros(buf)
	}
	buf = append(buf, s.Label...)
	return string(buf)
}

func trimZeros(buf []byte) []byte {
	i := len(buf)
	for i > 0 && buf[i-1] == '0' {
		i--
	}
	if i > 0 && buf[i-1] == '.' {
		i--
	}
	return buf[:i]
}

type factor struct {
	factor float64
	label  string
}

var byteFactors = []factor{
	{1 << 40, "TB"},
	{1 << 30, "GB"},
	{1 << 20, "MB"},
	{1 << 10, "KB"},
	{1, "B"},
}

var secondFactors = []factor{
	{1, "s"},
	{1e-3, "ms"},
	{1e-6, "µs"},
	{1e-9, "ns"},
}

// CommonScale returns a Scaler to apply to every value in vals. The
// scale is chosen by the non-zero value closest to zero, so that every
// value shows at least three significant digits.
//
// Decimal values are treated as seconds.
func CommonScale(vals []float64, cls Class) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}

	var factors []factor
	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case Decimal:
		factors = secondFactors
	case Binary:
		factors = byteFactors
	}
	if min == 0 {
		f := factors[len(factors)-1]
		if cls == Decimal {
			f = factors[0]
		}
		return Scaler{Prec: 0, Factor: f.factor, Label: f.label}
	}

	f := factors[len(factors)-1]
	for _, cand := range factors {
		if min >= cand.factor {
			f = cand
			break
		}
	}
	scaled := min / f.factor
	prec := 0
	switch {
	case scaled < 10:
		prec = 2
	case scaled < 100:
		prec = 1
	}
	return Scaler{Prec: prec, Factor: f.factor, Label: f.label}
}
