// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"strconv"
)

// Seconds returns the duration secs + nanos/1e9 in seconds.
func Seconds(secs, nanos int64) float64 {
	return float64(secs) + float64(nanos)/1e9
}

// FormatDuration formats a duration given as whole seconds and
// nanoseconds, fixed to two decimal places: (1, 500000000) is "1.50s"
// and (0, 0) is "0.00s".
func FormatDuration(secs, nanos int64) string {
	return strconv.FormatFloat(Seconds(secs, nanos), 'f', 2, 64) + "s"
}

// ByteScaler returns the Scaler FormatBytes uses for n.
func ByteScaler(n float64) Scaler {
	abs := math.Abs(n)
	i := len(byteFactors) - 1
	for j, cand := range byteFactors {
		if abs >= cand.factor {
			i = j
			break
		}
	}
	// Values that round up to 1024 of a unit are shown in the next.
	if i > 0 && math.Round(abs/byteFactors[i].factor*100)/100 >= 1024 {
		i--
	}
	f := byteFactors[i]
	return Scaler{Prec: 2, Factor: f.factor, Label: f.label, Trim: true}
}

// FormatBytes formats a byte count using the largest 1024-based unit
// not exceeding it, with at most two decimal places: 1048576 is "1MB",
// 1536 is "1.5KB" and 0 is "0B".
func FormatBytes(n float64) string {
	return ByteScaler(n).Format(n)
}
