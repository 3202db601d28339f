// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestFormatDuration(t *testing.T) {
	test := func(secs, nanos int64, want string) {
		t.Helper()
		if got := FormatDuration(secs, nanos); got != want {
			t.Errorf("for %d s %d ns, got %s, want %s", secs, nanos, got, want)
		}
	}
	test(1, 500000000, "1.50s")
	test(0, 0, "0.00s")
	test(0, 4999999, "0.00s")
	test(0, 5000001, "0.01s")
	test(12, 345678901, "12.35s")
	test(120, 0, "120.00s")
}

func TestFormatBytes(t *testing.T) {
	test := func(n float64, want string) {
		t.Helper()
		if got := FormatBytes(n); got != want {
			t.Errorf("for %v, got %s, want %s", n, got, want)
		}
	}
	test(0, "0B")
	test(1, "1B")
	test(1023, "1023B")
	test(1023.999, "1KB")
	test(1048570, "1023.99KB")
	test(1048575, "1MB")
	test(1073741823, "1GB")
	test(-1048575, "-1MB")
	test(1024, "1KB")
	test(1536, "1.5KB")
	test(1048576, "1MB")
	test(1048576*1.25, "1.25MB")
	test(1<<30, "1GB")
	test(3.333*(1<<30), "3.33GB")
	test(5*(1<<40), "5TB")
	test(2048*(1<<40), "2048TB")
}

func TestCommonScale(t *testing.T) {
	test := func(vals []float64, cls Class, want string) {
		t.Helper()
		s := CommonScale(vals, cls)
		if got := s.Format(vals[len(vals)-1]); got != want {
			t.Errorf("for %v %s, got %s, want %s", vals, cls, got, want)
		}
	}
	test([]float64{0}, Decimal, "0s")
	test([]float64{0}, Binary, "0B")
	test([]float64{1.5}, Decimal, "1.50s")
	test([]float64{0.0125, 2}, Decimal, "2000.0ms")
	test([]float64{0.25}, Decimal, "250ms")
	test([]float64{2048, 1 << 20}, Binary, "1024.00KB")
	test([]float64{50 * (1 << 20)}, Binary, "50.0MB")
	test([]float64{500 * (1 << 20)}, Binary, "500MB")
}

func TestClassOf(t *testing.T) {
	test := func(unit string, cls Class) {
		t.Helper()
		if got := ClassOf(unit); got != cls {
			t.Errorf("for %s, want %s, got %s", unit, cls, got)
		}
	}
	test("sec", Decimal)
	test("time", Decimal)
	test("B", Binary)
	test("memory_usage_bytes", Binary)
	test("proof_size_bytes", Binary)
	test("metrics.memory_usage_bytes", Binary)
	test("metrics.proof_size_bytes", Binary)
	test("metrics.bytesize", Decimal)
	test("B/op", Binary)
}
