// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var valueEqual = cmp.Comparer(func(a, b Value) bool { return a.Equal(b) })

const testDoc = `{
  "name": "miden",
  "metrics": {
    "ubuntu-16-shared": {
      "assert": {
        "results": [
          {
            "name": "assert",
            "time": {"secs": 1, "nanos": 500000000},
            "metrics": {"memory_usage_bytes": 1048576, "proof_size_bytes": 65536}
          }
        ]
      }
    },
    "empty": null
  }
}`

func mustDecode(t *testing.T, s string) Value {
	t.Helper()
	v, err := Decode(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return v
}

func TestResolve(t *testing.T) {
	root := mustDecode(t, testDoc)
	duration := MapOf("secs", Num(1), "nanos", Num(500000000))

	tests := []struct {
		path   string
		b      Bindings
		want   Value
		wantOK bool
	}{
		{"name", nil, Str("miden"), true},
		{"metrics.$machine.assert.results.0.$metric",
			Bindings{"machine": "ubuntu-16-shared", "metric": "time"},
			duration, true},
		{"metrics.$machine.assert.results.0.$metric",
			Bindings{"machine": "ubuntu-16-shared", "metric": "metrics.memory_usage_bytes"},
			Num(1048576), true},
		{"metrics.$machine.assert.results.0.$metric",
			Bindings{"machine": "ubuntu-16-shared", "metric": "metrics.proof_size_bytes"},
			Num(65536), true},
		{"metrics.ubuntu-16-shared.assert.results.0.time.secs", nil, Num(1), true},

		// Absence at any depth.
		{"", nil, Value{}, false},
		{"missing", nil, Value{}, false},
		{"missing.deeper.still", nil, Value{}, false},
		{"metrics.empty.anything", nil, Value{}, false},
		{"metrics.$machine.Pedersen.results.0.$metric",
			Bindings{"machine": "ubuntu-16-shared", "metric": "time"},
			Value{}, false},
		{"metrics.ubuntu-16-shared.assert.results.7", nil, Value{}, false},
		{"metrics.ubuntu-16-shared.assert.results.x", nil, Value{}, false},
		{"name.length", nil, Value{}, false},

		// Unbound and empty bindings are both "no value".
		{"metrics.$machine", nil, Value{}, false},
		{"metrics.$machine", Bindings{"machine": ""}, Value{}, false},
		{"metrics.$machine.assert", Bindings{"other": "ubuntu-16-shared"}, Value{}, false},

		// A compound binding that runs off the tree.
		{"metrics.$machine.assert.results.0.$metric",
			Bindings{"machine": "ubuntu-16-shared", "metric": "metrics.cycles"},
			Value{}, false},
		{"metrics.$machine.assert.results.0.$metric",
			Bindings{"machine": "ubuntu-16-shared", "metric": "time.secs.more"},
			Value{}, false},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			p, err := ParsePath(test.path)
			if err != nil {
				t.Fatalf("ParsePath: %v", err)
			}
			got, ok := Resolve(root, p, test.b)
			if ok != test.wantOK {
				t.Errorf("ok = %v, want %v", ok, test.wantOK)
			}
			if diff := cmp.Diff(test.want, got, valueEqual); diff != "" {
				t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
			}

			// Resolution is idempotent.
			again, ok2 := Resolve(root, p, test.b)
			if ok2 != ok || !again.Equal(got) {
				t.Errorf("second Resolve = %v, %v; first = %v, %v", again, ok2, got, ok)
			}
		})
	}
}

func TestResolveNullRoot(t *testing.T) {
	// Must not panic on lookups into nothing.
	for _, p := range []string{"a", "a.b.c", "$x", "$x.y"} {
		if v, ok := Resolve(Value{}, MustParsePath(p), Bindings{"x": "a.b"}); ok || !v.IsNull() {
			t.Errorf("Resolve(null, %q) = %v, %v; want null, false", p, v, ok)
		}
	}
}

func TestResolveCompoundSubstitution(t *testing.T) {
	// The substituted path must be walked, not used as a key.
	root := MapOf(
		"metrics.memory_usage_bytes", Str("literal key"),
		"metrics", MapOf("memory_usage_bytes", Num(42)),
	)
	got, ok := Resolve(root, MustParsePath("$metric"), Bindings{"metric": "metrics.memory_usage_bytes"})
	if !ok || !got.Equal(Num(42)) {
		t.Errorf("Resolve = %v, %v; want 42, true", got, ok)
	}
}
