// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtree

import "strings"

// Bindings maps variable names to their substitutions. A substitution
// may itself be a dotted path, such as "metrics.memory_usage_bytes",
// in which case each of its parts is looked up in turn.
type Bindings map[string]string

// Resolve follows p from root and returns the value it reaches.
//
// Segments are processed left to right. A literal segment is looked up
// in the current value. A variable segment is replaced by its binding,
// split on "."; each part is then looked up in the current value
// before moving on to the next segment of p. Resolution stops with
// ok == false as soon as the current value is absent, a key is
// missing, or a variable is unbound or bound to the empty string. An
// empty path resolves to nothing.
//
// Resolve never panics and has no side effects.
func Resolve(root Value, p Path, b Bindings) (v Value, ok bool) {
	if p.IsZero() {
		return Value{}, false
	}
	cur := root
	for _, seg := range p.segs {
		if cur.IsNull() {
			return Value{}, false
		}
		if !seg.Var {
			if cur, ok = cur.Get(seg.Name); !ok {
				return Value{}, false
			}
			continue
		}
		sub := b[seg.Name]
		if sub == "" {
			return Value{}, false
		}
		for _, part := range strings.Split(sub, ".") {
			if cur.IsNull() {
				return Value{}, false
			}
			if cur, ok = cur.Get(part); !ok {
				return Value{}, false
			}
		}
	}
	return cur, !cur.IsNull()
}
