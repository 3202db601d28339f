// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtree provides a small typed tree of benchmark data and
// dotted paths for reading values out of it.
//
// A Value is one of null, bool, number, string, sequence or mapping,
// which is exactly the shape of a decoded JSON document. A Path is a
// sequence of segments, each either a literal key or a reference to a
// variable bound at resolution time. Resolve folds a Path over a
// Value; a missing key anywhere along the way yields "no value"
// rather than an error.
package benchtree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Kind is the type of a Value.
type Kind int

const (
	// Null is the kind of the zero Value. It also stands for "no
	// value" throughout this package.
	Null Kind = iota
	Bool
	Number
	String
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Value is an immutable node in a benchmark data tree.
//
// The zero Value is null. Values are cheap to copy; copies share
// their underlying sequence and mapping storage, which must not be
// modified after construction.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	seq  []Value
	m    *mapping
}

// mapping is an insertion-ordered map. Order is kept so that tables
// and re-encoded documents follow the order of the source fixture.
type mapping struct {
	keys []string
	vals map[string]Value
}

// Field is a single key/value pair of a mapping.
type Field struct {
	Key   string
	Value Value
}

// BoolOf returns a bool Value.
func BoolOf(b bool) Value { return Value{kind: Bool, b: b} }

// Num returns a number Value.
func Num(f float64) Value { return Value{kind: Number, num: f} }

// Str returns a string Value.
func Str(s string) Value { return Value{kind: String, str: s} }

// Seq returns a sequence Value holding vs.
func Seq(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: Sequence, seq: vs}
}

// Strs returns a sequence of string Values.
func Strs(ss ...string) Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = Str(s)
	}
	return Seq(vs...)
}

// Map returns a mapping Value with the given fields, in order. If a
// key appears more than once, the last value wins but the key keeps
// its first position, as with a JSON object.
func Map(fields ...Field) Value {
	m := &mapping{vals: make(map[string]Value, len(fields))}
	for _, f := range fields {
		if _, ok := m.vals[f.Key]; !ok {
			m.keys = append(m.keys, f.Key)
		}
		m.vals[f.Key] = f.Value
	}
	return Value{kind: Mapping, m: m}
}

// MapOf is shorthand for Map with alternating string keys and Values.
// It panics if kvs is malformed; it is meant for literals.
func MapOf(kvs ...interface{}) Value {
	if len(kvs)%2 != 0 {
		panic("benchtree.MapOf: odd number of arguments")
	}
	fields := make([]Field, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		fields = append(fields, Field{kvs[i].(string), kvs[i+1].(Value)})
	}
	return Map(fields...)
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null, that is, whether v is "no value".
func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns v's boolean and whether v is a bool.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == Bool }

// Float returns v's number and whether v is a number.
func (v Value) Float() (float64, bool) { return v.num, v.kind == Number }

// Int returns v's number truncated to an int64 and whether v is a
// number that fits in one.
func (v Value) Int() (int64, bool) {
	if v.kind != Number || math.IsNaN(v.num) || v.num < -1<<63 || v.num >= 1<<63 {
		return 0, false
	}
	return int64(v.num), true
}

// Str returns v's string and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == String }

// Len returns the number of elements of a sequence or the number of
// keys of a mapping, and 0 for all other kinds.
func (v Value) Len() int {
	switch v.kind {
	case Sequence:
		return len(v.seq)
	case Mapping:
		return len(v.m.keys)
	}
	return 0
}

// Index returns the i'th element of a sequence. It returns null if v
// is not a sequence or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != Sequence || i < 0 || i >= len(v.seq) {
		return Value{}
	}
	return v.seq[i]
}

// Elems returns the elements of a sequence, or nil. The returned
// slice must not be modified.
func (v Value) Elems() []Value {
	if v.kind != Sequence {
		return nil
	}
	return v.seq
}

// Key returns the value of key k in a mapping and whether it is
// present.
func (v Value) Key(k string) (Value, bool) {
	if v.kind != Mapping {
		return Value{}, false
	}
	x, ok := v.m.vals[k]
	return x, ok
}

// Keys returns the keys of a mapping in order, or nil.
func (v Value) Keys() []string {
	if v.kind != Mapping {
		return nil
	}
	return append([]string(nil), v.m.keys...)
}

// Fields returns the key/value pairs of a mapping in order, or nil.
func (v Value) Fields() []Field {
	if v.kind != Mapping {
		return nil
	}
	fs := make([]Field, len(v.m.keys))
	for i, k := range v.m.keys {
		fs[i] = Field{k, v.m.vals[k]}
	}
	return fs
}

// Get looks up a single path segment in v. For a mapping seg is a
// key; for a sequence seg must be a decimal index in canonical form,
// so "01", "+1" and "-0" match nothing. Get reports false
// for any other kind, for a missing key and for an explicit null.
func (v Value) Get(seg string) (Value, bool) {
	var x Value
	switch v.kind {
	case Mapping:
		x = v.m.vals[seg]
	case Sequence:
		i, err := strconv.Atoi(seg)
		if err != nil || strconv.Itoa(i) != seg {
			return Value{}, false
		}
		x = v.Index(i)
	default:
		return Value{}, false
	}
	return x, !x.IsNull()
}

// Equal reports whether v and w are deeply equal. Mapping key order is
// not significant.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.b == w.b
	case Number:
		return v.num == w.num
	case String:
		return v.str == w.str
	case Sequence:
		if len(v.seq) != len(w.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(w.seq[i]) {
				return false
			}
		}
		return true
	case Mapping:
		if len(v.m.keys) != len(w.m.keys) {
			return false
		}
		for k, x := range v.m.vals {
			y, ok := w.m.vals[k]
			if !ok || !x.Equal(y) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns a compact, JSON-like rendering of v for debugging.
func (v Value) String() string {
	var sb strings.Builder
	v.format(&sb)
	return sb.String()
}

func (v Value) format(sb *strings.Builder) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.b))
	case Number:
		sb.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case String:
		sb.WriteString(strconv.Quote(v.str))
	case Sequence:
		sb.WriteByte('[')
		for i, x := range v.seq {
			if i > 0 {
				sb.WriteByte(',')
			}
			x.format(sb)
		}
		sb.WriteByte(']')
	case Mapping:
		sb.WriteByte('{')
		for i, k := range v.m.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			v.m.vals[k].format(sb)
		}
		sb.WriteByte('}')
	}
}
