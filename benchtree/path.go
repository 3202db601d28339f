// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtree

import (
	"fmt"
	"strings"
	"unicode"
)

// Sigil marks a path segment as a variable reference. The rest of the
// segment names the variable.
const Sigil = '$'

// A Segment is one step of a Path.
type Segment struct {
	// Name is the literal key, or the variable name if Var is set.
	Name string
	// Var indicates the segment is replaced at resolution time by
	// the binding for Name.
	Var bool
}

func (s Segment) String() string {
	if s.Var {
		return string(Sigil) + s.Name
	}
	return s.Name
}

// A Path is a sequence of segments leading from the root of a tree to
// one of its values. The zero Path is empty and resolves to nothing.
type Path struct {
	segs []Segment
}

// Lit returns a literal segment.
func Lit(name string) Segment { return Segment{Name: name} }

// Var returns a variable segment.
func Var(name string) Segment { return Segment{Name: name, Var: true} }

// IsZero reports whether p has no segments.
func (p Path) IsZero() bool { return len(p.segs) == 0 }

// String returns p in the dotted syntax accepted by ParsePath.
func (p Path) String() string {
	parts := make([]string, len(p.segs))
	for i, s := range p.segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// A SyntaxError is an error produced by parsing a malformed path.
type SyntaxError struct {
	Path string // The original path string
	Off  int    // Byte offset of the error in Path
	Msg  string // Error message
}

func (e *SyntaxError) Error() string {
	// Translate byte offset to a rune offset.
	pos := 0
	for i, r := range e.Path {
		if i >= e.Off {
			break
		}
		if unicode.IsGraphic(r) {
			pos++
		}
	}
	return fmt.Sprintf("syntax error: %s\n\t%s\n\t%*s^", e.Msg, e.Path, pos, "")
}

// ParsePath parses a dotted path such as
// "metrics.$machine.assert.results.0.$metric". Segments are separated
// by "."; a segment beginning with "$" is a variable reference. The
// empty string parses to the empty Path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	var segs []Segment
	off := 0
	for _, part := range strings.Split(s, ".") {
		switch {
		case part == "":
			return Path{}, &SyntaxError{s, off, "empty path segment"}
		case part[0] == Sigil && len(part) == 1:
			return Path{}, &SyntaxError{s, off, "missing variable name"}
		case part[0] == Sigil:
			segs = append(segs, Var(part[1:]))
		default:
			segs = append(segs, Lit(part))
		}
		off += len(part) + 1
	}
	return Path{segs}, nil
}

// MustParsePath is like ParsePath but panics on error. It is intended
// for paths written in the program source.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}
