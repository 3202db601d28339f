// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"

	"github.com/polybase/zkbench/benchtree"
)

// A Property describes one row of the comparison table.
type Property struct {
	Name string
	// Desc explains the row. It applies to every framework.
	Desc string
	// Path locates the row's value in a framework's tree. A zero
	// Path gives every cell no value, as for group headings.
	Path benchtree.Path
	// Indent is the nesting depth of the row. It only affects
	// presentation.
	Indent int
	// Annotations holds per-framework notes, keyed by framework ID.
	Annotations map[string]string
	Formatter   Formatter
	// Placeholder is shown when the path resolves to no value.
	Placeholder string
	// Case is the benchmark case the row belongs to, if any.
	Case string
}

// NotSupported is the placeholder of benchmark rows.
const NotSupported = "❌"

// resultPath returns the path of result i of a benchmark case under
// the selected machine and metric.
func resultPath(c string, i int) benchtree.Path {
	return benchtree.MustParsePath(fmt.Sprintf("metrics.$machine.%s.results.%d.$metric", c, i))
}

// group returns a heading for benchmark case c followed by one
// indented row per input.
func group(name, desc, c string, inputs []string, notes map[string]string) []Property {
	props := []Property{{Name: name, Desc: desc, Case: c}}
	for i, in := range inputs {
		props = append(props, Property{
			Name:        in,
			Path:        resultPath(c, i),
			Indent:      1,
			Annotations: notes,
			Formatter:   SelectedMetric,
			Placeholder: NotSupported,
			Case:        c,
		})
	}
	return props
}

// DefaultProperties returns the rows of the comparison table shown on
// the site. Each call returns fresh values.
func DefaultProperties() []Property {
	props := []Property{
		{
			Name: "Frontend",
			Desc: "The language programs are written in.",
			Path: benchtree.MustParsePath("frontend"),
		},
		{
			Name: "ZK",
			Desc: "The proving system used.",
			Path: benchtree.MustParsePath("zk"),
		},
		{
			Name:      "Unbounded",
			Desc:      "Whether programs can run for an unbounded number of steps, e.g. loops with a dynamic bound.",
			Path:      benchtree.MustParsePath("unbounded"),
			Formatter: Boolean,
		},
		{
			Name:      "External Libraries",
			Desc:      "Whether libraries from the frontend language's existing ecosystem can be used.",
			Path:      benchtree.MustParsePath("existingLibSupport"),
			Formatter: Boolean,
			Annotations: map[string]string{
				"miden": "Only libraries written in Miden assembly.",
				"noir":  "Only libraries written in Noir.",
				"leo":   "Only libraries written in Leo.",
			},
		},
		{
			Name:        "GPU",
			Desc:        "GPU acceleration for proving.",
			Path:        benchtree.MustParsePath("gpu"),
			Formatter:   Accelerators,
			Placeholder: NotSupported,
		},
		{
			Name: "Optimised Hash",
			Desc: "Hash functions with optimised circuits or precompiles.",
			Path: benchtree.MustParsePath("optimisedHash"),
		},
		{
			Name: "Audit",
			Desc: "Whether the framework has been audited.",
			Path: benchtree.MustParsePath("audit"),
		},
		{
			Name: "EVM Verifier",
			Desc: "Whether proofs can be verified on an EVM chain.",
			Path: benchtree.MustParsePath("evmVerifier"),
			Annotations: map[string]string{
				"polylang": "Planned, by wrapping the STARK proof in a SNARK.",
				"miden":    "Planned, by wrapping the STARK proof in a SNARK.",
			},
		},
	}

	props = append(props, Property{
		Name:        "Assert",
		Desc:        "Proves that a single assertion holds. Measures the fixed overhead of proving.",
		Path:        resultPath("assert", 0),
		Formatter:   SelectedMetric,
		Placeholder: NotSupported,
		Case:        "assert",
	})
	props = append(props, group("SHA-256",
		"Hashes an input of the given size with SHA-256.",
		"sha256",
		[]string{"1 byte", "10 bytes", "100 bytes", "1000 bytes"},
		map[string]string{
			"risc_zero": "Uses the SHA-256 accelerator circuit.",
		})...)
	props = append(props, group("Fibonacci",
		"Computes the nth Fibonacci number.",
		"fibonacci",
		[]string{"n = 1", "n = 10", "n = 100"},
		nil)...)
	props = append(props, Property{
		Name:        "Merkle Tree Membership",
		Desc:        "Proves that a leaf is a member of a Merkle tree.",
		Path:        resultPath("merkle", 0),
		Formatter:   SelectedMetric,
		Placeholder: NotSupported,
		Case:        "merkle",
	})
	props = append(props, group("Blake3",
		"Hashes an input of the given size with Blake3.",
		"blake3",
		[]string{"1 byte", "10 bytes", "100 bytes", "1000 bytes"},
		nil)...)
	props = append(props, group("Pedersen",
		"Computes a Pedersen hash of an input of the given size.",
		"pedersen",
		[]string{"1k bytes", "10k bytes"},
		map[string]string{
			"noir": "Pedersen is Noir's native hash.",
		})...)
	return props
}
