// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixture

import "github.com/polybase/zkbench/benchtree"

// A Framework is one zero-knowledge proving framework shown as a
// column of the comparison table.
type Framework struct {
	// ID identifies the framework. It is unique within a Store
	// and joins table cells to row annotations.
	ID   string
	Name string
	URL  string

	// Key is the framework's key under "frameworks" in the
	// fixture document. If empty, ID is used.
	Key string

	Frontend           string
	ZK                 string
	Unbounded          string
	ExistingLibSupport string
	Audit              string
	EVMVerifier        string
	GPU                []string // nil if there is no GPU support
	OptimisedHash      []string

	// Metrics is the framework's fixture subtree, keyed by machine,
	// then benchmark case. It is null if the fixture has no results
	// for the framework.
	Metrics benchtree.Value
}

// FixtureKey returns the key of f's results in the fixture document.
func (f Framework) FixtureKey() string {
	if f.Key != "" {
		return f.Key
	}
	return f.ID
}

// Tree returns f as a tree value. Attribute fields use the keys
// "id", "name", "url", "frontend", "zk", "unbounded",
// "existingLibSupport", "audit", "evmVerifier", "gpu" and
// "optimisedHash"; the fixture subtree is under "metrics". "gpu" is
// omitted when f has no GPU support.
func (f Framework) Tree() benchtree.Value {
	fields := []benchtree.Field{
		{Key: "id", Value: benchtree.Str(f.ID)},
		{Key: "name", Value: benchtree.Str(f.Name)},
		{Key: "url", Value: benchtree.Str(f.URL)},
		{Key: "frontend", Value: benchtree.Str(f.Frontend)},
		{Key: "zk", Value: benchtree.Str(f.ZK)},
		{Key: "unbounded", Value: benchtree.Str(f.Unbounded)},
		{Key: "existingLibSupport", Value: benchtree.Str(f.ExistingLibSupport)},
		{Key: "audit", Value: benchtree.Str(f.Audit)},
		{Key: "evmVerifier", Value: benchtree.Str(f.EVMVerifier)},
	}
	if f.GPU != nil {
		fields = append(fields, benchtree.Field{Key: "gpu", Value: benchtree.Strs(f.GPU...)})
	}
	fields = append(fields,
		benchtree.Field{Key: "optimisedHash", Value: benchtree.Strs(f.OptimisedHash...)},
		benchtree.Field{Key: "metrics", Value: f.Metrics},
	)
	return benchtree.Map(fields...)
}

// Catalog returns the built-in framework descriptions, in display
// order, without metrics. Each call returns a fresh slice.
func Catalog() []Framework {
	return []Framework{
		{
			ID:                 "polylang",
			Name:               "Polylang",
			URL:                "https://polylang.dev",
			Frontend:           "Typescript-like",
			ZK:                 "STARK",
			Unbounded:          "✅",
			ExistingLibSupport: "❌",
			Audit:              "❌ Planned 2024",
			EVMVerifier:        "⚠️",
			GPU:                []string{"Metal"},
			OptimisedHash:      []string{"RPO", "Blake3", "SHA-256"},
		},
		{
			ID:                 "miden",
			Name:               "Miden",
			URL:                "https://wiki.polygon.technology/docs/miden/",
			Frontend:           "MASM (Assembly)",
			ZK:                 "STARK / zkVM",
			Unbounded:          "✅",
			ExistingLibSupport: "⚠️",
			Audit:              "❌ Planned 2024",
			EVMVerifier:        "⚠️",
			GPU:                []string{"Metal"},
			OptimisedHash:      []string{"RPO", "Blake3", "SHA-256"},
		},
		{
			ID:                 "risc_zero",
			Key:                "risc-zero",
			Name:               "Risc Zero",
			URL:                "https://risczero.com",
			Frontend:           "Rust, C, C++",
			ZK:                 "STARK / zkVM",
			Unbounded:          "✅",
			ExistingLibSupport: "✅",
			Audit:              "❌ Planned 2024",
			EVMVerifier:        "✅",
			GPU:                []string{"Metal", "CUDA"},
			OptimisedHash:      []string{"SHA-256"},
		},
		{
			ID:                 "noir",
			Name:               "Noir (Barretenberg)",
			URL:                "https://noir-lang.org",
			Frontend:           "Rust-like",
			ZK:                 "SNARK",
			Unbounded:          "❌",
			ExistingLibSupport: "⚠️",
			Audit:              "❌ Planned 2024",
			EVMVerifier:        "✅",
			OptimisedHash:      []string{"Pedersen", "SHA-256", "Keccak256", "Blake2"},
		},
		{
			ID:                 "leo",
			Name:               "Leo",
			URL:                "https://leo-lang.org/",
			Frontend:           "Leo (DSL)",
			ZK:                 "SNARK",
			Unbounded:          "❌",
			ExistingLibSupport: "⚠️",
			Audit:              "❌ Planned 2023",
			EVMVerifier:        "❌",
			OptimisedHash:      []string{"Pedersen", "SHA3-256", "Keccak256", "Poseidon", "BHP"},
		},
	}
}
