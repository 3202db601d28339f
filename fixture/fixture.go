// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixture loads the pre-computed benchmark results shown by
// the site.
//
// A fixture document has the form
//
//	{
//	  "meta": {"lastUpdated": "2023-10-01T12:00:00Z"},
//	  "frameworks": {
//	    "<framework>": {
//	      "<machine>": {
//	        "<case>": {"name": "<case>", "results": [
//	          {"name": "...", "time": {"secs": 1, "nanos": 0},
//	           "metrics": {"memory_usage_bytes": 1, "proof_size_bytes": 1}}
//	        ]}
//	      }
//	    }
//	  }
//	}
//
// A Store joins such a document to a catalog of Frameworks. Stores are
// immutable and safe for concurrent use.
package fixture

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/polybase/zkbench/benchtree"
	"github.com/polybase/zkbench/internal/date"
	"github.com/polybase/zkbench/storage/db"
)

// ErrNoSnapshot is returned when a database source holds no fixture.
var ErrNoSnapshot = db.ErrNoSnapshot

// Meta is the fixture's metadata.
type Meta struct {
	// LastUpdated is when the results were produced, normally in
	// RFC 3339 format. It may be empty.
	LastUpdated string
}

// Time parses m.LastUpdated.
func (m Meta) Time() (time.Time, error) {
	return date.Parse(m.LastUpdated)
}

// A Store is a loaded fixture document joined to a framework catalog.
type Store struct {
	meta       Meta
	frameworks []Framework
}

// NewStore joins doc to catalog. Each Framework's Metrics is set to
// the document's subtree for the framework's FixtureKey, or null if
// the document has none. Framework IDs must be unique.
func NewStore(doc benchtree.Value, catalog []Framework) (*Store, error) {
	if doc.Kind() != benchtree.Mapping {
		return nil, fmt.Errorf("fixture: document is a %s, want a mapping", doc.Kind())
	}
	s := new(Store)
	if meta, ok := doc.Key("meta"); ok {
		if lu, ok := meta.Key("lastUpdated"); ok {
			s.meta.LastUpdated, _ = lu.Str()
		}
	}
	fws, _ := doc.Key("frameworks")
	seen := make(map[string]bool)
	for _, fw := range catalog {
		if seen[fw.ID] {
			return nil, fmt.Errorf("fixture: duplicate framework ID %q", fw.ID)
		}
		seen[fw.ID] = true
		fw.Metrics, _ = fws.Key(fw.FixtureKey())
		s.frameworks = append(s.frameworks, fw)
	}
	return s, nil
}

// Load decodes a fixture document from r and joins it to catalog.
func Load(r io.Reader, catalog []Framework) (*Store, error) {
	doc, err := benchtree.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return NewStore(doc, catalog)
}

// LoadBytes is like Load for an in-memory document.
func LoadBytes(data []byte, catalog []Framework) (*Store, error) {
	return Load(bytes.NewReader(data), catalog)
}

// Meta returns the fixture's metadata.
func (s *Store) Meta() Meta { return s.meta }

// Frameworks returns the joined frameworks in catalog order.
func (s *Store) Frameworks() []Framework {
	return append([]Framework(nil), s.frameworks...)
}

// Framework returns the framework with the given ID.
func (s *Store) Framework(id string) (Framework, bool) {
	for _, fw := range s.frameworks {
		if fw.ID == id {
			return fw, true
		}
	}
	return Framework{}, false
}
