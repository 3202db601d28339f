// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixture

import (
	"bytes"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/polybase/zkbench/benchtree"
)

// Combine merges the per-framework result files in fsys into a single
// fixture document.
//
// Each file <machine>/<framework>.json holds {"results": [case...]},
// where every case has a "name". The cases end up at
// frameworks.<framework>.<machine>.<name>, keeping the order in which
// they appear. A meta.json file anywhere in the tree replaces the
// document's meta, which otherwise records now as lastUpdated.
//
// Files that are not valid JSON, have no "results", or sit at the root
// of fsys with no machine directory are skipped with a warning to
// logger.
func Combine(fsys iofs.FS, now time.Time, logger *slog.Logger) (benchtree.Value, error) {
	meta := benchtree.MapOf("lastUpdated", benchtree.Str(now.UTC().Format(time.RFC3339)))

	// framework -> machine -> cases, in order of first appearance.
	var fwOrder []string
	machines := make(map[string][]benchtree.Field)

	err := iofs.WalkDir(fsys, ".", func(name string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != ".json" {
			return nil
		}
		data, err := iofs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		v, err := benchtree.Decode(bytes.NewReader(data))
		if err != nil {
			logger.Warn("could not decode JSON", "file", name, "err", err)
			return nil
		}
		if path.Base(name) == "meta.json" {
			meta = v
			return nil
		}
		results, ok := v.Key("results")
		if !ok {
			logger.Warn("'results' key not found", "file", name)
			return nil
		}
		dir := path.Dir(name)
		if dir == "." {
			logger.Warn("result file outside a machine directory", "file", name)
			return nil
		}
		machine := path.Base(dir)
		fw := strings.TrimSuffix(path.Base(name), ".json")

		var cases []benchtree.Field
		for i, c := range results.Elems() {
			n, _ := c.Key("name")
			caseName, ok := n.Str()
			if !ok {
				logger.Warn("result without a name", "file", name, "index", i)
				continue
			}
			cases = append(cases, benchtree.Field{Key: caseName, Value: c})
		}
		if _, ok := machines[fw]; !ok {
			fwOrder = append(fwOrder, fw)
		}
		machines[fw] = append(machines[fw], benchtree.Field{Key: machine, Value: benchtree.Map(cases...)})
		return nil
	})
	if err != nil {
		return benchtree.Value{}, fmt.Errorf("combine: %w", err)
	}

	fws := make([]benchtree.Field, len(fwOrder))
	for i, fw := range fwOrder {
		fws[i] = benchtree.Field{Key: fw, Value: benchtree.Map(machines[fw]...)}
	}
	return benchtree.MapOf(
		"meta", meta,
		"frameworks", benchtree.Map(fws...),
	), nil
}
