// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixture

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/polybase/zkbench/storage/db"
	_ "github.com/polybase/zkbench/storage/db/sqlite3"
	"github.com/polybase/zkbench/storage/fs/gcs"
	"google.golang.org/api/option"
)

//go:embed data/benchmarks.json
var defaultFixture []byte

// Default returns the fixture embedded in the binary, joined to the
// built-in Catalog.
func Default() (*Store, error) {
	return LoadBytes(defaultFixture, Catalog())
}

// Open loads the fixture named by src and joins it to the built-in
// Catalog. src is one of
//
//	""                   the embedded fixture
//	gs://bucket/object   an object in Google Cloud Storage
//	sqlite3:dsn          the latest snapshot in a sqlite3 archive
//	mysql:dsn            the latest snapshot in a MySQL archive
//	path                 a file on the local filesystem
//
// opts configure the Cloud Storage client.
func Open(ctx context.Context, src string, opts ...option.ClientOption) (*Store, error) {
	switch {
	case src == "":
		return Default()

	case strings.HasPrefix(src, "gs://"):
		bucket, object, ok := strings.Cut(strings.TrimPrefix(src, "gs://"), "/")
		if !ok || bucket == "" || object == "" {
			return nil, fmt.Errorf("fixture: bad source %q, want gs://bucket/object", src)
		}
		fs, err := gcs.NewFS(ctx, bucket, opts...)
		if err != nil {
			return nil, fmt.Errorf("fixture: %w", err)
		}
		defer fs.Close()
		r, err := fs.NewReader(ctx, object)
		if err != nil {
			return nil, fmt.Errorf("fixture: %w", err)
		}
		defer r.Close()
		return Load(r, Catalog())

	case strings.HasPrefix(src, "sqlite3:"), strings.HasPrefix(src, "mysql:"):
		driver, dsn, _ := strings.Cut(src, ":")
		return openDB(ctx, driver, dsn)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()
	return Load(f, Catalog())
}

func openDB(ctx context.Context, driver, dsn string) (*Store, error) {
	d, err := db.OpenSQL(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("fixture: open %s database: %w", driver, err)
	}
	defer d.Close()
	snap, err := d.LatestSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return LoadBytes(snap.Content, Catalog())
}
