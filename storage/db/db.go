// Copyright 2016 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db provides the archive of published benchmark fixtures.
//
// Each call to InsertSnapshot stores one complete fixture document as a
// new row of the Snapshots table. The site only ever reads the most
// recent snapshot.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// ErrNoSnapshot is returned by LatestSnapshot when the archive is empty.
var ErrNoSnapshot = errors.New("no snapshot in archive")

// DB is a high-level interface to the snapshot archive. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertSnapshot *sql.Stmt
	latestSnapshot *sql.Stmt
	countSnapshots *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to configure its connections.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Snapshots (
	SnapshotID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Uploaded BIGINT NOT NULL,
	LastUpdated VARCHAR(64) NOT NULL,
	Content {{if .sqlite3}}BLOB{{else}}LONGBLOB{{end}} NOT NULL
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS SnapshotsUploaded ON Snapshots(Uploaded);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertSnapshot, err = db.sql.Prepare("INSERT INTO Snapshots(Uploaded, LastUpdated, Content) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	db.latestSnapshot, err = db.sql.Prepare("SELECT SnapshotID, Uploaded, LastUpdated, Content FROM Snapshots ORDER BY SnapshotID DESC LIMIT 1")
	if err != nil {
		return err
	}
	db.countSnapshots, err = db.sql.Prepare("SELECT COUNT(*) FROM Snapshots")
	if err != nil {
		return err
	}
	return nil
}

// now is a hook for testing
var now = time.Now

// A Snapshot is one archived fixture document.
type Snapshot struct {
	ID int64
	// Uploaded is when the snapshot was stored, truncated to seconds.
	Uploaded time.Time
	// LastUpdated is the fixture's own meta.lastUpdated string.
	LastUpdated string
	// Content is the raw fixture JSON. ListSnapshots leaves it nil.
	Content []byte
}

// InsertSnapshot stores content as a new snapshot.
func (db *DB) InsertSnapshot(ctx context.Context, lastUpdated string, content []byte) (*Snapshot, error) {
	uploaded := now().UTC().Truncate(time.Second)
	res, err := db.insertSnapshot.ExecContext(ctx, uploaded.Unix(), lastUpdated, content)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		ID:          id,
		Uploaded:    uploaded,
		LastUpdated: lastUpdated,
		Content:     content,
	}, nil
}

// LatestSnapshot returns the most recently inserted snapshot, or
// ErrNoSnapshot if there are none.
func (db *DB) LatestSnapshot(ctx context.Context) (*Snapshot, error) {
	var s Snapshot
	var uploaded int64
	err := db.latestSnapshot.QueryRowContext(ctx).Scan(&s.ID, &uploaded, &s.LastUpdated, &s.Content)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	s.Uploaded = time.Unix(uploaded, 0).UTC()
	return &s, nil
}

// ListSnapshots returns up to limit snapshots, newest first, without
// their content. A limit of zero or less means no limit.
func (db *DB) ListSnapshots(ctx context.Context, limit int) ([]Snapshot, error) {
	query := "SELECT SnapshotID, Uploaded, LastUpdated FROM Snapshots ORDER BY SnapshotID DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		var uploaded int64
		if err := rows.Scan(&s.ID, &uploaded, &s.LastUpdated); err != nil {
			return nil, err
		}
		s.Uploaded = time.Unix(uploaded, 0).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

// CountSnapshots returns the number of rows in the Snapshots table.
func (db *DB) CountSnapshots(ctx context.Context) (int, error) {
	var n int
	err := db.countSnapshots.QueryRowContext(ctx).Scan(&n)
	return n, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertSnapshot, db.latestSnapshot, db.countSnapshots} {
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}
