// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/polybase/zkbench/internal/texttab"
	"github.com/polybase/zkbench/storage/db"
	"github.com/spf13/cobra"
)

func newSnapshotsCmd(c *cli) *cobra.Command {
	var (
		target string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "snapshots --db driver:dsn",
		Short: "List the fixtures archived in a database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := openArchive(target)
			if err != nil {
				return err
			}
			defer d.Close()
			snaps, err := d.ListSnapshots(cmd.Context(), limit)
			if err != nil {
				return err
			}
			c.logger.Debug("listed snapshots", "count", len(snaps))

			var tab texttab.Table
			tab.Row().Cell("ID").Cell("UPLOADED").Cell("LAST UPDATED")
			for _, s := range snaps {
				tab.Row().
					Cell(strconv.FormatInt(s.ID, 10), texttab.Right).
					Cell(s.Uploaded.Format(time.RFC3339)).
					Cell(s.LastUpdated)
			}
			return tab.Format(cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&target, "db", "",
		"Database as driver:dsn, e.g. sqlite3:archive.db")
	flags.IntVar(&limit, "limit", 20,
		"Maximum number of snapshots to list (0 for all)")
	cmd.MarkFlagRequired("db")
	return cmd
}

// openArchive opens the snapshot database named by a driver:dsn
// string.
func openArchive(target string) (*db.DB, error) {
	driver, dsn, ok := strings.Cut(target, ":")
	if !ok || dsn == "" {
		return nil, fmt.Errorf("bad --db %q, want driver:dsn", target)
	}
	return db.OpenSQL(driver, dsn)
}
