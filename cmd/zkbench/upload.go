// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/polybase/zkbench/fixture"
	"github.com/spf13/cobra"
)

func newUploadCmd(c *cli) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "upload --db driver:dsn file",
		Short: "Archive a fixture in a database",
		Long: `Upload stores a fixture file as a new snapshot. Sources of the form
driver:dsn serve the latest snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			store, err := fixture.LoadBytes(content, fixture.Catalog())
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			d, err := openArchive(target)
			if err != nil {
				return err
			}
			defer d.Close()
			snap, err := d.InsertSnapshot(cmd.Context(), store.Meta().LastUpdated, content)
			if err != nil {
				return err
			}
			c.logger.Info("uploaded snapshot",
				"id", snap.ID,
				"last_updated", snap.LastUpdated,
				"bytes", len(content))
			fmt.Fprintln(cmd.OutOrStdout(), snap.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "db", "",
		"Database as driver:dsn, e.g. sqlite3:archive.db")
	cmd.MarkFlagRequired("db")
	return cmd
}
