// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/polybase/zkbench/site"
	"github.com/polybase/zkbench/storage/fs"
	"github.com/polybase/zkbench/storage/fs/gcs"
	"github.com/polybase/zkbench/storage/fs/local"
	"github.com/spf13/cobra"
)

func newRenderCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the comparison site as static files",
		Long: `Render writes index.html, one page per machine and metric, and the
charts they show to a local directory or a gs://bucket.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out != "" {
				c.cfg.Export.Dir = out
			}
			return c.render(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "",
		"Output directory or gs://bucket, overriding the configuration")
	return cmd
}

func (c *cli) render(ctx context.Context) error {
	dir := c.cfg.Export.Dir
	if dir == "" {
		return fmt.Errorf("no output directory; use -o")
	}
	store, err := c.openFixture(ctx)
	if err != nil {
		return err
	}

	var fsys fs.FS
	if bucket, ok := strings.CutPrefix(dir, "gs://"); ok {
		gfs, err := gcs.NewFS(ctx, strings.TrimSuffix(bucket, "/"))
		if err != nil {
			return err
		}
		defer gfs.Close()
		fsys = gfs
	} else {
		fsys = local.NewFS(dir)
	}

	app := &site.App{
		Store:  store,
		Site:   c.cfg.Site,
		Logger: c.logger,
	}
	if err := app.Export(ctx, fsys); err != nil {
		return err
	}
	c.logger.Info("rendered site", "dir", dir)
	return nil
}
