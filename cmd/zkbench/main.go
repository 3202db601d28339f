// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Zkbench serves and renders the zk-bench framework comparison site.
//
// Usage:
//
//	zkbench [--config file] [--fixture src] <command> [flags]
//
// The commands are:
//
//	serve     serve the site over HTTP
//	render    write the site as static files
//	table     print the comparison table as text
//	combine   merge per-framework result files into a fixture
//	upload    archive a fixture in a database
//	snapshots list the fixtures archived in a database
//
// The fixture source is a file, gs://bucket/object, sqlite3:dsn or
// mysql:dsn. The default is the fixture built into zkbench.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/polybase/zkbench/fixture"
	"github.com/polybase/zkbench/internal/config"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "zkbench: %v\n", err)
		os.Exit(1)
	}
}

// A cli holds the state shared by all commands. It is filled in
// before any command runs.
type cli struct {
	configPath string
	fixtureSrc string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := new(cli)
	root := &cobra.Command{
		Use:   "zkbench",
		Short: "Compare zero-knowledge proving frameworks",
		Long: `Zkbench shows pre-computed benchmark results of zero-knowledge proving
frameworks side by side, on a choice of machine and metric.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "",
		"Path to a YAML configuration file")
	flags.StringVar(&c.fixtureSrc, "fixture", "",
		"Fixture source, overriding the configuration")
	flags.StringVar(&c.logLevel, "log-level", "",
		"Log level (debug, info, warn, error), overriding the configuration")

	root.AddCommand(
		newServeCmd(c),
		newRenderCmd(c),
		newTableCmd(c),
		newCombineCmd(c),
		newUploadCmd(c),
		newSnapshotsCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	c.cfg = config.Default()
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}
	if c.fixtureSrc != "" {
		c.cfg.Fixture.Source = c.fixtureSrc
	}
	if c.logLevel != "" {
		c.cfg.Log.Level = c.logLevel
	}
	level, err := c.cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	return nil
}

// openFixture loads the configured fixture.
func (c *cli) openFixture(ctx context.Context) (*fixture.Store, error) {
	var opts []option.ClientOption
	if c.cfg.Fixture.Anonymous {
		opts = append(opts, option.WithoutAuthentication())
	}
	store, err := fixture.Open(ctx, c.cfg.Fixture.Source, opts...)
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "loaded fixture",
		slog.String("source", c.cfg.Fixture.Source),
		slog.String("last_updated", store.Meta().LastUpdated))
	return store, nil
}
