// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/polybase/zkbench/fixture"
	"github.com/spf13/cobra"
)

func newCombineCmd(c *cli) *cobra.Command {
	var dir, out string
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Merge per-framework result files into a fixture",
		Long: `Combine reads <dir>/<machine>/<framework>.json result files and an
optional meta.json and writes a single fixture document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := fixture.Combine(os.DirFS(dir), time.Now(), c.logger)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o666); err != nil {
				return err
			}
			c.logger.Info("wrote fixture", "file", out)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&dir, "dir", ".benchmarks",
		"Directory of result files")
	flags.StringVarP(&out, "out", "o", "",
		"Output file (default standard output)")
	return cmd
}
