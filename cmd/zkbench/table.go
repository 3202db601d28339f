// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/polybase/zkbench/benchtab"
	"github.com/spf13/cobra"
)

func newTableCmd(c *cli) *cobra.Command {
	var (
		machine, metric string
		frameworks      []string
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the comparison table as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := benchtab.ParseSelection(machine, metric)
			if err != nil {
				return err
			}
			store, err := c.openFixture(cmd.Context())
			if err != nil {
				return err
			}
			fws := store.Frameworks()
			if len(frameworks) > 0 {
				fws = nil
				for _, id := range frameworks {
					fw, ok := store.Framework(id)
					if !ok {
						return fmt.Errorf("unknown framework %q", id)
					}
					fws = append(fws, fw)
				}
			}
			t := benchtab.Project(benchtab.DefaultProperties(), fws, sel)
			return t.WriteText(cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&machine, "machine", "",
		"Machine to show (default ubuntu-16-shared)")
	flags.StringVar(&metric, "metric", "",
		"Metric to show: time, memory or proof-size (default time)")
	flags.StringSliceVar(&frameworks, "framework", nil,
		"Frameworks to show, by ID (default all)")
	return cmd
}
