// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/polybase/zkbench/analytics"
	"github.com/polybase/zkbench/site"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				c.cfg.Server.ListenAddress = addr
			}
			return c.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "listen", "",
		"Address to listen on, overriding the configuration")
	return cmd
}

func (c *cli) serve(ctx context.Context) error {
	store, err := c.openFixture(ctx)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var sink analytics.Sink = analytics.Nop{}
	if c.cfg.AnalyticsEnabled() {
		ph, err := analytics.NewPostHog(c.cfg.PostHog.Key, c.cfg.PostHog.Host, c.logger)
		if err != nil {
			return err
		}
		sink = ph
	}
	defer func() {
		if err := sink.Close(); err != nil {
			c.logger.Error("error closing analytics", "err", err)
		}
	}()

	app := &site.App{
		Store:    store,
		Site:     c.cfg.Site,
		Sink:     sink,
		Registry: reg,
		Logger:   c.logger,
	}
	mux := http.NewServeMux()
	app.RegisterOnMux(mux)

	l, err := net.Listen("tcp", c.cfg.Server.ListenAddress)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var g run.Group
	g.Add(func() error {
		c.logger.Info("serving", "addr", l.Addr().String(), "analytics", c.cfg.AnalyticsEnabled())
		if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}, func(error) {
		c.logger.Info("stopping HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			c.logger.Error("failed to shut down HTTP server", "err", err)
		}
	})
	g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))

	if err := g.Run(); err != nil {
		if !errors.As(err, &run.SignalError{}) {
			return err
		}
		c.logger.Info("caught signal, exiting", "err", err)
	}
	return nil
}
