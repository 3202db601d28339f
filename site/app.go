// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package site serves the zk-bench comparison site.
//
// Construct an App with a fixture Store and call RegisterOnMux to
// serve it, or Export to write it out as static files.
package site

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/polybase/zkbench/analytics"
	"github.com/polybase/zkbench/benchtab"
	"github.com/polybase/zkbench/fixture"
	"github.com/polybase/zkbench/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App serves the comparison site for a single fixture.
type App struct {
	Store *fixture.Store

	// Props are the table rows. If nil, benchtab.DefaultProperties
	// is used.
	Props []benchtab.Property

	// Site holds the page content that is not benchmark data.
	Site config.SiteConfig

	// Sink receives a page view for every page rendered for a GET or
	// POST. If nil, page views are discarded.
	Sink analytics.Sink

	// Registry, if non-nil, receives the app's metrics and is
	// served on /metrics.
	Registry *prometheus.Registry

	Logger *slog.Logger

	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time

	metrics *metrics
}

// RegisterOnMux registers the app's URLs on mux.
func (a *App) RegisterOnMux(mux *http.ServeMux) {
	var reg prometheus.Registerer = prometheus.NewRegistry()
	if a.Registry != nil {
		reg = a.Registry
		mux.Handle("GET /metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))
	}
	a.metrics = newMetrics(reg)
	mux.Handle("/{$}", a.metrics.instrument("index", http.HandlerFunc(a.index)))
	mux.Handle("GET /chart/{file}", a.metrics.instrument("chart", http.HandlerFunc(a.chart)))
}

func (a *App) props() []benchtab.Property {
	if a.Props == nil {
		return benchtab.DefaultProperties()
	}
	return a.Props
}

func (a *App) sink() analytics.Sink {
	if a.Sink == nil {
		return analytics.Nop{}
	}
	return a.Sink
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// project builds the table for sel.
func (a *App) project(sel benchtab.Selection) *benchtab.Table {
	if a.metrics != nil {
		a.metrics.projects.WithLabelValues(sel.Machine, sel.Metric).Inc()
	}
	return benchtab.Project(a.props(), a.Store.Frameworks(), sel)
}

// index handles /.
// A GET shows the default selection. A POST from one of the toggle
// forms shows the posted machine and metric; the selection is never
// part of the URL.
func (a *App) index(w http.ResponseWriter, r *http.Request) {
	sel := benchtab.DefaultSelection()
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		var err error
		sel, err = benchtab.ParseSelection(r.PostForm.Get("machine"), r.PostForm.Get("metric"))
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", 405)
		return
	}

	var buf bytes.Buffer
	if err := a.renderPage(&buf, a.page(sel, linker{})); err != nil {
		a.logger().ErrorContext(r.Context(), "render index", "selection", sel.String(), "err", err)
		http.Error(w, err.Error(), 500)
		return
	}
	if r.Method != http.MethodHead {
		a.sink().Pageview(r.Context(), analytics.Pageview{
			DistinctID: distinctID(r),
			URL:        strings.TrimSuffix(a.Site.BaseURL, "/") + r.URL.Path,
		})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// distinctID derives an anonymous viewer ID from the client address
// and user agent.
func distinctID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	sum := sha256.Sum256([]byte(host + "\x00" + r.UserAgent()))
	return hex.EncodeToString(sum[:8])
}
