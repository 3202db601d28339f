// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics instruments the site's handlers.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	projects *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zkbench_http_requests_total",
			Help: "HTTP requests by handler, method and status code.",
		}, []string{"handler", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zkbench_http_request_duration_seconds",
			Help:    "HTTP request latency by handler.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler", "method", "code"}),
		projects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zkbench_table_projections_total",
			Help: "Table projections by machine and metric.",
		}, []string{"machine", "metric"}),
	}
	reg.MustRegister(m.requests, m.duration, m.projects)
	return m
}

// instrument wraps h with request counting and timing under the
// given handler label.
func (m *metrics) instrument(handler string, h http.Handler) http.Handler {
	labels := prometheus.Labels{"handler": handler}
	return promhttp.InstrumentHandlerDuration(m.duration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(m.requests.MustCurryWith(labels), h))
}

