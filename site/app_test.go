// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/polybase/zkbench/analytics"
	"github.com/polybase/zkbench/fixture"
	"github.com/polybase/zkbench/internal/config"
	"github.com/polybase/zkbench/site"
	"github.com/polybase/zkbench/storage/fs"
	"github.com/prometheus/client_golang/prometheus"
)

type testApp struct {
	app *site.App
	rec *analytics.Recorder
	srv *httptest.Server
}

func newTestApp(t *testing.T, reg *prometheus.Registry) *testApp {
	t.Helper()
	data, err := os.ReadFile("../fixture/testdata/small.json")
	if err != nil {
		t.Fatal(err)
	}
	store, err := fixture.LoadBytes(data, fixture.Catalog())
	if err != nil {
		t.Fatal(err)
	}
	rec := new(analytics.Recorder)
	app := &site.App{
		Store:    store,
		Site:     config.Default().Site,
		Sink:     rec,
		Registry: reg,
		Now:      func() time.Time { return time.Date(2023, 10, 2, 12, 0, 0, 0, time.UTC) },
	}
	mux := http.NewServeMux()
	app.RegisterOnMux(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &testApp{app: app, rec: rec, srv: srv}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func checkContains(t *testing.T, body string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Errorf("body does not contain %q", w)
		}
	}
}

func TestIndex(t *testing.T) {
	a := newTestApp(t, nil)
	resp, err := http.Get(a.srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != 200 {
		t.Fatalf("GET /: %s\n%s", resp.Status, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	checkContains(t, body,
		"Noir (Barretenberg)",
		"1.50s",
		"0.25s",
		"Last updated 1st October 2023 (1 day ago)",
		"What is zk-bench?",
		`<form method="post" action="/">`,
		`<button type="submit" class="toggle selected">16x CPU</button>`,
		`<button type="submit" class="toggle">Memory</button>`,
	)

	evs := a.rec.Events()
	if len(evs) != 1 {
		t.Fatalf("got %d page views, want 1", len(evs))
	}
	if evs[0].URL != "https://zkbench.dev/" {
		t.Errorf("page view URL = %q", evs[0].URL)
	}
	if evs[0].DistinctID == "" {
		t.Errorf("page view has no distinct ID")
	}
}

func TestIndexHead(t *testing.T) {
	a := newTestApp(t, nil)
	for i := 0; i < 3; i++ {
		resp, err := http.Head(a.srv.URL + "/")
		if err != nil {
			t.Fatal(err)
		}
		readBody(t, resp)
		if resp.StatusCode != 200 {
			t.Fatalf("HEAD /: %s", resp.Status)
		}
	}
	if n := len(a.rec.Events()); n != 0 {
		t.Errorf("got %d page views for HEAD requests, want 0", n)
	}

	resp, err := http.Get(a.srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if n := len(a.rec.Events()); n != 1 {
		t.Errorf("got %d page views after one GET, want 1", n)
	}
}

func TestIndexToggle(t *testing.T) {
	a := newTestApp(t, nil)
	for _, test := range []struct {
		machine, metric string
		want            []string
	}{
		{"ubuntu-16-shared", "memory", []string{"1MB", "2MB", `class="toggle selected">Memory</button>`}},
		{"ubuntu-16-shared", "proof size", []string{"1.5KB", "2KB"}},
		{"ubuntu-64-shared", "time", []string{"0.00s", `class="toggle selected">64x CPU</button>`}},
		{"", "", []string{"1.50s"}},
	} {
		resp, err := http.PostForm(a.srv.URL+"/", url.Values{"machine": {test.machine}, "metric": {test.metric}})
		if err != nil {
			t.Fatal(err)
		}
		body := readBody(t, resp)
		if resp.StatusCode != 200 {
			t.Errorf("POST %s/%s: %s", test.machine, test.metric, resp.Status)
			continue
		}
		checkContains(t, body, test.want...)
	}
	if n := len(a.rec.Events()); n != 4 {
		t.Errorf("got %d page views, want 4", n)
	}
}

func TestIndexErrors(t *testing.T) {
	a := newTestApp(t, nil)

	resp, err := http.PostForm(a.srv.URL+"/", url.Values{"machine": {"vax"}})
	if err != nil {
		t.Fatal(err)
	}
	if body := readBody(t, resp); resp.StatusCode != 400 || !strings.Contains(body, `unknown machine "vax"`) {
		t.Errorf("POST machine=vax: %s %q", resp.Status, body)
	}

	req, _ := http.NewRequest("PUT", a.srv.URL+"/", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != 405 {
		t.Errorf("PUT /: %s, want 405", resp.Status)
	}

	resp, err = http.Get(a.srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != 404 {
		t.Errorf("GET /nope: %s, want 404", resp.Status)
	}

	if n := len(a.rec.Events()); n != 0 {
		t.Errorf("got %d page views for failed requests", n)
	}
}

func TestChart(t *testing.T) {
	a := newTestApp(t, nil)
	for _, test := range []struct {
		path string
		code int
	}{
		{"/chart/pedersen.svg?machine=ubuntu-16-shared&metric=time", 200},
		{"/chart/sha256.svg?metric=proof-size", 200},
		{"/chart/pedersen.svg", 200},
		{"/chart/pedersen.png", 404},
		{"/chart/nope.svg", 404},
		{"/chart/pedersen.svg?metric=gas", 400},
	} {
		resp, err := http.Get(a.srv.URL + test.path)
		if err != nil {
			t.Fatal(err)
		}
		body := readBody(t, resp)
		if resp.StatusCode != test.code {
			t.Errorf("GET %s: %s, want %d", test.path, resp.Status, test.code)
			continue
		}
		if test.code != 200 {
			continue
		}
		if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("GET %s: Content-Type = %q", test.path, ct)
		}
		if !strings.Contains(body, "<svg") {
			t.Errorf("GET %s: not an SVG", test.path)
		}
	}
}

func TestChartAxis(t *testing.T) {
	a := newTestApp(t, nil)
	for _, test := range []struct {
		metric, want string
	}{
		{"time", "Time (s)"},
		{"memory", "Memory (MB)"},
		{"proof-size", "Proof Size (KB)"},
	} {
		resp, err := http.Get(a.srv.URL + "/chart/pedersen.svg?machine=ubuntu-16-shared&metric=" + test.metric)
		if err != nil {
			t.Fatal(err)
		}
		if body := readBody(t, resp); !strings.Contains(body, test.want) {
			t.Errorf("%s chart has no axis label %q", test.metric, test.want)
		}
	}
}

func TestMetrics(t *testing.T) {
	a := newTestApp(t, prometheus.NewRegistry())
	resp, err := http.Get(a.srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)

	resp, err = http.Get(a.srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)
	checkContains(t, body,
		`zkbench_http_requests_total{code="200",handler="index",method="get"} 1`,
		`zkbench_table_projections_total{machine="ubuntu-16-shared",metric="time"} 1`,
		"zkbench_http_request_duration_seconds_bucket",
	)
}

func TestExport(t *testing.T) {
	a := newTestApp(t, nil)
	mem := fs.NewMemFS()
	if err := a.app.Export(context.Background(), mem); err != nil {
		t.Fatal(err)
	}

	files := mem.Files()
	if len(files) != 31 {
		t.Errorf("exported %d files, want 31:\n%s", len(files), strings.Join(files, "\n"))
	}

	index, meta, ok := mem.Content("index.html")
	if !ok {
		t.Fatal("no index.html")
	}
	if ct := meta["Content-Type"]; ct != "text/html; charset=utf-8" {
		t.Errorf("index.html Content-Type = %q", ct)
	}
	checkContains(t, string(index),
		`href="ubuntu-16-shared/memory.html"`,
		`src="chart/ubuntu-16-shared/time/sha256.svg"`,
		"1.50s",
	)
	if strings.Contains(string(index), "<form") {
		t.Errorf("index.html contains a form")
	}

	page, _, ok := mem.Content("ubuntu-64-shared/proof-size.html")
	if !ok {
		t.Fatal("no ubuntu-64-shared/proof-size.html")
	}
	checkContains(t, string(page),
		`href="../ubuntu-16-shared/proof-size.html"`,
		`src="../chart/ubuntu-64-shared/proof-size/blake3.svg"`,
		"1.5KB",
	)

	svg, meta, ok := mem.Content("chart/ubuntu-16-shared/memory/pedersen.svg")
	if !ok {
		t.Fatal("no pedersen chart")
	}
	if ct := meta["Content-Type"]; ct != "image/svg+xml" {
		t.Errorf("chart Content-Type = %q", ct)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("chart is not an SVG")
	}

	if n := len(a.rec.Events()); n != 0 {
		t.Errorf("export sent %d page views", n)
	}
}
