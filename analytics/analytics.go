// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analytics records page views.
//
// Sinks are fire-and-forget: Pageview never blocks on the network and
// never reports failure to its caller.
package analytics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/posthog/posthog-go"
)

// A Pageview is a single view of a page.
type Pageview struct {
	// DistinctID identifies the viewer anonymously.
	DistinctID string
	// URL is the absolute URL of the page.
	URL string
}

// A Sink receives page views.
type Sink interface {
	Pageview(ctx context.Context, pv Pageview)
	// Close flushes pending events.
	Close() error
}

// Nop is a Sink that discards events.
type Nop struct{}

func (Nop) Pageview(context.Context, Pageview) {}
func (Nop) Close() error                       { return nil }

// PostHog is a Sink that sends "$pageview" events to PostHog.
type PostHog struct {
	client posthog.Client
	logger *slog.Logger
}

// NewPostHog returns a Sink sending events to the PostHog instance at
// host with the project API key. Delivery failures are logged to
// logger.
func NewPostHog(key, host string, logger *slog.Logger) (*PostHog, error) {
	p := &PostHog{logger: logger}
	client, err := posthog.NewWithConfig(key, posthog.Config{
		Endpoint: host,
		Callback: callback{logger},
	})
	if err != nil {
		return nil, err
	}
	p.client = client
	return p, nil
}

// Pageview enqueues a "$pageview" event. It does not wait for the
// event to be sent.
func (p *PostHog) Pageview(ctx context.Context, pv Pageview) {
	err := p.client.Enqueue(posthog.Capture{
		DistinctId: pv.DistinctID,
		Event:      "$pageview",
		Properties: posthog.NewProperties().Set("$current_url", pv.URL),
	})
	if err != nil {
		p.logger.WarnContext(ctx, "analytics: enqueue pageview", "url", pv.URL, "err", err)
	}
}

// Close flushes queued events and stops the client.
func (p *PostHog) Close() error {
	return p.client.Close()
}

// callback logs delivery results reported by the PostHog client.
type callback struct {
	logger *slog.Logger
}

func (c callback) Success(posthog.APIMessage) {}

func (c callback) Failure(msg posthog.APIMessage, err error) {
	c.logger.Warn("analytics: event not delivered", "err", err)
}

// Recorder is a Sink that keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Pageview
	closed bool
}

func (r *Recorder) Pageview(_ context.Context, pv Pageview) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, pv)
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Events returns the recorded events in order.
func (r *Recorder) Events() []Pageview {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Pageview(nil), r.events...)
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
