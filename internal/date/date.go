// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package date formats the fixture's last-updated timestamp.
package date

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Parse parses an RFC 3339 timestamp, as written by the combiner.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date: %w", err)
	}
	return t, nil
}

// Format formats t in UTC as, e.g., "1st October 2023".
func Format(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s %s %d", humanize.Ordinal(t.Day()), t.Month(), t.Year())
}

// Since describes how long before now t was, in whole minutes, hours
// or days: "Just now", "1 min ago", "5 hours ago", "2 days ago".
func Since(t, now time.Time) string {
	d := now.Sub(t)
	minutes := int(d / time.Minute)
	hours := int(d / time.Hour)
	days := int(d / (24 * time.Hour))
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return plural(minutes, "min")
	case hours < 24:
		return plural(hours, "hour")
	}
	return plural(days, "day")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
