// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the zkbench configuration file format.
package config

import (
	"fmt"
	"log/slog"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Fixture FixtureConfig `yaml:"fixture,omitempty"`
	Export  ExportConfig  `yaml:"export,omitempty"`
	PostHog PostHogConfig `yaml:"posthog,omitempty"`
	Site    SiteConfig    `yaml:"site,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

type ServerConfig struct {
	ListenAddress string `yaml:"listen_address,omitempty"`
}

// FixtureConfig selects where results are loaded from. Source is a
// path, gs://bucket/object, sqlite3:dsn or mysql:dsn. Empty means the
// fixture built into the binary.
type FixtureConfig struct {
	Source string `yaml:"source,omitempty"`
	// Anonymous disables authentication for gs:// sources.
	Anonymous bool `yaml:"anonymous,omitempty"`
}

// ExportConfig configures static rendering. Dir is a local directory
// or gs://bucket.
type ExportConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// PostHogConfig configures pageview analytics. Analytics are off
// when Key is empty.
type PostHogConfig struct {
	Key  string `yaml:"key,omitempty"`
	Host string `yaml:"host,omitempty"`
}

type SiteConfig struct {
	// BaseURL is the public origin of the site, used in analytics
	// events.
	BaseURL string `yaml:"base_url,omitempty"`
	Social  []Link `yaml:"social,omitempty"`
	FAQ     []FAQ  `yaml:"faq,omitempty"`
}

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddress: ":8080",
		},
		PostHog: PostHogConfig{
			Host: "https://app.posthog.com",
		},
		Site: SiteConfig{
			BaseURL: "https://zkbench.dev",
			Social: []Link{
				{Name: "GitHub", URL: "https://github.com/polybase/zk-bench"},
				{Name: "Twitter", URL: "https://twitter.com/polybase_xyz"},
				{Name: "Discord", URL: "https://discord.com/invite/DrFFKnjaCt"},
			},
			FAQ: []FAQ{
				{
					Question: "What is zk-bench?",
					Answer:   "zk-bench compares the performance and features of zero-knowledge proving frameworks on the same set of programs and machines.",
				},
				{
					Question: "How are the benchmarks run?",
					Answer:   "Each framework proves the same programs on shared cloud machines with 16 and 64 CPUs. Time is the time to generate a proof, memory is the peak memory use while proving, and proof size is the size of the serialized proof.",
				},
				{
					Question: "Can I add a framework?",
					Answer:   "Yes. Add a benchmark crate for it to the repository and open a pull request.",
				},
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over Default.
func Load(path string) (*Config, error) {
	c := Default()
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(f, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return nil, err
	}
	return c, nil
}

// SlogLevel parses Level. An empty level is info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("bad log level %q: %w", l.Level, err)
	}
	return level, nil
}

// AnalyticsEnabled reports whether a PostHog key is configured.
func (c *Config) AnalyticsEnabled() bool {
	return c != nil && c.PostHog.Key != ""
}
