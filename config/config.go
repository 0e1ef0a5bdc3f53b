// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

// Package config reads the site configuration: the regions with their data
// sources and default map view, and the HTTP settings used to fetch data.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/golfkarta/golfkarta/mapview"
	"github.com/golfkarta/golfkarta/spatial"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "golfkarta.yaml"

const defaultHTTPTimeout = 30 * time.Second

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Region is one map page.
type Region struct {
	Slug    string    `yaml:"slug"`
	Title   string    `yaml:"title"`
	Center  []float64 `yaml:"center"` // [lat, lng]
	Zoom    int       `yaml:"zoom"`
	Sources []string  `yaml:"sources"`
}

// Home returns the region's default map view.
func (r *Region) Home() mapview.View {
	return mapview.View{
		Center: spatial.Point{Lat: r.Center[0], Lng: r.Center[1]},
		Zoom:   r.Zoom,
	}
}

// Config is the site configuration.
type Config struct {
	UserAgent     string        `yaml:"user_agent"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	DefaultRegion string        `yaml:"default_region"`
	Regions       []*Region     `yaml:"regions"`
}

// Default returns the built-in configuration: all of Sweden and Västra
// Götaland, reading the data files next to the binary.
func Default() *Config {
	return &Config{
		UserAgent:     "golfkarta (+https://github.com/golfkarta/golfkarta)",
		HTTPTimeout:   defaultHTTPTimeout,
		DefaultRegion: "sverige",
		Regions: []*Region{
			{
				Slug:    "sverige",
				Title:   "Pay & Play-golf i Sverige",
				Center:  []float64{62.0, 15.0},
				Zoom:    5,
				Sources: []string{"data/clubs.json", "data/vastra-gotaland.geojson"},
			},
			{
				Slug:    "vastra-gotaland",
				Title:   "Pay & Play-golf i Västra Götaland",
				Center:  []float64{57.7, 12.0},
				Zoom:    7,
				Sources: []string{"data/vastra-gotaland.geojson"},
			},
		},
	}
}

// Load reads path. A missing file yields the default configuration unless
// the path was explicitly requested.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates a YAML configuration. Unset fields take the
// default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Regions = nil
	cfg.DefaultRegion = ""

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}

	if len(cfg.Regions) == 0 {
		cfg.Regions = Default().Regions
	}

	if cfg.DefaultRegion == "" {
		cfg.DefaultRegion = cfg.Regions[0].Slug
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Regions))

	for i, r := range c.Regions {
		if r == nil {
			return fmt.Errorf("region #%d is empty", i+1)
		}

		if !slugRegex.MatchString(r.Slug) {
			return fmt.Errorf("region #%d: invalid slug %q", i+1, r.Slug)
		}

		if seen[r.Slug] {
			return fmt.Errorf("region %s: duplicated slug", r.Slug)
		}

		seen[r.Slug] = true

		if len(r.Center) != 2 || !(spatial.Point{Lat: r.Center[0], Lng: r.Center[1]}).Valid() {
			return fmt.Errorf("region %s: center must be [lat, lng]", r.Slug)
		}

		if r.Zoom < 0 || r.Zoom > 19 {
			return fmt.Errorf("region %s: zoom must be between 0 and 19", r.Slug)
		}

		if len(r.Sources) == 0 {
			return fmt.Errorf("region %s: no sources", r.Slug)
		}

		if r.Title == "" {
			r.Title = r.Slug
		}
	}

	if _, err := c.Region(c.DefaultRegion); err != nil {
		return fmt.Errorf("default region: %w", err)
	}

	return nil
}

// Region returns the region with the given slug. An empty slug means the
// default region.
func (c *Config) Region(slug string) (*Region, error) {
	if slug == "" {
		slug = c.DefaultRegion
	}

	for _, r := range c.Regions {
		if r.Slug == slug {
			return r, nil
		}
	}

	return nil, fmt.Errorf("unknown region %q", slug)
}
