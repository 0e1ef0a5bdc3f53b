// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golfkarta/golfkarta/club"
	"github.com/golfkarta/golfkarta/config"
)

// BuildResult describes one region written by Build.
type BuildResult struct {
	Region  string
	Page    string
	Data    string
	Clubs   int
	Sources []club.SourceResult
}

func pageFile(cfg *config.Config, r *config.Region) string {
	if r.Slug == cfg.DefaultRegion {
		return "index.html"
	}

	return r.Slug + ".html"
}

// Build writes the static site to out: one page per region, index.html for
// the default one, next to the region's merged clubs as <slug>.geojson.
func Build(ctx context.Context, cfg *config.Config, loader *club.Loader, out string) ([]BuildResult, error) {
	if err := os.MkdirAll(out, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	tmpl := parseTemplates()
	results := make([]BuildResult, 0, len(cfg.Regions))

	for _, region := range cfg.Regions {
		set, sources := loader.Load(ctx, region.Sources)

		res := BuildResult{
			Region:  region.Slug,
			Page:    filepath.Join(out, pageFile(cfg, region)),
			Data:    filepath.Join(out, region.Slug+".geojson"),
			Clubs:   set.Len(),
			Sources: sources,
		}

		if err := writeJSON(res.Data, set.FeatureCollection()); err != nil {
			return results, err
		}

		data := newPageData(ModeStatic, cfg, region, func(r *config.Region) string {
			return pageFile(cfg, r)
		})
		data.DataURL = region.Slug + ".geojson"

		if err := writePage(res.Page, func(f *os.File) error {
			return tmpl.ExecuteTemplate(f, pageTemplate, data)
		}); err != nil {
			return results, err
		}

		results = append(results, res)
	}

	return results, nil
}

func writeJSON(path string, v any) error {
	return writePage(path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetEscapeHTML(false)

		return enc.Encode(v)
	})
}

func writePage(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
