// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"embed"
	"html/template"

	"github.com/golfkarta/golfkarta/config"
	"github.com/golfkarta/golfkarta/mapview"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "index.html"

// Page modes. A live page asks the preview server for every change, a static
// page filters its GeoJSON file in the browser.
const (
	ModeLive   = "live"
	ModeStatic = "static"
)

func parseTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// regionLink is an entry of the region menu.
type regionLink struct {
	Title  string
	URL    string
	Active bool
}

// pageData feeds the page template.
type pageData struct {
	Mode        string
	Title       string
	Region      string
	Regions     []regionLink
	DataURL     string
	Home        mapview.View
	Counter     string
	Placeholder string
	NoResults   string
	PriceNote   string
	Icon9       mapview.Icon
	Icon18      mapview.Icon
}

func newPageData(mode string, cfg *config.Config, region *config.Region, link func(*config.Region) string) pageData {
	links := make([]regionLink, 0, len(cfg.Regions))
	for _, r := range cfg.Regions {
		links = append(links, regionLink{
			Title:  r.Title,
			URL:    link(r),
			Active: r.Slug == region.Slug,
		})
	}

	return pageData{
		Mode:        mode,
		Title:       region.Title,
		Region:      region.Slug,
		Regions:     links,
		Home:        region.Home(),
		Counter:     mapview.Label(0),
		Placeholder: mapview.PanelPlaceholder,
		NoResults:   mapview.NoResultsNotice,
		PriceNote:   mapview.PriceUnknown,
		Icon9:       mapview.Icon9,
		Icon18:      mapview.Icon18,
	}
}
