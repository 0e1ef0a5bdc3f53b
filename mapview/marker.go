// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package mapview

import (
	"fmt"
	"strings"

	"github.com/golfkarta/golfkarta/club"
	"github.com/golfkarta/golfkarta/spatial"
	"github.com/microcosm-cc/bluemonday"
)

// Marker opacities.
const (
	DefaultOpacity  = 1.0
	SelectedOpacity = 0.6
)

// Icon is a marker image.
type Icon struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size [2]int `json:"size"`
}

// The two marker variants: red for 18-hole clubs, green for everything else.
var (
	Icon9 = Icon{
		Name: "green",
		URL:  "https://maps.google.com/mapfiles/ms/icons/green-dot.png",
		Size: [2]int{32, 32},
	}
	Icon18 = Icon{
		Name: "red",
		URL:  "https://maps.google.com/mapfiles/ms/icons/red-dot.png",
		Size: [2]int{32, 32},
	}
)

// IconFor returns the icon variant for c.
func IconFor(c club.Club) Icon {
	if c.DisplayHoles() == 18 {
		return Icon18
	}

	return Icon9
}

var tooltipPolicy = bluemonday.UGCPolicy()

// Marker is one club drawn on the map.
type Marker struct {
	Club    club.Club
	Icon    Icon
	Tooltip string

	opacity float64
	widget  Widget
	onClick func(*Marker)
}

func newMarker(c club.Club, widget Widget, onClick func(*Marker)) *Marker {
	return &Marker{
		Club:    c,
		Icon:    IconFor(c),
		Tooltip: tooltip(c),
		opacity: DefaultOpacity,
		widget:  widget,
		onClick: onClick,
	}
}

// ID returns the ID of the club behind the marker.
func (m *Marker) ID() int {
	return m.Club.ID
}

// Location returns where the marker is drawn.
func (m *Marker) Location() spatial.Point {
	return m.Club.Location
}

// Opacity returns the current marker opacity.
func (m *Marker) Opacity() float64 {
	return m.opacity
}

// SetOpacity changes the marker opacity and redraws it.
func (m *Marker) SetOpacity(opacity float64) {
	if m.opacity == opacity {
		return
	}

	m.opacity = opacity
	if m.widget != nil {
		m.widget.UpdateMarker(m)
	}
}

// Click runs the marker click handler.
func (m *Marker) Click() {
	if m.onClick != nil {
		m.onClick(m)
	}
}

// FormatPrice renders a price in kronor, or "" when unknown.
func FormatPrice(price *float64) string {
	if price == nil {
		return ""
	}

	if *price == float64(int64(*price)) {
		return fmt.Sprintf("%d kr", int64(*price))
	}

	return fmt.Sprintf("%.2f kr", *price)
}

// tooltip is the hover preview: name, municipality, holes and known price.
func tooltip(c club.Club) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<strong>%s</strong>", c.Name)

	if c.Municipality != "" {
		fmt.Fprintf(&sb, "<br>%s", c.Municipality)
	}

	fmt.Fprintf(&sb, "<br>⛳ %d hål", c.DisplayHoles())

	if p := FormatPrice(c.Price); p != "" {
		fmt.Fprintf(&sb, "<br>💰 %s", p)
	}

	return tooltipPolicy.Sanitize(sb.String())
}
