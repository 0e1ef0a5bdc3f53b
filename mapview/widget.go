// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

// Package mapview renders club sets onto a map widget and tracks the state of
// one map page: the drawn marker layer, the selected marker, the detail panel
// and the result counter.
package mapview

import (
	"github.com/golfkarta/golfkarta/spatial"
)

// View is an explicit map center and zoom level.
type View struct {
	Center spatial.Point `json:"center"`
	Zoom   int           `json:"zoom"`
}

// Widget is the map the markers are drawn on.
type Widget interface {
	// AddMarker places m on the map.
	AddMarker(m *Marker)

	// RemoveMarker takes m off the map.
	RemoveMarker(m *Marker)

	// UpdateMarker redraws m after its opacity changed.
	UpdateMarker(m *Marker)

	// FitBounds moves the viewport so that b is visible. b is never empty.
	FitBounds(b spatial.Bounds)

	// SetView moves the viewport to v.
	SetView(v View)
}
