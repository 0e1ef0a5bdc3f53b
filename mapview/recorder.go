// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package mapview

import (
	"slices"

	"github.com/golfkarta/golfkarta/spatial"
)

// MarkerState is the serializable form of a drawn marker.
type MarkerState struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Location spatial.Point `json:"location"`
	Icon     Icon          `json:"icon"`
	Opacity  float64       `json:"opacity"`
	Tooltip  string        `json:"tooltip"`
}

// Viewport is the last viewport instruction given to the widget. Exactly one
// of Bounds and View is set once the viewport moved.
type Viewport struct {
	Bounds *spatial.Bounds `json:"bounds,omitempty"`
	View   *View           `json:"view,omitempty"`
}

// WidgetState is a snapshot of a Recorder.
type WidgetState struct {
	Revision int           `json:"revision"`
	Markers  []MarkerState `json:"markers"`
	Viewport Viewport      `json:"viewport"`
}

// Recorder is an in-memory Widget. The browser page draws its snapshots.
type Recorder struct {
	markers  []*Marker
	viewport Viewport
	revision int
	fits     int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// AddMarker implements Widget.
func (r *Recorder) AddMarker(m *Marker) {
	r.markers = append(r.markers, m)
	r.revision++
}

// RemoveMarker implements Widget.
func (r *Recorder) RemoveMarker(m *Marker) {
	if i := slices.Index(r.markers, m); i >= 0 {
		r.markers = slices.Delete(r.markers, i, i+1)
		r.revision++
	}
}

// UpdateMarker implements Widget.
func (r *Recorder) UpdateMarker(_ *Marker) {
	r.revision++
}

// FitBounds implements Widget. Empty bounds are ignored.
func (r *Recorder) FitBounds(b spatial.Bounds) {
	if b.IsEmpty() {
		return
	}

	r.viewport = Viewport{Bounds: &b}
	r.fits++
	r.revision++
}

// SetView implements Widget.
func (r *Recorder) SetView(v View) {
	r.viewport = Viewport{View: &v}
	r.revision++
}

// Markers returns the markers on the map in drawing order.
func (r *Recorder) Markers() []*Marker {
	return slices.Clone(r.markers)
}

// Fits returns how many times the viewport was fit to bounds.
func (r *Recorder) Fits() int {
	return r.fits
}

// Snapshot returns the current state of the map.
func (r *Recorder) Snapshot() WidgetState {
	markers := make([]MarkerState, 0, len(r.markers))
	for _, m := range r.markers {
		markers = append(markers, MarkerState{
			ID:       m.ID(),
			Name:     m.Club.Name,
			Location: m.Location(),
			Icon:     m.Icon,
			Opacity:  m.Opacity(),
			Tooltip:  m.Tooltip,
		})
	}

	return WidgetState{
		Revision: r.revision,
		Markers:  markers,
		Viewport: r.viewport,
	}
}
