// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package mapview

import (
	"slices"

	"github.com/golfkarta/golfkarta/spatial"
)

// Layer is the set of markers drawn by one Render call.
type Layer struct {
	markers []*Marker
	byID    map[int]*Marker
}

func newLayer(capacity int) *Layer {
	return &Layer{
		markers: make([]*Marker, 0, capacity),
		byID:    make(map[int]*Marker, capacity),
	}
}

func (l *Layer) add(m *Marker) {
	l.markers = append(l.markers, m)
	l.byID[m.ID()] = m
}

// Len returns the number of markers.
func (l *Layer) Len() int {
	if l == nil {
		return 0
	}

	return len(l.markers)
}

// Markers returns the markers in drawing order.
func (l *Layer) Markers() []*Marker {
	if l == nil {
		return nil
	}

	return slices.Clone(l.markers)
}

// Marker returns the marker for the club with the given ID.
func (l *Layer) Marker(id int) (*Marker, bool) {
	if l == nil {
		return nil, false
	}

	m, ok := l.byID[id]

	return m, ok
}

// Bounds returns the bounds of every marker. Empty for an empty layer.
func (l *Layer) Bounds() spatial.Bounds {
	var b spatial.Bounds
	if l == nil {
		return b
	}

	for _, m := range l.markers {
		b = b.Extend(m.Location())
	}

	return b
}
