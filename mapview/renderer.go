// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package mapview

import (
	"github.com/golfkarta/golfkarta/club"
)

// Renderer draws club sets on a Widget, one layer at a time.
type Renderer struct {
	widget Widget
	home   View
	layer  *Layer

	// OnClick is bound to every marker drawn after it is set.
	OnClick func(*Marker)
}

// NewRenderer creates a renderer drawing on widget. home is the view Home
// returns to.
func NewRenderer(widget Widget, home View) *Renderer {
	return &Renderer{widget: widget, home: home}
}

// Render removes the previous layer and draws one marker per club. When fit
// is set and at least one marker was drawn the viewport is fit to them.
func (r *Renderer) Render(clubs club.Set, fit bool) *Layer {
	r.Clear()

	layer := newLayer(clubs.Len())

	for i := range clubs.Len() {
		m := newMarker(clubs.At(i), r.widget, r.OnClick)
		r.widget.AddMarker(m)
		layer.add(m)
	}

	r.layer = layer

	if fit {
		if b := layer.Bounds(); !b.IsEmpty() {
			r.widget.FitBounds(b)
		}
	}

	return layer
}

// Clear removes every marker of the current layer.
func (r *Renderer) Clear() {
	if r.layer == nil {
		return
	}

	for _, m := range r.layer.markers {
		r.widget.RemoveMarker(m)
	}

	r.layer = nil
}

// Layer returns the current layer, nil before the first Render.
func (r *Renderer) Layer() *Layer {
	return r.layer
}

// Home resets the viewport to the default view.
func (r *Renderer) Home() {
	r.widget.SetView(r.home)
}

// HomeView returns the default view.
func (r *Renderer) HomeView() View {
	return r.home
}
