// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package mapview

import (
	"context"
	"errors"
	"fmt"

	"github.com/golfkarta/golfkarta/club"
)

// Common errors returned by Session.
var (
	ErrNotLoaded     = errors.New("clubs not loaded yet")
	ErrUnknownMarker = errors.New("no marker for club")
)

// Session is the state of one map page: the source set, the drawn layer, the
// selection, and the page elements. It is not safe for concurrent use.
type Session struct {
	page     *Page
	renderer *Renderer
	panel    *Panel
	counter  *Counter

	loaded   bool
	source   club.Set
	current  club.Set
	criteria club.Criteria

	selectedID int
	selected   *Marker
}

// NewSession creates a session drawing on widget, with home as the default
// view. The page starts with the panel placeholder.
func NewSession(widget Widget, home View) *Session {
	page := NewPage(ElementInfoPanel)

	s := &Session{
		page:     page,
		renderer: NewRenderer(widget, home),
		panel:    NewPanel(page),
		counter:  NewCounter(page),
	}
	s.renderer.OnClick = s.selectMarker
	s.panel.Clear()

	return s
}

// Load fetches sources with loader and shows every club.
func (s *Session) Load(ctx context.Context, loader *club.Loader, sources []string) []club.SourceResult {
	set, results := loader.Load(ctx, sources)
	s.SetSource(set)

	return results
}

// SetSource installs set as the source set, counts it and draws it.
func (s *Session) SetSource(set club.Set) {
	s.source = set
	s.loaded = true
	s.show(club.Criteria{}, true)
}

// Apply filters the source set with criteria and draws the result, fitting the
// viewport to it.
func (s *Session) Apply(criteria club.Criteria) (club.Set, error) {
	if !s.loaded {
		return club.Set{}, ErrNotLoaded
	}

	return s.show(criteria, true), nil
}

// Reset clears every filter and the selection, draws all clubs and returns
// the viewport to the default view.
func (s *Session) Reset() error {
	if !s.loaded {
		return ErrNotLoaded
	}

	s.clearSelection()
	s.show(club.Criteria{}, false)
	s.renderer.Home()
	s.panel.Clear()

	return nil
}

// Select highlights the marker of the club with the given ID.
func (s *Session) Select(id int) error {
	m, ok := s.renderer.Layer().Marker(id)
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownMarker, id)
	}

	m.Click()

	return nil
}

func (s *Session) show(criteria club.Criteria, fit bool) club.Set {
	subset := s.source.Filter(criteria)

	s.criteria = criteria
	s.current = subset
	s.selected = nil

	layer := s.renderer.Render(subset, fit)
	s.counter.Update(subset.Len())

	// the selection survives filtering; highlight it again if still drawn
	if s.selectedID != 0 {
		if m, ok := layer.Marker(s.selectedID); ok {
			m.SetOpacity(SelectedOpacity)
			s.selected = m
		}
	}

	return subset
}

func (s *Session) selectMarker(m *Marker) {
	if s.selected != nil && s.selected != m {
		s.selected.SetOpacity(DefaultOpacity)
	}

	m.SetOpacity(SelectedOpacity)
	s.selected = m
	s.selectedID = m.ID()
	s.panel.Show(m.Club)
}

func (s *Session) clearSelection() {
	if s.selected != nil {
		s.selected.SetOpacity(DefaultOpacity)
	}

	s.selected = nil
	s.selectedID = 0
}

// Loaded reports whether the source set is installed.
func (s *Session) Loaded() bool {
	return s.loaded
}

// Source returns the full source set.
func (s *Session) Source() club.Set {
	return s.source
}

// Current returns the subset currently drawn.
func (s *Session) Current() club.Set {
	return s.current
}

// Criteria returns the active filter criteria.
func (s *Session) Criteria() club.Criteria {
	return s.criteria
}

// Selected returns the highlighted marker, nil when nothing is selected or
// the selected club is filtered out.
func (s *Session) Selected() *Marker {
	return s.selected
}

// SelectedID returns the ID of the selected club, 0 when none.
func (s *Session) SelectedID() int {
	return s.selectedID
}

// Layer returns the markers currently drawn.
func (s *Session) Layer() *Layer {
	return s.renderer.Layer()
}

// Page returns the page elements.
func (s *Session) Page() *Page {
	return s.page
}

// HomeView returns the default view.
func (s *Session) HomeView() View {
	return s.renderer.HomeView()
}
