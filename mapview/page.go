// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package mapview

// Element IDs on the map page.
const (
	ElementInfoPanel     = "infoPanel"
	ElementResultCounter = "resultCounter"
	ElementNoResults     = "noResults"
)

// Element is a page element with HTML content.
type Element struct {
	ID   string
	HTML string
}

// Page holds the page elements the pipeline writes to.
type Page struct {
	elements map[string]*Element
}

// NewPage creates a page containing the given element IDs.
func NewPage(ids ...string) *Page {
	p := &Page{elements: make(map[string]*Element, len(ids))}
	for _, id := range ids {
		p.Create(id)
	}

	return p
}

// Element returns the element with the given ID.
func (p *Page) Element(id string) (*Element, bool) {
	e, ok := p.elements[id]

	return e, ok
}

// Create adds an empty element, or returns the existing one.
func (p *Page) Create(id string) *Element {
	if e, ok := p.elements[id]; ok {
		return e
	}

	e := &Element{ID: id}
	p.elements[id] = e

	return e
}

// Contents returns the HTML of every element by ID.
func (p *Page) Contents() map[string]string {
	ret := make(map[string]string, len(p.elements))
	for id, e := range p.elements {
		ret[id] = e.HTML
	}

	return ret
}
