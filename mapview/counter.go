// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package mapview

import (
	"html"

	"github.com/golfkarta/golfkarta/utils/textutils"
)

// NoResultsNotice is shown when a filter matches nothing.
const NoResultsNotice = "Inga klubbar matchar filtret."

// Counter shows how many clubs match.
type Counter struct {
	page *Page
}

// NewCounter creates a counter writing to page.
func NewCounter(page *Page) *Counter {
	return &Counter{page: page}
}

// Label returns the counter text for n matches.
func Label(n int) string {
	if n == 1 {
		return "1 träff"
	}

	return textutils.Sprintf("%d träffar", n)
}

// Update sets the counter to n, creating its element on first use.
func (c *Counter) Update(n int) {
	el, ok := c.page.Element(ElementResultCounter)
	if !ok {
		el = c.page.Create(ElementResultCounter)
	}

	el.HTML = html.EscapeString(Label(n))

	notice := c.page.Create(ElementNoResults)
	if n == 0 {
		notice.HTML = html.EscapeString(NoResultsNotice)
	} else {
		notice.HTML = ""
	}
}
