// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package club

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golfkarta/golfkarta/utils/textutils"
)

// Criteria are the active filters. Nil fields are unset.
type Criteria struct {
	Query    string   `json:"q,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	Holes    *int     `json:"holes,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Query) == "" && c.MaxPrice == nil && c.Holes == nil
}

// ParseCriteria builds Criteria from form values. Blank numeric fields are
// unset; anything else that is not a number is rejected.
func ParseCriteria(query, maxPrice, holes string) (Criteria, error) {
	c := Criteria{Query: strings.TrimSpace(query)}

	if s := strings.TrimSpace(maxPrice); s != "" {
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: max price %q", ErrInvalidCriteria, maxPrice)
		}

		c.MaxPrice = &v
	}

	if s := strings.TrimSpace(holes); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: holes %q", ErrInvalidCriteria, holes)
		}

		c.Holes = &v
	}

	return c, nil
}

type matcher struct {
	query    string
	maxPrice *float64
	holes    *int
}

func (c Criteria) matcher() matcher {
	return matcher{
		query:    textutils.Fold(strings.TrimSpace(c.Query)),
		maxPrice: c.MaxPrice,
		holes:    c.Holes,
	}
}

func (m matcher) match(c Club) bool {
	if m.query != "" &&
		!strings.Contains(textutils.Fold(c.Name), m.query) &&
		!strings.Contains(textutils.Fold(c.Municipality), m.query) &&
		!strings.Contains(textutils.Fold(c.Region), m.query) {
		return false
	}

	// unknown price passes any max price
	if m.maxPrice != nil && c.Price != nil && *c.Price > *m.maxPrice {
		return false
	}

	if m.holes != nil && (c.Holes == nil || *c.Holes != *m.holes) {
		return false
	}

	return true
}

// Matches reports whether club passes every criterion.
func (c Criteria) Matches(club Club) bool {
	return c.matcher().match(club)
}

// Filter returns the clubs matching criteria, in source order. s is left
// untouched.
func (s Set) Filter(criteria Criteria) Set {
	m := criteria.matcher()
	ret := make([]Club, 0, len(s.clubs))

	for _, c := range s.clubs {
		if m.match(c) {
			ret = append(ret, c)
		}
	}

	return Set{clubs: ret}
}
