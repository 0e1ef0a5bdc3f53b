// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

// Package club loads pay-and-play golf club records and filters them.
package club

import (
	"slices"

	"github.com/golfkarta/golfkarta/spatial"
)

// DefaultHoles is the hole count shown for clubs that do not publish one.
const DefaultHoles = 9

// Club is a normalized golf club location.
type Club struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Municipality string        `json:"municipality,omitempty"`
	Region       string        `json:"region,omitempty"`
	Holes        *int          `json:"holes,omitempty"`
	Price        *float64      `json:"price,omitempty"`
	Website      string        `json:"website,omitempty"`
	Location     spatial.Point `json:"location"`
	Source       string        `json:"-"`
}

// DisplayHoles returns the hole count, or DefaultHoles when unknown or not
// positive.
func (c Club) DisplayHoles() int {
	if c.Holes == nil || *c.Holes <= 0 {
		return DefaultHoles
	}

	return *c.Holes
}

// Set is an immutable sequence of clubs. Every member has a name and a valid
// location. The zero value is an empty set.
type Set struct {
	clubs []Club
}

// NewSet builds a Set from clubs, dropping the ones without a name or valid
// location. The slice is copied.
func NewSet(clubs []Club) Set {
	kept := make([]Club, 0, len(clubs))

	for _, c := range clubs {
		if c.Name == "" || !c.Location.Valid() {
			continue
		}

		kept = append(kept, c)
	}

	return Set{clubs: kept}
}

// Len returns the number of clubs.
func (s Set) Len() int {
	return len(s.clubs)
}

// All returns a copy of the clubs.
func (s Set) All() []Club {
	return slices.Clone(s.clubs)
}

// At returns the i-th club.
func (s Set) At(i int) Club {
	return s.clubs[i]
}

// Find returns the club with the given ID.
func (s Set) Find(id int) (Club, bool) {
	for _, c := range s.clubs {
		if c.ID == id {
			return c, true
		}
	}

	return Club{}, false
}

// Points returns the location of every club.
func (s Set) Points() []spatial.Point {
	ret := make([]spatial.Point, len(s.clubs))
	for i, c := range s.clubs {
		ret[i] = c.Location
	}

	return ret
}
