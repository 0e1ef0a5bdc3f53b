// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package curation

import (
	"fmt"

	"github.com/golfkarta/golfkarta/spatial"
)

// Sweden with about half a degree of margin.
var swedenBounds = spatial.BoundsOf(
	spatial.Point{Lat: 55.0, Lng: 10.5},
	spatial.Point{Lat: 69.5, Lng: 24.5},
)

// ValidateCoordinates checks that p is a valid point inside Sweden.
func ValidateCoordinates(p spatial.Point) error {
	if !p.Valid() {
		return fmt.Errorf("invalid coordinates %s", p)
	}

	if !swedenBounds.Contains(p) {
		return fmt.Errorf("coordinates outside Sweden: %s", p)
	}

	return nil
}
