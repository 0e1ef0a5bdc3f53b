// Copyright 2026 The Golfkarta Authors
//
// SPDX-License-Identifier: Apache-2.0
package spatial

// Bounds is a latitude/longitude rectangle. The zero value is empty.
type Bounds struct {
	SouthWest Point `json:"south_west"`
	NorthEast Point `json:"north_east"`
	set       bool
}

// BoundsOf returns the smallest Bounds containing every valid point.
func BoundsOf(points ...Point) Bounds {
	var b Bounds
	for _, p := range points {
		b = b.Extend(p)
	}

	return b
}

// Extend returns b grown to include p. Invalid points are ignored.
func (b Bounds) Extend(p Point) Bounds {
	if !p.Valid() {
		return b
	}

	if !b.set {
		return Bounds{SouthWest: p, NorthEast: p, set: true}
	}

	b.SouthWest.Lat = min(b.SouthWest.Lat, p.Lat)
	b.SouthWest.Lng = min(b.SouthWest.Lng, p.Lng)
	b.NorthEast.Lat = max(b.NorthEast.Lat, p.Lat)
	b.NorthEast.Lng = max(b.NorthEast.Lng, p.Lng)

	return b
}

// IsEmpty reports whether no point has been added.
func (b Bounds) IsEmpty() bool {
	return !b.set
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	if !b.set || !p.Valid() {
		return false
	}

	return p.Lat >= b.SouthWest.Lat && p.Lat <= b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}

// Center returns the midpoint of b.
func (b Bounds) Center() Point {
	return Point{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}
