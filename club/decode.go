// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package club

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golfkarta/golfkarta/spatial"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// number accepts a JSON number, a numeric string, null or "". Anything else
// leaves it unset so that a malformed price reads as unknown.
type number struct {
	value float64
	set   bool
}

func (n *number) UnmarshalJSON(data []byte) error {
	*n = number{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}

		s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
		if s == "" {
			return nil
		}

		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}

		*n = number{value: v, set: true}

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	*n = number{value: v, set: true}

	return nil
}

func (n number) float() *float64 {
	if !n.set {
		return nil
	}

	v := n.value

	return &v
}

func (n number) int() *int {
	if !n.set || n.value != math.Trunc(n.value) {
		return nil
	}

	v := int(n.value)

	return &v
}

// entry is one club as found in a data file, either a flat list element or
// the properties of a GeoJSON feature.
type entry struct {
	Name         string `json:"name"`
	Municipality string `json:"municipality"`
	Region       string `json:"region"`
	Holes        number `json:"holes"`
	Price        number `json:"price"`
	Website      string `json:"website"`
	Lat          number `json:"lat"`
	Lng          number `json:"lng"`
	Lon          number `json:"lon"`
	Latitude     number `json:"latitude"`
	Longitude    number `json:"longitude"`
}

func (e *entry) point() (spatial.Point, bool) {
	lat := e.Lat
	if !lat.set {
		lat = e.Latitude
	}

	lng := e.Lng
	if !lng.set {
		lng = e.Lon
	}

	if !lng.set {
		lng = e.Longitude
	}

	if !lat.set || !lng.set {
		return spatial.Point{}, false
	}

	return spatial.Point{Lat: lat.value, Lng: lng.value}, true
}

// container is the outer GeoJSON document. Features stay raw so that one bad
// feature is dropped on its own.
type container struct {
	Type     string             `json:"type"`
	Features *[]json.RawMessage `json:"features"`
}

// normalize converts an entry into a Club. ok is false when the entry lacks a
// name or valid coordinates.
func normalize(e *entry, loc spatial.Point, hasLoc bool) (Club, bool) {
	c := e.club()
	if c.Name == "" || !hasLoc || !loc.Valid() {
		return Club{}, false
	}

	c.Location = loc

	return c, true
}

func (e *entry) club() Club {
	return Club{
		Name:         strings.TrimSpace(e.Name),
		Municipality: strings.TrimSpace(e.Municipality),
		Region:       strings.TrimSpace(e.Region),
		Holes:        e.Holes.int(),
		Price:        e.Price.float(),
		Website:      strings.TrimSpace(e.Website),
	}
}

// Decode parses a flat JSON list of clubs or a GeoJSON FeatureCollection and
// returns the clubs that have a name and valid coordinates, in file order.
// IDs are left zero.
func Decode(data []byte) ([]Club, error) {
	var ret []Club

	err := walk(data, func(e *entry, loc spatial.Point, hasLoc bool) {
		if c, ok := normalize(e, loc, hasLoc); ok {
			ret = append(ret, c)
		}
	})
	if err != nil {
		return nil, err
	}

	if ret == nil {
		ret = []Club{}
	}

	return ret, nil
}

// Unlocated returns the named entries of a data file that Decode drops for
// missing or invalid coordinates. Their Location is the zero Point.
func Unlocated(data []byte) ([]Club, error) {
	var ret []Club

	err := walk(data, func(e *entry, loc spatial.Point, hasLoc bool) {
		c := e.club()
		if c.Name != "" && (!hasLoc || !loc.Valid()) {
			ret = append(ret, c)
		}
	})

	return ret, err
}

// walk calls fn for every entry in file order.
func walk(data []byte, fn func(e *entry, loc spatial.Point, hasLoc bool)) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("decoding clubs: %w", ErrUnknownShape)
	}

	switch data[0] {
	case '[':
		return walkList(data, fn)
	case '{':
		return walkFeatureCollection(data, fn)
	default:
		return fmt.Errorf("decoding clubs: %w", ErrUnknownShape)
	}
}

func walkList(data []byte, fn func(e *entry, loc spatial.Point, hasLoc bool)) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parsing club list: %w", err)
	}

	for _, raw := range items {
		var e *entry
		if err := json.Unmarshal(raw, &e); err != nil || e == nil {
			continue
		}

		loc, ok := e.point()
		fn(e, loc, ok)
	}

	return nil
}

func walkFeatureCollection(data []byte, fn func(e *entry, loc spatial.Point, hasLoc bool)) error {
	var doc container
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing GeoJSON: %w", err)
	}

	if doc.Features == nil {
		return fmt.Errorf("decoding clubs: %w", ErrUnknownShape)
	}

	for _, raw := range *doc.Features {
		f, err := geojson.UnmarshalFeature(raw)
		if err != nil || f.Properties == nil {
			continue
		}

		e, err := propertiesEntry(f.Properties)
		if err != nil {
			continue
		}

		p, ok := f.Geometry.(orb.Point)
		if !ok {
			fn(e, spatial.Point{}, false)

			continue
		}

		fn(e, spatial.Point{Lat: p.Lat(), Lng: p.Lon()}, true)
	}

	return nil
}

// propertiesEntry reads feature properties with the same lenient number
// handling as a flat list element.
func propertiesEntry(props geojson.Properties) (*entry, error) {
	data, err := json.Marshal(props)
	if err != nil {
		return nil, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}

	return &e, nil
}
