// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package club

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/golfkarta/golfkarta/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestDecodeList(t *testing.T) {
	data := []byte(`[
		{"name": " Alpha GK ", "municipality": "Borås", "holes": 9, "price": 200, "lat": 57.72, "lng": 12.94},
		{"name": "Beta", "municipality": "Ale", "region": "Västra Götaland", "holes": "18", "price": "450", "website": "https://beta.se", "lat": "57.9", "lng": "12.1"},
		{"name": "   ", "lat": 57.0, "lng": 12.0},
		{"name": "No coordinates"},
		{"name": "Bad latitude", "lat": 123.0, "lng": 12.0},
		{"name": "Gamma", "price": "ring för pris", "latitude": 59.3, "longitude": 18.1},
		{"name": "Delta", "lat": 55.6, "lon": 13.0},
		null
	]`)

	clubs, err := Decode(data)
	require.NoError(t, err)

	expected := []Club{
		{
			Name:         "Alpha GK",
			Municipality: "Borås",
			Holes:        intPtr(9),
			Price:        floatPtr(200),
			Location:     spatial.Point{Lat: 57.72, Lng: 12.94},
		},
		{
			Name:         "Beta",
			Municipality: "Ale",
			Region:       "Västra Götaland",
			Holes:        intPtr(18),
			Price:        floatPtr(450),
			Website:      "https://beta.se",
			Location:     spatial.Point{Lat: 57.9, Lng: 12.1},
		},
		{
			Name:     "Gamma",
			Location: spatial.Point{Lat: 59.3, Lng: 18.1},
		},
		{
			Name:     "Delta",
			Location: spatial.Point{Lat: 55.6, Lng: 13.0},
		},
	}

	if diff := cmp.Diff(expected, clubs); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFeatureCollection(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [11.97, 57.70]},
			 "properties": {"name": "Göteborgs Pay & Play", "municipality": "Göteborg", "holes": 18, "website": "https://gpp.se"}},
			{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [12.0, 57.0]},
			 "properties": {"name": "Not a point"}},
			{"type": "Feature", "geometry": null, "properties": {"name": "No geometry"}},
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [12.5, 58.1]},
			 "properties": {"municipality": "Nameless"}}
		]
	}`)

	clubs, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, clubs, 1)

	assert.Equal(t, "Göteborgs Pay & Play", clubs[0].Name)
	assert.Equal(t, spatial.Point{Lat: 57.70, Lng: 11.97}, clubs[0].Location)
	assert.Equal(t, 18, clubs[0].DisplayHoles())
	assert.Nil(t, clubs[0].Price)
}

func TestDecodeListDropsMistypedRecords(t *testing.T) {
	data := []byte(`[
		{"name": "Alpha", "lat": 57.1, "lng": 12.1},
		{"name": "Bad website", "website": false, "lat": 57.2, "lng": 12.2},
		{"name": 12, "lat": 57.3, "lng": 12.3},
		"not a club",
		{"name": "Beta", "lat": 57.4, "lng": 12.4}
	]`)

	clubs, err := Decode(data)
	require.NoError(t, err)

	var names []string
	for _, c := range clubs {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"Alpha", "Beta"}, names)
}

func TestDecodeMixedGeometries(t *testing.T) {
	data := []byte(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [12.1, 57.1]}, "properties": {"name": "Alpha"}},
		{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[12, 57], [13, 57], [13, 58], [12, 57]]]},
		 "properties": {"name": "Banområde"}},
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [12.2, 57.2]}, "properties": {"name": false}},
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [12.3, 57.3]},
		 "properties": {"name": "Beta", "website": false}},
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [12.4, 57.4]}, "properties": {"name": "Gamma", "holes": 18}}
	]}`)

	clubs, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Alpha", clubs[0].Name)
	assert.Equal(t, "Gamma", clubs[1].Name)
	assert.Equal(t, spatial.Point{Lat: 57.4, Lng: 12.4}, clubs[1].Location)
	assert.Equal(t, 18, clubs[1].DisplayHoles())

	unlocated, err := Unlocated(data)
	require.NoError(t, err)
	require.Len(t, unlocated, 1)
	assert.Equal(t, "Banområde", unlocated[0].Name)
}

func TestDecodeUnknownShape(t *testing.T) {
	for _, data := range []string{``, `"clubs"`, `{"type": "Feature"}`, `42`} {
		t.Run(data, func(t *testing.T) {
			_, err := Decode([]byte(data))
			assert.True(t, errors.Is(err, ErrUnknownShape), "got %v", err)
		})
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`[{"name": "Alpha",`))
	require.Error(t, err)
}

func TestFeatureCollectionRoundTrip(t *testing.T) {
	set := NewSet([]Club{
		{ID: 1, Name: "Alpha", Municipality: "X", Holes: intPtr(9), Price: floatPtr(200), Location: spatial.Point{Lat: 57.1, Lng: 12.1}},
		{ID: 2, Name: "Beta", Website: "https://beta.se", Location: spatial.Point{Lat: 58.2, Lng: 13.2}},
	})

	data, err := json.Marshal(set.FeatureCollection())
	require.NoError(t, err)

	clubs, err := Decode(data)
	require.NoError(t, err)

	expected := set.All()
	for i := range expected {
		expected[i].ID = 0
	}

	if diff := cmp.Diff(expected, clubs); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayHoles(t *testing.T) {
	assert.Equal(t, DefaultHoles, Club{}.DisplayHoles())
	assert.Equal(t, 18, Club{Holes: intPtr(18)}.DisplayHoles())
	assert.Equal(t, 6, Club{Holes: intPtr(6)}.DisplayHoles())
	assert.Equal(t, DefaultHoles, Club{Holes: intPtr(0)}.DisplayHoles())
	assert.Equal(t, DefaultHoles, Club{Holes: intPtr(-9)}.DisplayHoles())
}

func TestUnlocated(t *testing.T) {
	list := []byte(`[
		{"name": "Alpha", "lat": 57.1, "lng": 12.1},
		{"name": "Beta", "municipality": "Borås"},
		{"name": "Gamma", "lat": 95, "lng": 12},
		{"municipality": "Namnlös"}
	]`)

	clubs, err := Unlocated(list)
	require.NoError(t, err)
	assert.Equal(t, []Club{{Name: "Beta", Municipality: "Borås"}, {Name: "Gamma"}}, clubs)

	fc := []byte(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "geometry": null, "properties": {"name": "Delta"}},
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [12.1, 57.1]}, "properties": {"name": "Alpha"}}
	]}`)

	clubs, err = Unlocated(fc)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Delta", clubs[0].Name)

	_, err = Unlocated([]byte(`"x"`))
	assert.ErrorIs(t, err, ErrUnknownShape)
}
