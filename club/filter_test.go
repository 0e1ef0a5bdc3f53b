// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package club

import (
	"errors"
	"testing"

	"github.com/golfkarta/golfkarta/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alphaBeta() Set {
	return NewSet([]Club{
		{ID: 1, Name: "Alpha", Municipality: "X", Holes: intPtr(9), Price: floatPtr(200), Location: spatial.Point{Lat: 57.1, Lng: 12.1}},
		{ID: 2, Name: "Beta", Municipality: "Y", Holes: intPtr(18), Price: floatPtr(500), Location: spatial.Point{Lat: 58.2, Lng: 13.2}},
	})
}

func names(s Set) []string {
	ret := make([]string, 0, s.Len())
	for _, c := range s.All() {
		ret = append(ret, c.Name)
	}

	return ret
}

func TestFilterScenario(t *testing.T) {
	set := alphaBeta()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"holes 18", Criteria{Holes: intPtr(18)}, []string{"Beta"}},
		{"search alpha", Criteria{Query: "alpha"}, []string{"Alpha"}},
		{"max price 300", Criteria{MaxPrice: floatPtr(300)}, []string{"Alpha"}},
		{"no criteria", Criteria{}, []string{"Alpha", "Beta"}},
		{"search municipality", Criteria{Query: "y"}, []string{"Beta"}},
		{"combined", Criteria{Query: "a", MaxPrice: floatPtr(300), Holes: intPtr(18)}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(set.Filter(tt.criteria)))
		})
	}
}

func TestFilterUnknownPricePasses(t *testing.T) {
	set := NewSet([]Club{
		{ID: 1, Name: "Unknown", Location: spatial.Point{Lat: 57, Lng: 12}},
		{ID: 2, Name: "Cheap", Price: floatPtr(0), Location: spatial.Point{Lat: 57, Lng: 12}},
	})

	for _, max := range []float64{-1, 0, 100, 1e9} {
		got := set.Filter(Criteria{MaxPrice: floatPtr(max)})
		assert.Contains(t, names(got), "Unknown", "max price %v", max)
	}
}

func TestFilterHolesAbsentDoesNotMatch(t *testing.T) {
	set := NewSet([]Club{
		{ID: 1, Name: "Unknown holes", Location: spatial.Point{Lat: 57, Lng: 12}},
		{ID: 2, Name: "Six", Holes: intPtr(6), Location: spatial.Point{Lat: 57, Lng: 12}},
	})

	assert.Empty(t, names(set.Filter(Criteria{Holes: intPtr(9)})))
	assert.Equal(t, []string{"Six"}, names(set.Filter(Criteria{Holes: intPtr(6)})))
}

func TestFilterSearchRegionAndCase(t *testing.T) {
	set := NewSet([]Club{
		{ID: 1, Name: "Öckerö GK", Region: "Västra Götaland", Location: spatial.Point{Lat: 57.7, Lng: 11.6}},
		{ID: 2, Name: "Åre Pay & Play", Municipality: "Åre", Location: spatial.Point{Lat: 63.4, Lng: 13.1}},
	})

	assert.Equal(t, []string{"Öckerö GK"}, names(set.Filter(Criteria{Query: "VÄSTRA"})))
	assert.Equal(t, []string{"Öckerö GK"}, names(set.Filter(Criteria{Query: "öckerö"})))
	assert.Equal(t, []string{"Åre Pay & Play"}, names(set.Filter(Criteria{Query: "  ÅRE "})))
}

func TestFilterIsPure(t *testing.T) {
	set := alphaBeta()
	before := set.All()
	criteria := Criteria{Query: "a", MaxPrice: floatPtr(1000)}

	first := set.Filter(criteria)
	second := set.Filter(criteria)

	assert.Equal(t, first.All(), second.All())
	assert.Equal(t, before, set.All())

	// mutating a returned copy does not leak into the set
	all := set.All()
	all[0].Name = "Mutated"
	assert.Equal(t, "Alpha", set.At(0).Name)
}

func TestFilterEmptyCriteriaReturnsEverything(t *testing.T) {
	set := alphaBeta()

	got := set.Filter(Criteria{})
	assert.Equal(t, set.All(), got.All())
	assert.True(t, Criteria{Query: "   "}.IsEmpty())
}

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria(" alpha ", "300", "18")
	require.NoError(t, err)
	assert.Equal(t, "alpha", c.Query)
	require.NotNil(t, c.MaxPrice)
	assert.InDelta(t, 300.0, *c.MaxPrice, 0)
	require.NotNil(t, c.Holes)
	assert.Equal(t, 18, *c.Holes)

	c, err = ParseCriteria("", " ", "")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	c, err = ParseCriteria("", "249,5", "")
	require.NoError(t, err)
	assert.InDelta(t, 249.5, *c.MaxPrice, 0.0001)

	_, err = ParseCriteria("", "cheap", "")
	assert.True(t, errors.Is(err, ErrInvalidCriteria))

	_, err = ParseCriteria("", "", "nine")
	assert.True(t, errors.Is(err, ErrInvalidCriteria))
}

func TestNewSetDropsInvalid(t *testing.T) {
	set := NewSet([]Club{
		{ID: 1, Name: "", Location: spatial.Point{Lat: 57, Lng: 12}},
		{ID: 2, Name: "Off the globe", Location: spatial.Point{Lat: 91, Lng: 12}},
		{ID: 3, Name: "Kept", Location: spatial.Point{Lat: 57, Lng: 12}},
	})

	require.Equal(t, 1, set.Len())

	c, ok := set.Find(3)
	assert.True(t, ok)
	assert.Equal(t, "Kept", c.Name)

	_, ok = set.Find(1)
	assert.False(t, ok)
}
