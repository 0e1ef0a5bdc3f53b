// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package club

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection converts s into GeoJSON point features. Properties carry
// id and name, plus municipality, region, holes, price and website when
// known. The output decodes back into the same clubs with Decode.
func (s Set) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, c := range s.clubs {
		f := geojson.NewFeature(orb.Point{c.Location.Lng, c.Location.Lat})
		f.Properties["id"] = c.ID
		f.Properties["name"] = c.Name

		if c.Municipality != "" {
			f.Properties["municipality"] = c.Municipality
		}

		if c.Region != "" {
			f.Properties["region"] = c.Region
		}

		if c.Holes != nil {
			f.Properties["holes"] = *c.Holes
		}

		if c.Price != nil {
			f.Properties["price"] = *c.Price
		}

		if c.Website != "" {
			f.Properties["website"] = c.Website
		}

		fc.Append(f)
	}

	return fc
}
