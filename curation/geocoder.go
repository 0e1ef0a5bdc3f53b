// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

// Package curation suggests coordinates for clubs that the data files list
// without a usable location.
package curation

import (
	"context"

	"github.com/golfkarta/golfkarta/spatial"
)

// Confidence levels reported by a Geocoder.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// GeocodingResult represents a geocoding result from any provider.
type GeocodingResult struct {
	Point       spatial.Point
	Confidence  string
	Provider    string
	DisplayName string
}

// Geocoder looks up a club by name and municipality.
type Geocoder interface {
	Geocode(ctx context.Context, name, municipality string) (*GeocodingResult, error)
}
