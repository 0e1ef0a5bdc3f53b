// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package curation

import (
	"math"
	"testing"

	"github.com/golfkarta/golfkarta/spatial"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{
			name:    "valid göteborg coordinates",
			lat:     57.7089,
			lng:     11.9746,
			wantErr: false,
		},
		{
			name:    "valid kiruna coordinates",
			lat:     67.8558,
			lng:     20.2253,
			wantErr: false,
		},
		{
			name:    "latitude too high",
			lat:     91.0,
			lng:     15.0,
			wantErr: true,
		},
		{
			name:    "longitude too low",
			lat:     60.0,
			lng:     -181.0,
			wantErr: true,
		},
		{
			name:    "not a number",
			lat:     math.NaN(),
			lng:     15.0,
			wantErr: true,
		},
		{
			name:    "swapped coordinates",
			lat:     11.9746,
			lng:     57.7089,
			wantErr: true,
		},
		{
			name:    "outside sweden - copenhagen is too far south",
			lat:     54.5,
			lng:     12.5,
			wantErr: true,
		},
		{
			name:    "outside sweden - helsinki is too far east",
			lat:     60.17,
			lng:     24.94,
			wantErr: true,
		},
		{
			name:    "edge case - south west corner",
			lat:     55.0,
			lng:     10.5,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(spatial.Point{Lat: tt.lat, Lng: tt.lng})
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinates() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCoordinatesMessages(t *testing.T) {
	err := ValidateCoordinates(spatial.Point{Lat: 91, Lng: 15})
	if err == nil || err.Error() != "invalid coordinates POINT(15.000000 91.000000)" {
		t.Errorf("unexpected error for out of range latitude: %v", err)
	}

	err = ValidateCoordinates(spatial.Point{Lat: 54.5, Lng: 12.5})
	if err == nil || err.Error() != "coordinates outside Sweden: POINT(12.500000 54.500000)" {
		t.Errorf("unexpected error for copenhagen: %v", err)
	}
}
