// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package curation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golfkarta/golfkarta/spatial"
)

const googleMapsEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleMapsGeocoder uses Google Maps Geocoding API.
type GoogleMapsGeocoder struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewGoogleMapsGeocoder creates a new Google Maps geocoder. A nil client
// gets a 10 second timeout.
func NewGoogleMapsGeocoder(apiKey string, client *http.Client) *GoogleMapsGeocoder {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &GoogleMapsGeocoder{
		apiKey:     apiKey,
		endpoint:   googleMapsEndpoint,
		httpClient: client,
	}
}

type googleMapsResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
			LocationType string `json:"location_type"` // ROOFTOP, RANGE_INTERPOLATED, GEOMETRIC_CENTER, APPROXIMATE
		} `json:"geometry"`
		FormattedAddress string   `json:"formatted_address"`
		Types            []string `json:"types"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

func searchQuery(name, municipality string) string {
	name = strings.TrimSpace(name)
	if !strings.Contains(strings.ToLower(name), "golf") {
		name += " golfklubb"
	}

	if municipality = strings.TrimSpace(municipality); municipality == "" {
		return name + ", Sverige"
	}

	return fmt.Sprintf("%s, %s, Sverige", name, municipality)
}

func (g *GoogleMapsGeocoder) Geocode(ctx context.Context, name, municipality string) (*GeocodingResult, error) {
	params := url.Values{}
	params.Set("address", searchQuery(name, municipality))
	params.Set("key", g.apiKey)
	params.Set("region", "se")
	params.Set("language", "sv")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating geocoding request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, &GeocodingError{Type: classifyTransportError(err), Message: "geocoding request failed", Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ClassifyHTTPError(resp.StatusCode, resp.Status)
	}

	var gmResp googleMapsResponse
	if err := json.NewDecoder(resp.Body).Decode(&gmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if gmResp.Status != "OK" {
		return nil, classifyStatus(gmResp.Status, gmResp.ErrorMessage)
	}

	if len(gmResp.Results) == 0 {
		return nil, &GeocodingError{Type: ErrorTypeNotFound, Message: "no results found for " + name}
	}

	result := gmResp.Results[0]

	confidence := ConfidenceLow

	switch result.Geometry.LocationType {
	case "ROOFTOP":
		confidence = ConfidenceHigh
	case "RANGE_INTERPOLATED", "GEOMETRIC_CENTER":
		confidence = ConfidenceMedium
	}

	// a hit on the golf course itself beats any address match
	for _, typ := range result.Types {
		if typ == "establishment" || typ == "point_of_interest" {
			confidence = ConfidenceHigh

			break
		}
	}

	return &GeocodingResult{
		Point: spatial.Point{
			Lat: result.Geometry.Location.Lat,
			Lng: result.Geometry.Location.Lng,
		},
		Confidence:  confidence,
		Provider:    "google_maps",
		DisplayName: result.FormattedAddress,
	}, nil
}
