// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package curation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/golfkarta/golfkarta/club"
	"github.com/golfkarta/golfkarta/spatial"
)

// Suggestion is a proposed location for a club without coordinates.
type Suggestion struct {
	Name         string         `json:"name"`
	Municipality string         `json:"municipality,omitempty"`
	Point        *spatial.Point `json:"point,omitempty"`
	Confidence   string         `json:"confidence,omitempty"`
	Provider     string         `json:"provider,omitempty"`
	DisplayName  string         `json:"display_name,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// NotFound is the suggestion error for a club the provider has no match for.
const NotFound = "not found"

// Suggester geocodes clubs one at a time.
type Suggester struct {
	geocoder Geocoder
	// Delay is the pause between requests and the base of the rate limit
	// backoff.
	Delay time.Duration
	// Retries is how many times a rate limited or timed out lookup is
	// repeated.
	Retries int
	sleep   func(context.Context, time.Duration) error
}

// NewSuggester creates a suggester over g.
func NewSuggester(g Geocoder) *Suggester {
	return &Suggester{
		geocoder: g,
		Delay:    200 * time.Millisecond,
		Retries:  3,
		sleep:    sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Suggest geocodes every club and returns one suggestion per club, in order.
// Lookups that fail or land outside Sweden keep the error text. A spent quota
// or a cancelled context stops the run and is returned with the suggestions
// made so far.
func (s *Suggester) Suggest(ctx context.Context, clubs []club.Club) ([]Suggestion, error) {
	ret := make([]Suggestion, 0, len(clubs))

	for i, c := range clubs {
		if i > 0 {
			if err := s.sleep(ctx, s.Delay); err != nil {
				return ret, err
			}
		}

		res, err := s.geocode(ctx, c)

		sg := Suggestion{Name: c.Name, Municipality: c.Municipality}

		switch {
		case err != nil && (IsQuotaExceededError(err) || ctx.Err() != nil):
			return ret, fmt.Errorf("geocoding %s: %w", c.Name, err)
		case err != nil && IsNotFoundError(err):
			sg.Error = NotFound
		case err != nil:
			log.Printf("⚠️ %s: %v", c.Name, err)
			sg.Error = err.Error()
		default:
			if vErr := ValidateCoordinates(res.Point); vErr != nil {
				sg.Error = vErr.Error()
			} else {
				p := res.Point
				sg.Point = &p
			}

			sg.Confidence = res.Confidence
			sg.Provider = res.Provider
			sg.DisplayName = res.DisplayName
		}

		ret = append(ret, sg)
	}

	return ret, nil
}

func (s *Suggester) geocode(ctx context.Context, c club.Club) (*GeocodingResult, error) {
	backoff := s.Delay

	for attempt := 0; ; attempt++ {
		res, err := s.geocoder.Geocode(ctx, c.Name, c.Municipality)
		if err == nil || attempt >= s.Retries || ctx.Err() != nil {
			return res, err
		}

		switch {
		case IsRateLimitError(err):
			backoff *= 2
			log.Printf("Rate limited on %s, retrying in %s", c.Name, backoff)
		case IsTimeoutError(err):
			log.Printf("Timeout on %s, retrying in %s", c.Name, backoff)
		default:
			return res, err
		}

		if err := s.sleep(ctx, backoff); err != nil {
			return nil, err
		}
	}
}

// WriteSuggestions writes suggestions as indented JSON.
func WriteSuggestions(w io.Writer, suggestions []Suggestion) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(suggestions); err != nil {
		return fmt.Errorf("writing suggestions: %w", err)
	}

	return nil
}
