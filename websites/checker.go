// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

// Package websites checks that club websites are reachable.
package websites

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golfkarta/golfkarta/club"
	"github.com/golfkarta/golfkarta/spatial"
	"github.com/golfkarta/golfkarta/utils/htmlutils"
)

// StatusNoWebsite is the status of clubs without a website.
const StatusNoWebsite = "NO WEBSITE"

// maxBodySize bounds how much of a page is read to find its title.
const maxBodySize = 1 << 20

// Result is the outcome of checking one club website.
type Result struct {
	ClubID     int           `json:"club_id"`
	Club       string        `json:"club"`
	Source     string        `json:"source"`
	Point      spatial.Point `json:"point"`
	Website    string        `json:"website,omitempty"`
	Status     string        `json:"status"`
	StatusCode int           `json:"status_code,omitempty"`
	FinalURL   string        `json:"final_url,omitempty"`
	Title      string        `json:"title,omitempty"`
	CheckedAt  time.Time     `json:"checked_at"`
}

// OK reports whether the website answered with a 2xx status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// NormalizeURL trims the website and adds https:// when the scheme is missing.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &CheckError{Kind: ErrorKindInvalidURL, URL: raw, Err: fmt.Errorf("empty website")}
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + strings.TrimPrefix(raw, "//")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", &CheckError{Kind: ErrorKindInvalidURL, URL: raw, Err: err}
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", &CheckError{Kind: ErrorKindInvalidURL, URL: raw, Err: fmt.Errorf("unsupported URL")}
	}

	return u.String(), nil
}

// Checker checks club websites.
type Checker struct {
	client   *http.Client
	maxProcs int
	now      func() time.Time
}

// NewChecker creates a checker using client. maxProcs bounds concurrent
// checks, zero means the number of CPUs.
func NewChecker(client *http.Client, maxProcs int) *Checker {
	if client == nil {
		client = http.DefaultClient
	}

	if maxProcs <= 0 {
		maxProcs = runtime.NumCPU()
	}

	return &Checker{client: client, maxProcs: maxProcs, now: time.Now}
}

// Check checks the website of c. An https website that cannot be reached is
// retried over http.
func (ch *Checker) Check(ctx context.Context, c club.Club) Result {
	res := Result{
		ClubID:    c.ID,
		Club:      c.Name,
		Source:    c.Source,
		Point:     c.Location,
		CheckedAt: ch.now(),
	}

	if strings.TrimSpace(c.Website) == "" {
		res.Status = StatusNoWebsite

		return res
	}

	website, err := NormalizeURL(c.Website)
	if err != nil {
		res.Website = strings.TrimSpace(c.Website)
		res.Status = ClassifyError(err).String()

		return res
	}

	res.Website = website

	err = ch.fetch(ctx, website, &res)
	if err != nil && strings.HasPrefix(website, "https://") {
		fallback := "http://" + strings.TrimPrefix(website, "https://")
		if ch.fetch(ctx, fallback, &res) == nil {
			res.Website = fallback
			err = nil
		}
	}

	if err != nil {
		res.Status = ClassifyError(err).String()
	}

	return res
}

func (ch *Checker) fetch(ctx context.Context, website string, res *Result) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, website, nil)
	if err != nil {
		return &CheckError{Kind: ErrorKindInvalidURL, URL: website, Err: err}
	}

	resp, err := ch.client.Do(req)
	if err != nil {
		return &CheckError{Kind: ClassifyError(err), URL: website, Err: err}
	}
	defer resp.Body.Close()

	resp.Body = io.NopCloser(io.LimitReader(resp.Body, maxBodySize))

	res.StatusCode = resp.StatusCode
	res.Status = strconv.Itoa(resp.StatusCode)
	res.FinalURL = resp.Request.URL.String()
	res.Title = ""

	if title, err := htmlutils.ResponseTitle(resp); err == nil {
		res.Title = title
	}

	return nil
}

// CheckAll checks every club concurrently and returns the results in club
// order. progress, when set, is called after each check.
func (ch *Checker) CheckAll(ctx context.Context, clubs []club.Club, progress func(Result)) []Result {
	results := make([]Result, len(clubs))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	semaphore := make(chan struct{}, ch.maxProcs)

	for i, c := range clubs {
		wg.Add(1)

		go func(i int, c club.Club) {
			defer wg.Done()
			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			results[i] = ch.Check(ctx, c)

			if progress != nil {
				mu.Lock()
				progress(results[i])
				mu.Unlock()
			}
		}(i, c)
	}

	wg.Wait()

	return results
}

// LogProgress returns a progress callback printing "[i/total] club ... status"
// lines, for when no terminal progress bar is available.
func LogProgress(total int) func(Result) {
	current := 0

	return func(r Result) {
		current++
		log.Printf("[%d/%d] Checking %s ... %s", current, total, r.Club, r.Status)
	}
}
