// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package club

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// maxSourceSize bounds the body read from a single source.
const maxSourceSize = 32 << 20

// SourceResult describes what one source contributed to a load.
type SourceResult struct {
	Source string
	Clubs  int
	Err    error
}

// Loader fetches club data sources and merges them into a Set.
type Loader struct {
	client *http.Client

	// OnReady, when set, is called with the merged set once every source
	// has resolved.
	OnReady func(Set)
}

// NewLoader creates a loader that fetches remote sources with client. A nil
// client means http.DefaultClient.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}

	return &Loader{client: client}
}

// Load fetches every source concurrently. A source that fails contributes no
// clubs; the failure is logged and reported in its SourceResult. Clubs are
// merged in source order without deduplication and numbered from 1.
func (l *Loader) Load(ctx context.Context, sources []string) (Set, []SourceResult) {
	results := make([]SourceResult, len(sources))
	decoded := make([][]Club, len(sources))

	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)

		go func(i int, src string) {
			defer wg.Done()

			results[i].Source = src

			clubs, err := l.loadSource(ctx, src)
			if err != nil {
				log.Printf("Kunde inte ladda %s: %v", src, err)

				results[i].Err = &SourceError{Source: src, Err: err}

				return
			}

			decoded[i] = clubs
			results[i].Clubs = len(clubs)
		}(i, src)
	}

	wg.Wait()

	var merged []Club

	for i, clubs := range decoded {
		for _, c := range clubs {
			c.ID = len(merged) + 1
			c.Source = sources[i]
			merged = append(merged, c)
		}
	}

	set := NewSet(merged)

	if l.OnReady != nil {
		l.OnReady(set)
	}

	return set, results
}

func (l *Loader) loadSource(ctx context.Context, src string) ([]Club, error) {
	data, err := l.fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func (l *Loader) fetch(ctx context.Context, src string) ([]byte, error) {
	if !isRemote(src) {
		path := src

		if strings.HasPrefix(src, "file://") {
			u, err := url.Parse(src)
			if err != nil {
				return nil, fmt.Errorf("parsing source URL: %w", err)
			}

			path = u.Path
		}

		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("reading source file: %w", err)
		}

		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return data, nil
}
