// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package club

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listBody = `[
	{"name": "Alpha", "municipality": "X", "holes": 9, "price": 200, "lat": 57.1, "lng": 12.1},
	{"name": "", "lat": 57.2, "lng": 12.2}
]`

const geoBody = `{"type": "FeatureCollection", "features": [
	{"type": "Feature", "geometry": {"type": "Point", "coordinates": [13.2, 58.2]},
	 "properties": {"name": "Beta", "municipality": "Y", "holes": 18, "price": 500}},
	{"type": "Feature", "geometry": {"type": "Point", "coordinates": [12.1, 57.1]},
	 "properties": {"name": "Alpha", "municipality": "X", "holes": 9, "price": 200}}
]}`

func newSourceServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/list.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listBody))
	})
	mux.HandleFunc("/clubs.geojson", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(geoBody))
	})
	mux.HandleFunc("/broken.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features": [`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestLoaderMergesSourcesInOrder(t *testing.T) {
	srv := newSourceServer(t)

	var ready []Set

	loader := NewLoader(srv.Client())
	loader.OnReady = func(s Set) { ready = append(ready, s) }

	set, results := loader.Load(context.Background(), []string{
		srv.URL + "/list.json",
		srv.URL + "/missing.json",
		srv.URL + "/clubs.geojson",
		srv.URL + "/broken.json",
	})

	require.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"Alpha", "Beta", "Alpha"}, names(set))

	// duplicates across sources are kept with their own IDs
	assert.Equal(t, 1, set.At(0).ID)
	assert.Equal(t, 2, set.At(1).ID)
	assert.Equal(t, 3, set.At(2).ID)
	assert.Equal(t, srv.URL+"/clubs.geojson", set.At(2).Source)

	require.Len(t, results, 4)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, results[0].Clubs)
	assert.Error(t, results[1].Err)
	assert.Equal(t, 0, results[1].Clubs)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 2, results[2].Clubs)
	assert.Error(t, results[3].Err)

	var srcErr *SourceError
	require.True(t, errors.As(results[1].Err, &srcErr))
	assert.Equal(t, srv.URL+"/missing.json", srcErr.Source)

	require.Len(t, ready, 1)
	assert.Equal(t, set.All(), ready[0].All())
}

func TestLoaderLocalFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vastra-gotaland.geojson")
	require.NoError(t, os.WriteFile(path, []byte(geoBody), 0o600))

	loader := NewLoader(nil)

	set, results := loader.Load(context.Background(), []string{
		path,
		"file://" + path,
		filepath.Join(dir, "nope.json"),
	})

	assert.Equal(t, 4, set.Len())
	assert.Error(t, results[2].Err)
}

func TestLoaderAllSourcesFail(t *testing.T) {
	loader := NewLoader(nil)

	set, results := loader.Load(context.Background(), []string{filepath.Join(t.TempDir(), "nope.json")})

	assert.Equal(t, 0, set.Len())
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestLoaderNoSources(t *testing.T) {
	called := false

	loader := NewLoader(nil)
	loader.OnReady = func(Set) { called = true }

	set, results := loader.Load(context.Background(), nil)

	assert.Equal(t, 0, set.Len())
	assert.Empty(t, results)
	assert.True(t, called)
}
