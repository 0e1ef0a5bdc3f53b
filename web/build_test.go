// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golfkarta/golfkarta/club"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	cfg := testConfig(t)
	out := filepath.Join(t.TempDir(), "site")

	results, err := Build(context.Background(), cfg, club.NewLoader(nil), out)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, filepath.Join(out, "index.html"), results[0].Page)
	assert.Equal(t, 2, results[0].Clubs)
	assert.Equal(t, filepath.Join(out, "tom.html"), results[1].Page)
	assert.Equal(t, 0, results[1].Clubs)
	require.Len(t, results[1].Sources, 1)
	assert.Error(t, results[1].Sources[0].Err)

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `href="tom.html"`)
	assert.Contains(t, string(page), `"vast.geojson"`)

	data, err := os.ReadFile(filepath.Join(out, "vast.geojson"))
	require.NoError(t, err)

	clubs, err := club.Decode(data)
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Alpha GK", clubs[0].Name)
	require.NotNil(t, clubs[0].Holes)
	assert.Equal(t, 18, *clubs[0].Holes)

	data, err = os.ReadFile(filepath.Join(out, "tom.geojson"))
	require.NoError(t, err)

	clubs, err = club.Decode(data)
	require.NoError(t, err)
	assert.Empty(t, clubs)
}
