// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package websites

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/golfkarta/golfkarta/spatial"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sql.DB, Repository) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db, repo
}

func sampleResults() []Result {
	checkedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	return []Result{
		{
			ClubID:     1,
			Club:       "Alpha",
			Source:     "a.geojson",
			Point:      spatial.Point{Lat: 57.5, Lng: 12.25},
			Website:    "https://alpha.se",
			Status:     "200",
			StatusCode: 200,
			FinalURL:   "https://www.alpha.se/",
			Title:      "Alpha GK",
			CheckedAt:  checkedAt,
		},
		{
			ClubID:    2,
			Club:      "Beta",
			Source:    "a.geojson",
			Point:     spatial.Point{Lat: 58.5, Lng: 13.25},
			Status:    StatusNoWebsite,
			CheckedAt: checkedAt,
		},
		{
			ClubID:    3,
			Club:      "Gamma",
			Source:    "b.json",
			Point:     spatial.Point{Lat: 59.5, Lng: 14.25},
			Website:   "https://gamma.se",
			Status:    ErrorKindDNS.String(),
			CheckedAt: checkedAt,
		},
	}
}

func TestCreateSchema(t *testing.T) {
	db, _ := setupTestDB(t)

	var tableName string

	err := db.QueryRow("SELECT table_name FROM information_schema.tables WHERE table_name = 'website_checks'").Scan(&tableName)
	require.NoError(t, err)
	assert.Equal(t, "website_checks", tableName)
}

func TestReplaceAndListResults(t *testing.T) {
	_, repo := setupTestDB(t)

	require.NoError(t, repo.ReplaceResults(sampleResults()))

	got, err := repo.ListResults("")
	require.NoError(t, err)

	for i := range got {
		got[i].CheckedAt = got[i].CheckedAt.UTC()
	}

	if diff := cmp.Diff(sampleResults(), got); diff != "" {
		t.Errorf("ListResults() mismatch (-want +got):\n%s", diff)
	}

	got, err = repo.ListResults(StatusNoWebsite)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Beta", got[0].Club)

	// a second run replaces the first one
	require.NoError(t, repo.ReplaceResults(sampleResults()[:1]))

	got, err = repo.ListResults("")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSummary(t *testing.T) {
	_, repo := setupTestDB(t)

	results := sampleResults()
	results = append(results, results[1])
	require.NoError(t, repo.ReplaceResults(results))

	counts, err := repo.Summary()
	require.NoError(t, err)

	assert.Equal(t, []StatusCount{
		{Status: StatusNoWebsite, Count: 2},
		{Status: "200", Count: 1},
		{Status: "DNS ERROR", Count: 1},
	}, counts)
}

func TestH3CellStored(t *testing.T) {
	db, repo := setupTestDB(t)

	require.NoError(t, repo.ReplaceResults(sampleResults()[:1]))

	var cell uint64
	require.NoError(t, db.QueryRow(`SELECT h3_res7 FROM website_checks`).Scan(&cell))

	expected, err := spatial.Cell(spatial.Point{Lat: 57.5, Lng: 12.25}, cellResolution)
	require.NoError(t, err)
	assert.Equal(t, uint64(expected), cell)
}
