// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package websites

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/golfkarta/golfkarta/spatial"
)

// cellResolution is the H3 resolution stored with each result.
const cellResolution = 7

// StatusCount is the number of results with one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Repository stores website check results.
type Repository interface {
	// CreateSchema creates the website_checks table
	CreateSchema() error

	// ReplaceResults replaces every stored result with results
	ReplaceResults(results []Result) error

	// ListResults returns the stored results, optionally only those with
	// the given status, ordered by source and club
	ListResults(status string) ([]Result, error)

	// Summary counts the stored results by status
	Summary() ([]StatusCount, error)

	// DB returns the underlying database connection
	DB() *sql.DB
}

type sqlRepository struct {
	db *sql.DB
}

// NewRepository creates a repository over a DuckDB connection.
func NewRepository(db *sql.DB) Repository {
	return &sqlRepository{db: db}
}

func (r *sqlRepository) DB() *sql.DB {
	return r.db
}

func (r *sqlRepository) CreateSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS website_checks (
			club_id INTEGER NOT NULL,
			club VARCHAR NOT NULL,
			source VARCHAR NOT NULL,
			point VARCHAR NOT NULL,
			h3_res7 UBIGINT,
			website VARCHAR,
			status VARCHAR NOT NULL,
			status_code INTEGER,
			final_url VARCHAR,
			title VARCHAR,
			checked_at TIMESTAMP NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating website_checks table: %w", err)
	}

	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func (r *sqlRepository) ReplaceResults(results []Result) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM website_checks`); err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			err = rErr
		}

		return fmt.Errorf("clearing website checks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO website_checks(
			club_id,
			club,
			source,
			point,
			h3_res7,
			website,
			status,
			status_code,
			final_url,
			title,
			checked_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			err = rErr // Prioritize the rollback error if commit also failed
		}

		return err
	}
	defer stmt.Close()

	for _, res := range results {
		var cell, statusCode any

		if res.Point.Valid() {
			c, err := spatial.Cell(res.Point, cellResolution)
			if err != nil {
				_ = tx.Rollback()

				return err
			}

			cell = uint64(c)
		}

		if res.StatusCode != 0 {
			statusCode = res.StatusCode
		}

		if _, err := stmt.Exec(
			res.ClubID,
			res.Club,
			res.Source,
			res.Point.String(),
			cell,
			nullString(res.Website),
			res.Status,
			statusCode,
			nullString(res.FinalURL),
			nullString(res.Title),
			res.CheckedAt,
		); err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				err = rErr
			}

			return fmt.Errorf("inserting check for %s: %w", res.Club, err)
		}
	}

	return tx.Commit()
}

func (r *sqlRepository) ListResults(status string) ([]Result, error) {
	query := `
		SELECT club_id, club, source, point, website, status, status_code, final_url, title, checked_at
		FROM website_checks
	`

	var args []any

	if status = strings.TrimSpace(status); status != "" {
		query += ` WHERE status = ?`

		args = append(args, status)
	}

	query += ` ORDER BY source, club, club_id`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying website checks: %w", err)
	}
	defer rows.Close()

	var results []Result

	for rows.Next() {
		var (
			res                      Result
			website, finalURL, title sql.NullString
			statusCode               sql.NullInt64
		)

		if err := rows.Scan(
			&res.ClubID,
			&res.Club,
			&res.Source,
			&res.Point,
			&website,
			&res.Status,
			&statusCode,
			&finalURL,
			&title,
			&res.CheckedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning website check: %w", err)
		}

		res.Website = website.String
		res.FinalURL = finalURL.String
		res.Title = title.String
		res.StatusCode = int(statusCode.Int64)

		results = append(results, res)
	}

	return results, rows.Err()
}

func (r *sqlRepository) Summary() ([]StatusCount, error) {
	rows, err := r.db.Query(`
		SELECT status, COUNT(*) AS n
		FROM website_checks
		GROUP BY status
		ORDER BY n DESC, status
	`)
	if err != nil {
		return nil, fmt.Errorf("summarizing website checks: %w", err)
	}
	defer rows.Close()

	var counts []StatusCount

	for rows.Next() {
		var c StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}

		counts = append(counts, c)
	}

	return counts, rows.Err()
}
