// Copyright 2026 The Golfkarta Authors
//
// SPDX-License-Identifier: Apache-2.0
package spatial

import (
	"fmt"
	"sort"

	"github.com/uber/h3-go/v4"
)

// CellCount is the number of points that fall in one H3 cell.
type CellCount struct {
	Cell   string `json:"cell"`
	Center Point  `json:"center"`
	Count  int    `json:"count"`
}

// Cell returns the H3 cell containing p at the given resolution.
func Cell(p Point, res int) (h3.Cell, error) {
	cell, err := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), res)
	if err != nil {
		return 0, fmt.Errorf("error converting to h3 cell at res %d: %w", res, err)
	}

	return cell, nil
}

// Density groups points by H3 cell, densest cells first.
func Density(points []Point, res int) ([]CellCount, error) {
	counts := make(map[h3.Cell]int)

	for _, p := range points {
		cell, err := Cell(p, res)
		if err != nil {
			return nil, err
		}

		counts[cell]++
	}

	ret := make([]CellCount, 0, len(counts))

	for cell, n := range counts {
		center, err := cell.LatLng()
		if err != nil {
			return nil, fmt.Errorf("computing center of %s: %w", cell, err)
		}

		ret = append(ret, CellCount{
			Cell:   cell.String(),
			Center: Point{Lat: center.Lat, Lng: center.Lng},
			Count:  n,
		})
	}

	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Count != ret[j].Count {
			return ret[i].Count > ret[j].Count
		}

		return ret[i].Cell < ret[j].Cell
	})

	return ret, nil
}
