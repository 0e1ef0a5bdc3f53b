// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/golfkarta/golfkarta/web"
	"github.com/spf13/cobra"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Bygger den statiska webbplatsen",
	Long: `Läser datafilerna för varje region och skriver en sida per region
(index.html för standardregionen) tillsammans med <region>.geojson.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		results, err := web.Build(cmd.Context(), cfg, newLoader(cfg), buildOut)
		for _, r := range results {
			reportSources(r.Sources)
			fmt.Printf("✅ %s: %d klubbar → %s, %s\n", r.Region, r.Clubs, r.Page, r.Data)
		}

		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildOut, "out", "site", "Katalog att skriva webbplatsen till")
}
