// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golfkarta/golfkarta/club"
	"github.com/golfkarta/golfkarta/curation"
	"github.com/spf13/cobra"
)

var curateOptions = struct {
	Source string
	Out    string
}{}

var curateCmd = &cobra.Command{
	Use:   "curate",
	Short: "Verktyg för att förbättra datafilerna",
}

var curateGeocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Föreslår koordinater för klubbar som saknar dem",
	Long: `Läser en datafil, slår upp klubbarna utan giltiga koordinater med Google
Maps Geocoding API och skriver förslagen som JSON.

API-nyckeln läses från GOOGLE_MAPS_API_KEY eller hämtas via Application
Default Credentials från projektet i GOOGLE_CLOUD_PROJECT.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) (err error) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(curateOptions.Source)
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}

		clubs, err := club.Unlocated(data)
		if err != nil {
			return err
		}

		if len(clubs) == 0 {
			fmt.Fprintln(os.Stderr, "✅ Alla klubbar har koordinater")

			return nil
		}

		fmt.Fprintf(os.Stderr, "📍 %d klubbar saknar koordinater\n", len(clubs))

		key, err := curation.APIKey(cmd.Context())
		if err != nil {
			return err
		}

		suggester := curation.NewSuggester(curation.NewGoogleMapsGeocoder(key, httpClient(cfg)))
		suggestions, suggestErr := suggester.Suggest(cmd.Context(), clubs)

		var w io.Writer = os.Stdout

		if curateOptions.Out != "-" {
			f, cErr := os.Create(curateOptions.Out)
			if cErr != nil {
				return errors.Join(suggestErr, fmt.Errorf("creating output: %w", cErr))
			}

			defer func() {
				err = errors.Join(err, f.Close())
			}()

			w = f
		}

		if err := curation.WriteSuggestions(w, suggestions); err != nil {
			return errors.Join(suggestErr, err)
		}

		found := 0

		for _, s := range suggestions {
			if s.Point != nil {
				found++
			}
		}

		fmt.Fprintf(os.Stderr, "✅ %d av %d klubbar fick ett förslag\n", found, len(clubs))

		return suggestErr
	},
}

func init() {
	rootCmd.AddCommand(curateCmd)
	curateCmd.AddCommand(curateGeocodeCmd)

	curateGeocodeCmd.Flags().StringVar(&curateOptions.Source, "source", "", "Datafil att läsa")
	curateGeocodeCmd.Flags().StringVar(&curateOptions.Out, "out", "-", "Fil att skriva förslagen till, - för stdout")
	_ = curateGeocodeCmd.MarkFlagRequired("source")
}
