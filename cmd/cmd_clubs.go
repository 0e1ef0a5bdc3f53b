// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/golfkarta/golfkarta/club"
	"github.com/golfkarta/golfkarta/spatial"
	"github.com/golfkarta/golfkarta/utils/textutils"
	"github.com/spf13/cobra"
)

var clubsOptions = struct {
	Region   string
	Query    string
	MaxPrice string
	Holes    string
	Res      int
}{}

var clubsCmd = &cobra.Command{
	Use:   "clubs",
	Short: "Listar och sammanställer klubbarna i en region",
}

// loadRegion loads the clubs of the --region region.
func loadRegion(cmd *cobra.Command) (club.Set, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return club.Set{}, err
	}

	region, err := cfg.Region(clubsOptions.Region)
	if err != nil {
		return club.Set{}, err
	}

	set, results := newLoader(cfg).Load(cmd.Context(), region.Sources)
	reportSources(results)

	return set, nil
}

// fit pads or truncates s to width runes.
func fit(s string, width int) string {
	if n := utf8.RuneCountInString(s); n <= width {
		return s + strings.Repeat(" ", width-n)
	}

	r := []rune(s)

	return string(r[:width-1]) + "…"
}

var clubsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar klubbarna som matchar filtret",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		criteria, err := club.ParseCriteria(clubsOptions.Query, clubsOptions.MaxPrice, clubsOptions.Holes)
		if err != nil {
			return err
		}

		set, err := loadRegion(cmd)
		if err != nil {
			return err
		}

		subset := set.Filter(criteria)

		a, b, c, d := strings.Repeat("─", 32), strings.Repeat("─", 18), strings.Repeat("─", 3), strings.Repeat("─", 40)
		fmt.Printf("╭─%s─┬─%s─┬─%s─┬─%s─╮\n", a, b, c, d)
		fmt.Printf("│ %s │ %s │ %s │ %s │\n", fit("Namn", 32), fit("Kommun", 18), fit("Hål", 3), fit("Hemsida", 40))
		fmt.Printf("├─%s─┼─%s─┼─%s─┼─%s─┤\n", a, b, c, d)

		for _, cl := range subset.All() {
			holes := "?"
			if cl.Holes != nil {
				holes = strconv.Itoa(*cl.Holes)
			}

			website := cl.Website
			if website == "" {
				website = "-"
			}

			fmt.Printf("│ %s │ %s │ %3s │ %s │\n", fit(cl.Name, 32), fit(cl.Municipality, 18), holes, fit(website, 40))
		}

		fmt.Printf("╰─%s─┴─%s─┴─%s─┴─%s─╯\n", a, b, c, d)
		fmt.Println(textutils.Sprintf("%d av %d klubbar", subset.Len(), set.Len()))

		return nil
	},
}

var clubsDensityCmd = &cobra.Command{
	Use:   "density",
	Short: "Räknar klubbarna per H3-cell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		set, err := loadRegion(cmd)
		if err != nil {
			return err
		}

		cells, err := spatial.Density(set.Points(), clubsOptions.Res)
		if err != nil {
			return fmt.Errorf("computing density: %w", err)
		}

		a, b, c := strings.Repeat("─", 15), strings.Repeat("─", 22), strings.Repeat("─", 7)
		fmt.Printf("╭─%s─┬─%s─┬─%s─╮\n", a, b, c)
		fmt.Printf("│ %-15s │ %-22s │ %7s │\n", "Cell", "Mittpunkt", "Klubbar")
		fmt.Printf("├─%s─┼─%s─┼─%s─┤\n", a, b, c)

		for _, cell := range cells {
			center := fmt.Sprintf("%.4f, %.4f", cell.Center.Lat, cell.Center.Lng)
			fmt.Printf("│ %-15s │ %-22s │ %7s │\n", cell.Cell, center, textutils.Sprintf("%d", cell.Count))
		}

		fmt.Printf("╰─%s─┴─%s─┴─%s─╯\n", a, b, c)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(clubsCmd)
	clubsCmd.AddCommand(clubsListCmd)
	clubsCmd.AddCommand(clubsDensityCmd)

	clubsCmd.PersistentFlags().StringVar(&clubsOptions.Region, "region", "", "Region (standard enligt konfigurationen)")
	clubsListCmd.Flags().StringVar(&clubsOptions.Query, "q", "", "Sök på namn eller kommun")
	clubsListCmd.Flags().StringVar(&clubsOptions.MaxPrice, "max-price", "", "Högsta pris i kronor")
	clubsListCmd.Flags().StringVar(&clubsOptions.Holes, "holes", "", "Antal hål")
	clubsDensityCmd.Flags().IntVar(&clubsOptions.Res, "res", 5, "H3-upplösning (0-15)")
}
