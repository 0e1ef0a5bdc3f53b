// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/golfkarta/golfkarta/websites"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var websitesOptions = struct {
	DbPath   string
	Status   string
	MaxProcs int
}{}

var websitesCmd = &cobra.Command{
	Use:   "websites",
	Short: "Kontrollerar klubbarnas hemsidor",
}

func openWebsitesRepository() (*sql.DB, websites.Repository, error) {
	db, err := sql.Open("duckdb", websitesOptions.DbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	repo := websites.NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		db.Close()

		return nil, nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, repo, nil
}

func printSummary(repo websites.Repository) error {
	counts, err := repo.Summary()
	if err != nil {
		return err
	}

	for _, c := range counts {
		icon := "❌"
		if c.Status == websites.StatusNoWebsite {
			icon = "➖"
		} else if strings.HasPrefix(c.Status, "2") {
			icon = "✅"
		}

		fmt.Printf("%s %-18s %d\n", icon, c.Status, c.Count)
	}

	return nil
}

var websitesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Besöker varje klubbs hemsida och sparar resultatet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		set, err := loadRegion(cmd)
		if err != nil {
			return err
		}

		clubs := set.All()

		var progress func(websites.Result)

		if isatty.IsTerminal(os.Stderr.Fd()) {
			bar := progressbar.NewOptions(len(clubs),
				progressbar.OptionSetDescription("Checking websites"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
			progress = func(websites.Result) { _ = bar.Add(1) }
		} else {
			progress = websites.LogProgress(len(clubs))
		}

		checker := websites.NewChecker(httpClient(cfg), websitesOptions.MaxProcs)
		results := checker.CheckAll(cmd.Context(), clubs, progress)

		db, repo, err := openWebsitesRepository()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repo.ReplaceResults(results); err != nil {
			return fmt.Errorf("storing results: %w", err)
		}

		fmt.Printf("💾 %d resultat sparade i %s\n", len(results), websitesOptions.DbPath)

		return printSummary(repo)
	},
}

var websitesReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Visar resultatet av den senaste kontrollen",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		db, repo, err := openWebsitesRepository()
		if err != nil {
			return err
		}
		defer db.Close()

		results, err := repo.ListResults(websitesOptions.Status)
		if err != nil {
			return err
		}

		a, b, c := strings.Repeat("─", 32), strings.Repeat("─", 18), strings.Repeat("─", 40)
		fmt.Printf("╭─%s─┬─%s─┬─%s─╮\n", a, b, c)
		fmt.Printf("│ %s │ %s │ %s │\n", fit("Klubb", 32), fit("Status", 18), fit("Titel / hemsida", 40))
		fmt.Printf("├─%s─┼─%s─┼─%s─┤\n", a, b, c)

		for _, r := range results {
			detail := r.Title
			if detail == "" {
				detail = r.Website
			}

			if detail == "" {
				detail = "-"
			}

			fmt.Printf("│ %s │ %s │ %s │\n", fit(r.Club, 32), fit(r.Status, 18), fit(detail, 40))
		}

		fmt.Printf("╰─%s─┴─%s─┴─%s─╯\n", a, b, c)

		return printSummary(repo)
	},
}

func init() {
	rootCmd.AddCommand(websitesCmd)
	websitesCmd.AddCommand(websitesCheckCmd)
	websitesCmd.AddCommand(websitesReportCmd)

	websitesCmd.PersistentFlags().StringVar(&websitesOptions.DbPath, "db", "golfkarta.duckdb", "DuckDB-fil för resultaten")
	websitesCheckCmd.Flags().StringVar(&clubsOptions.Region, "region", "", "Region (standard enligt konfigurationen)")
	websitesCheckCmd.Flags().IntVar(
		&websitesOptions.MaxProcs,
		"max-procs",
		0,
		"Max number of concurrent checks. Defaults to the number of CPUs",
	)
	websitesReportCmd.Flags().StringVar(&websitesOptions.Status, "status", "", "Visa bara resultat med denna status")
}
