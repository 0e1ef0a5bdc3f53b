// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/golfkarta/golfkarta/web"
	"github.com/spf13/cobra"
)

var serveOptions = struct {
	Addr   string
	Region string
}{}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startar en lokal förhandsvisning av kartan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		region, err := cfg.Region(serveOptions.Region)
		if err != nil {
			return err
		}

		server := web.NewServer(cfg, newLoader(cfg))
		server.Preload(cmd.Context())

		url := "http://" + serveOptions.Addr + "/"
		if region.Slug != cfg.DefaultRegion {
			url += "region/" + region.Slug
		}

		fmt.Println("🗺️  Golfkarta preview server starting...")
		fmt.Printf("📍 Open %s in your browser\n", url)
		fmt.Println("🔒 Local only - not exposed to internet")

		return server.Run(serveOptions.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveOptions.Addr, "addr", "localhost:8080", "Adress att lyssna på")
	serveCmd.Flags().StringVar(&serveOptions.Region, "region", "", "Region att öppna (standard enligt konfigurationen)")
}
