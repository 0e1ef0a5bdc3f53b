// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golfkarta/golfkarta/club"
	"github.com/golfkarta/golfkarta/config"
	"github.com/golfkarta/golfkarta/utils/httputils"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

type rootOptions struct {
	ConfigPath          string
	EnableHTTPTrace     bool
	EnableHTTPBodyTrace bool
}

var rootOpts = &rootOptions{}

var rootCmd = &cobra.Command{
	Use:   "golfkarta",
	Short: "karta över svenska golfklubbar",
	Long: `
golfkarta läser datafiler med svenska golfklubbar, visar dem på en karta med
filter på namn, kommun, pris och antal hål, och bygger en statisk webbplats.
`,
	SilenceUsage: true,
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := rootOpts.ConfigPath
	if path == "" {
		path = config.DefaultFile
	}

	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func httpClient(cfg *config.Config) *http.Client {
	opts := httputils.Options{
		UserAgent: fmt.Sprintf("%s golfkarta/%s", cfg.UserAgent, Version),
		Timeout:   cfg.HTTPTimeout,
		TraceBody: rootOpts.EnableHTTPBodyTrace,
	}

	if rootOpts.EnableHTTPTrace || rootOpts.EnableHTTPBodyTrace {
		opts.Trace = os.Stderr
	}

	return httputils.NewClient(opts)
}

func newLoader(cfg *config.Config) *club.Loader {
	return club.NewLoader(httpClient(cfg))
}

// reportSources prints one line per failed source.
func reportSources(results []club.SourceResult) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("⚠️  %s: %v\n", r.Source, r.Err)
		}
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootOpts.ConfigPath,
		"config",
		"",
		"Konfigurationsfil (standard "+config.DefaultFile+" om den finns)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&rootOpts.EnableHTTPTrace,
		"http-trace",
		false,
		"Display HTTP requests-responses",
	)
	rootCmd.PersistentFlags().BoolVar(
		&rootOpts.EnableHTTPBodyTrace,
		"http-body-trace",
		false,
		"Display HTTP requests-responses bodies",
	)
}
