// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2img CLI: select a PDF,
// gather output options, rasterize every page, and record the run.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf2img/internal/config"
	"github.com/pdiddy/pdf2img/internal/ui"
	"github.com/pdiddy/pdf2img/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf2img CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf2img",
	Short: "Convert PDF documents into per-page images",
	Long: `pdf2img converts PDF documents into sequences of raster images, one per
page, through Poppler's command-line tools or the in-process MuPDF engine.

Each conversion creates a timestamped folder under the output root with
sequentially numbered page files (pagina_001.jpg, ...), a run manifest, and
a history entry. Interactive prompts fill in whatever flags and the config
file do not provide.`,
	SilenceUsage: true,
}

// app bundles the per-invocation context: settled configuration, logger,
// and terminal surface. Constructed once per command run and passed by
// reference; there is no other shared state.
type app struct {
	cfg       types.AppConfig
	ui        *ui.UI
	log       zerolog.Logger
	logCloser io.Closer
}

func newApp(cmd *cobra.Command) (*app, error) {
	noColor, _ := cmd.Flags().GetBool("no-color")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := config.Load()
	logger, closer, err := config.NewLogger(cfg.Log, verbose, noColor)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		ui:        ui.Default(noColor),
		log:       logger,
		logCloser: closer,
	}, nil
}

func (a *app) close() {
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2img.yaml or ~/.config/pdf2img/pdf2img.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if used := config.Init(cfgFile); used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
