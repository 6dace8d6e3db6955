// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf2img/internal/document"
	"github.com/pdiddy/pdf2img/internal/explorer"
	"github.com/pdiddy/pdf2img/internal/fetch"
	"github.com/pdiddy/pdf2img/internal/options"
	"github.com/pdiddy/pdf2img/internal/outdir"
	"github.com/pdiddy/pdf2img/internal/poppler"
	"github.com/pdiddy/pdf2img/internal/render"
	"github.com/pdiddy/pdf2img/internal/ui"
	"github.com/pdiddy/pdf2img/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [source.pdf|URL]",
	Short: "Convert a PDF into one image per page",
	Long: `Convert rasterizes each page of a PDF document into sequentially
numbered image files (pagina_001.jpg, pagina_002.jpg, ...) inside a new
timestamped folder under the output root.

The source may be a local file, an http(s) URL, or omitted entirely to pick
interactively from the PDF files in the working directory. Missing options
are gathered through short prompts; flags and config-file values pre-seed
the defaults and skip their own prompts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("name", "", "output folder base name (default \"documento\")")
	convertCmd.Flags().Int("dpi", 0, "rasterization resolution, 72-600 (default 300)")
	convertCmd.Flags().String("format", "", "page format: jpeg or png (default jpeg)")
	convertCmd.Flags().Int("quality", 0, "JPEG quality, 1-100 (default 95)")
	convertCmd.Flags().String("engine", "", "rendering engine: poppler or mupdf")
	convertCmd.Flags().String("out-root", "", "folder collecting all conversion runs")
	convertCmd.Flags().String("poppler-path", "", "directory holding the Poppler binaries")
	convertCmd.Flags().Bool("yes", false, "accept the defaults for every prompt")
	convertCmd.Flags().Bool("no-input", false, "never prompt; fail where input would be required")
	convertCmd.Flags().Bool("open", false, "open the output folder without asking")
	convertCmd.Flags().Bool("no-open", false, "never open the output folder")
	convertCmd.Flags().Bool("no-history", false, "skip recording this run in the history")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	noInput, _ := cmd.Flags().GetBool("no-input")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	seed, err := seedFromFlags(cmd, a.cfg)
	if err != nil {
		return err
	}

	root := a.cfg.Output.Root
	if v, _ := cmd.Flags().GetString("out-root"); v != "" {
		root = v
	}

	// Advisory Poppler check. Everywhere except Windows an unresolved
	// location is tolerated; rendering reports the authoritative error.
	if seed.Engine == types.EnginePoppler && seed.PopplerDir == "" {
		loc := poppler.Locate()
		switch loc.Status {
		case poppler.StatusFoundAt:
			seed.PopplerDir = loc.Dir
			a.log.Debug().Str("dir", loc.Dir).Msg("poppler resolved to conventional directory")
		case poppler.StatusNotFound:
			a.log.Warn().Msg("poppler not found on PATH or in conventional directories")
			if runtime.GOOS == "windows" && !noInput {
				a.ui.Warning("No se encontró Poppler en este equipo.")
				proceed, err := a.ui.Confirm("¿Continuar de todos modos?", false)
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				if err != nil || !proceed {
					a.log.Debug().Msg("run cancelled at poppler check")
					return nil
				}
			}
		}
	}

	// Source document: positional argument, else interactive selection.
	var source string
	if len(args) > 0 {
		source = args[0]
	} else {
		if noInput {
			return fmt.Errorf("se necesita un archivo PDF: pásalo como argumento o ejecuta sin --no-input")
		}
		picked, ok, err := options.SelectPDF(a.ui, ".")
		if err != nil {
			return err
		}
		if !ok {
			a.log.Debug().Msg("run cancelled at file selection")
			return nil
		}
		source = picked
	}

	// Remote sources are downloaded to a temp dir that lives until the
	// run ends; history and the manifest keep the URL as given.
	displaySource := source
	if fetch.IsURL(source) {
		tmpDir, err := os.MkdirTemp("", "pdf2img-*")
		if err != nil {
			return fmt.Errorf("no se pudo crear el directorio temporal: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		spin := a.ui.Spinner("Descargando " + source)
		spin.Start()
		client := &http.Client{Timeout: a.cfg.Fetch.Timeout}
		local, err := fetch.Download(ctx, client, source, tmpDir, a.cfg.Fetch)
		spin.Stop()
		if err != nil {
			a.log.Error().Err(err).Str("url", source).Msg("download failed")
			return fmt.Errorf("no se pudo descargar el PDF: %w", err)
		}
		a.log.Info().Str("url", source).Str("file", local).Msg("source document downloaded")
		source = local
	}

	if err := document.Validate(source); err != nil {
		a.log.Error().Err(err).Str("source", source).Msg("validation failed")
		return err
	}

	req, ok, err := options.Collect(a.ui, source, seed)
	if err != nil {
		return fmt.Errorf("no se pudo completar la configuración: %w", err)
	}
	if !ok {
		a.log.Debug().Msg("run cancelled while collecting options")
		return nil
	}

	a.log.Info().
		Str("source", displaySource).
		Str("engine", string(req.Engine)).
		Int("dpi", req.DPI).
		Str("format", string(req.Format)).
		Msg("conversion started")

	if err := outdir.EnsureRoot(root); err != nil {
		a.log.Error().Err(err).Msg("output root creation failed")
		return err
	}
	started := time.Now()
	runDir, err := outdir.CreateRunDir(root, req.OutputBaseName, started)
	if err != nil {
		a.log.Error().Err(err).Msg("run folder creation failed")
		return err
	}

	eng, err := render.NewEngine(req.Engine, req.PopplerPath)
	if err != nil {
		return err
	}

	a.ui.Step("Convirtiendo %s (%d DPI, %s)", filepath.Base(source), req.DPI, req.Format)

	// The engine call blocks behind a spinner until the first page lands;
	// the per-page save loop then drives the progress bar.
	spin := a.ui.Spinner("Procesando el documento")
	spin.Start()
	var bar *ui.ProgressBar
	res, err := render.Convert(ctx, eng, req, runDir, func(done, total int) {
		if bar == nil {
			spin.Stop()
			bar = a.ui.ProgressBar(int64(total), "Guardando páginas")
		}
		bar.Set(int64(done))
	})
	if bar == nil {
		spin.Stop()
	}

	rec := types.RunRecord{
		StartedAt:  started,
		SourcePath: displaySource,
		OutputDir:  runDir,
		Engine:     req.Engine,
		DPI:        req.DPI,
		Format:     req.Format,
		Pages:      res.Pages,
		Duration:   time.Since(started),
	}
	if req.Format == types.FormatJPEG {
		rec.Quality = req.Quality
	}

	if err != nil {
		rec.Status = types.RunFailed
		rec.Error = err.Error()
		recordRun(ctx, a, root, noHistory, rec)

		a.log.Error().Err(err).Msg("conversion failed")
		if errors.Is(err, render.ErrEngineMissing) {
			a.ui.Info("Sugerencia: instala poppler-utils (apt install poppler-utils, brew install poppler) o usa --poppler-path.")
		}
		return err
	}

	rec.Status = types.RunCompleted
	a.log.Info().
		Int("pages", res.Pages).
		Str("dir", runDir).
		Dur("duration", rec.Duration).
		Msg("conversion completed")

	a.ui.Success("Conversión exitosa: %s", pluralPages(res.Pages))
	a.ui.Info("Carpeta de salida: %s", runDir)

	writeManifest(a, runDir, displaySource, req, res, started)
	recordRun(ctx, a, root, noHistory, rec)

	if shouldOpen(cmd, a, noInput) {
		if err := explorer.Open(runDir); err != nil {
			a.log.Warn().Err(err).Msg("folder open failed")
			a.ui.Warning("%v", err)
		}
	}
	return nil
}

// seedFromFlags merges the config-file defaults with the explicit flags.
// Explicit option flags pin their value, which suppresses their prompt.
func seedFromFlags(cmd *cobra.Command, cfg types.AppConfig) (options.Seed, error) {
	flags := cmd.Flags()

	seed := options.Seed{
		DPI:        cfg.Render.DPI,
		Format:     cfg.Render.Format,
		Quality:    cfg.Render.Quality,
		Engine:     cfg.Render.Engine,
		PopplerDir: cfg.Render.PopplerPath,
	}

	if flags.Changed("name") {
		seed.BaseName, _ = flags.GetString("name")
		seed.BaseNamePinned = true
	}
	if flags.Changed("dpi") {
		seed.DPI, _ = flags.GetInt("dpi")
		seed.DPIPinned = true
	}
	if flags.Changed("format") {
		text, _ := flags.GetString("format")
		f, ok := types.ParseFormat(text)
		if !ok {
			return options.Seed{}, fmt.Errorf("formato no válido %q: usa jpeg o png", text)
		}
		seed.Format = f
		seed.FormatPinned = true
	}
	if flags.Changed("quality") {
		seed.Quality, _ = flags.GetInt("quality")
		seed.QualityPinned = true
	}
	if flags.Changed("engine") {
		text, _ := flags.GetString("engine")
		e, ok := types.ParseEngine(text)
		if !ok {
			return options.Seed{}, fmt.Errorf("motor no válido %q: usa poppler o mupdf", text)
		}
		seed.Engine = e
	}
	if flags.Changed("poppler-path") {
		seed.PopplerDir, _ = flags.GetString("poppler-path")
	}

	yes, _ := flags.GetBool("yes")
	noInput, _ := flags.GetBool("no-input")
	seed.AcceptDefaults = yes || noInput

	return seed, nil
}

// writeManifest drops manifest.yaml into the run folder. A write failure
// degrades to a warning; the pages are already on disk.
func writeManifest(a *app, runDir, source string, req types.ConversionRequest, res render.Result, started time.Time) {
	names := make([]string, len(res.Files))
	for i, f := range res.Files {
		names[i] = filepath.Base(f)
	}

	m := types.Manifest{
		CreatedAt: started,
		Source:    source,
		Engine:    req.Engine,
		DPI:       req.DPI,
		Format:    req.Format,
		Pages:     res.Pages,
		Files:     names,
	}
	if req.Format == types.FormatJPEG {
		m.Quality = req.Quality
	}

	if err := outdir.WriteManifest(runDir, m); err != nil {
		a.log.Warn().Err(err).Msg("manifest write failed")
		a.ui.Warning("no se pudo escribir el manifiesto: %v", err)
	}
}

// recordRun appends the run to the history store. Best-effort: failures
// degrade to a warning and never change the conversion outcome.
func recordRun(ctx context.Context, a *app, root string, skip bool, rec types.RunRecord) {
	if skip || !a.cfg.History.Enabled {
		return
	}

	store, err := openHistory(a.cfg, root)
	if err == nil {
		_, err = store.Record(ctx, rec)
		store.Close()
	}
	if err != nil {
		a.log.Warn().Err(err).Msg("history write failed")
		a.ui.Warning("no se pudo guardar el historial: %v", err)
	}
}

// shouldOpen resolves the open-folder decision: explicit flags win, then
// --no-input forces no, --yes takes the configured default, and otherwise
// the user is asked. A dismissed prompt means no.
func shouldOpen(cmd *cobra.Command, a *app, noInput bool) bool {
	if v, _ := cmd.Flags().GetBool("no-open"); v {
		return false
	}
	if v, _ := cmd.Flags().GetBool("open"); v {
		return true
	}
	if noInput {
		return false
	}
	if v, _ := cmd.Flags().GetBool("yes"); v {
		return a.cfg.Output.OpenFolder
	}

	open, err := a.ui.Confirm("¿Abrir la carpeta de salida?", a.cfg.Output.OpenFolder)
	if err != nil {
		return false
	}
	return open
}

func pluralPages(n int) string {
	if n == 1 {
		return "1 página"
	}
	return fmt.Sprintf("%d páginas", n)
}
