package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf2img/internal/history"
	"github.com/pdiddy/pdf2img/internal/outdir"
	"github.com/pdiddy/pdf2img/internal/poppler"
	"github.com/pdiddy/pdf2img/pkg/types"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the rendering environment",
	Long: `Doctor reports how the Poppler binaries resolve on this system, whether
the in-process MuPDF engine is available, and the effective configuration.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()

	a.ui.Section("Motores de renderizado")
	loc := poppler.Locate()
	switch loc.Status {
	case poppler.StatusOnPath:
		tools := poppler.NewTools("")
		if v, err := tools.Version(ctx); err == nil {
			a.ui.Success("Poppler %s en el PATH", v)
		} else {
			a.ui.Success("Poppler disponible en el PATH")
		}
	case poppler.StatusFoundAt:
		tools := poppler.NewTools(loc.Dir)
		if v, err := tools.Version(ctx); err == nil {
			a.ui.Success("Poppler %s en %s", v, loc.Dir)
		} else {
			a.ui.Warning("El directorio %s existe, pero pdftoppm no responde: %v", loc.Dir, err)
		}
	default:
		a.ui.Error("Poppler no encontrado")
		a.ui.Printf("Directorios revisados:")
		for _, dir := range poppler.SearchDirs() {
			a.ui.Printf("  - %s", dir)
		}
	}
	a.ui.Success("MuPDF integrado (go-fitz)")

	a.ui.Section("Salida")
	root := a.cfg.Output.Root
	if err := outdir.EnsureRoot(root); err != nil {
		a.ui.Error("%v", err)
	} else {
		a.ui.Success("Carpeta de salida accesible: %s", root)
	}

	a.ui.Section("Configuración efectiva")
	a.ui.KeyValue("Motor", string(a.cfg.Render.Engine))
	a.ui.KeyValue("DPI", strconv.Itoa(a.cfg.Render.DPI))
	a.ui.KeyValue("Formato", string(a.cfg.Render.Format))
	a.ui.KeyValue("Calidad JPEG", strconv.Itoa(a.cfg.Render.Quality))
	a.ui.KeyValue("Carpeta raíz", root)
	a.ui.KeyValue("Historial", historyLocation(a.cfg, root))

	logDesc := a.cfg.Log.File
	if logDesc == "" {
		logDesc = "solo consola"
	}
	a.ui.KeyValue("Registro", fmt.Sprintf("%s (%s)", logDesc, a.cfg.Log.Level))
	return nil
}

func historyLocation(cfg types.AppConfig, root string) string {
	if !cfg.History.Enabled {
		return "deshabilitado"
	}
	if cfg.History.Path != "" {
		return cfg.History.Path
	}
	return filepath.Join(root, history.DBFile)
}
