package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf2img/internal/document"
)

var infoCmd = &cobra.Command{
	Use:   "info <source.pdf>",
	Short: "Show PDF metadata without converting",
	Long: `Info validates the file and prints its page count, title, author,
subject, and creation/modification dates, read in-process without any
rendering engine.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	path := args[0]
	if err := document.Validate(path); err != nil {
		return err
	}

	info, err := document.Inspect(path)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	a.ui.Section("Información del documento")
	a.ui.KeyValue("Archivo", filepath.Base(path))
	a.ui.KeyValue("Páginas", strconv.Itoa(info.Pages))
	if info.Title != "" {
		a.ui.KeyValue("Título", info.Title)
	}
	if info.Author != "" {
		a.ui.KeyValue("Autor", info.Author)
	}
	if info.Subject != "" {
		a.ui.KeyValue("Asunto", info.Subject)
	}
	if !info.Created.IsZero() {
		a.ui.KeyValue("Creado", info.Created.Format("2006-01-02 15:04"))
	}
	if !info.Modified.IsZero() {
		a.ui.KeyValue("Modificado", info.Modified.Format("2006-01-02 15:04"))
	}
	return nil
}
