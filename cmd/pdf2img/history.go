package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf2img/internal/history"
	"github.com/pdiddy/pdf2img/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversion runs",
	Long: `History lists past conversion runs from the SQLite database kept under
the output root, newest first. Use --export to write the full history to a
YAML or JSON file chosen by extension.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum runs to list (0 = all)")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyCmd.Flags().String("export", "", "write the full history to a .yaml/.yml or .json file")
	historyCmd.Flags().String("out-root", "", "folder holding the history database")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	root := a.cfg.Output.Root
	if v, _ := cmd.Flags().GetString("out-root"); v != "" {
		root = v
	}

	store, err := openHistory(a.cfg, root)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		if err := exportHistory(ctx, store, exportPath); err != nil {
			return err
		}
		a.ui.Success("Historial exportado a %s", exportPath)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	recs, err := store.List(ctx, limit)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	if len(recs) == 0 {
		a.ui.Printf("No hay conversiones registradas.")
		return nil
	}

	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			truncate(r.SourcePath, 40),
			strconv.Itoa(r.Pages),
			string(r.Status),
			r.Duration.Round(10 * time.Millisecond).String(),
		})
	}
	a.ui.Table([]string{"Fecha", "Origen", "Páginas", "Estado", "Duración"}, rows)
	a.ui.Printf("\nTotal: %d", len(recs))
	return nil
}

// openHistory opens the history store at its configured location: an
// explicit history.path when set, else history.db under the output root.
func openHistory(cfg types.AppConfig, root string) (*history.Store, error) {
	if cfg.History.Path != "" {
		return history.NewStoreAt(cfg.History.Path)
	}
	return history.NewStore(root)
}

func exportHistory(ctx context.Context, store *history.Store, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return store.ExportYAML(ctx, path)
	case ".json":
		return store.ExportJSON(ctx, path)
	default:
		return fmt.Errorf("unsupported export extension %q: use .yaml, .yml, or .json", filepath.Ext(path))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
