package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/skatelog/internal/cli/formatter"
	"github.com/alexanderramin/skatelog/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export practice logs",
	}

	cmd.AddCommand(
		newExportFileCmd(app, "csv", "Export every practice log as CSV", func(buf *bytes.Buffer) error {
			return export.WriteCSV(buf, app.Tracker.Logs())
		}),
		newExportFileCmd(app, "pdf", "Export a PDF progress report", func(buf *bytes.Buffer) error {
			r := export.NewReport(app.Tracker.Logs(), app.Tracker.Statuses(), app.now())
			return export.WritePDFReport(buf, r)
		}),
	)

	return cmd
}

// newExportFileCmd renders into memory first so an empty or failed export
// leaves no file behind.
func newExportFileCmd(app *App, ext, short string, render func(*bytes.Buffer) error) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   ext,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := render(&buf); err != nil {
				return err
			}

			path := out
			if path == "" {
				dir := app.ExportDir
				if dir == "" {
					dir = "."
				}
				path = filepath.Join(dir, export.DefaultFileName(export.FilePrefix, ext, app.now()))
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("creating export directory: %w", err)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("✔ Exported"), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default <export.dir>/skating-practice-<date>."+ext+")")

	return cmd
}
