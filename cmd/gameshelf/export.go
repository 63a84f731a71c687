// Export command: serializes selected collections to a portable file.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/gameshelf/internal/codec"
	"github.com/dukaforge/gameshelf/internal/transfer"
)

var (
	exportFormat  string
	exportOutput  string
	exportInclude includeFlags
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export collections to a portable file",
	Long: `Export serializes the selected collections to JSON, CSV, or SQL.

With no selection flags every collection is exported. The output file
defaults to gameshelf_export_<timestamp>.<ext> in the current directory.

Example:
  gameshelf export --format json
  gameshelf export --format csv --games --sessions
  gameshelf export --format sql -o backup.sql`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format (json, csv, sql)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: gameshelf_export_<timestamp>.<ext>)")
	exportInclude.register(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := codec.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	pipeline := transfer.New(s, log)
	text, err := pipeline.Export(transfer.ExportOptions{
		Format:  format,
		Include: exportInclude.selection(),
	})
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = defaultExportName(format)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	fmt.Println("Exported to", path)
	return nil
}

// defaultExportName builds the conventional export file name:
// gameshelf_export_<RFC 3339 stamp with colons replaced by hyphens>.<ext>.
func defaultExportName(format codec.Format) string {
	stamp := strings.ReplaceAll(time.Now().UTC().Format(time.RFC3339), ":", "-")
	return fmt.Sprintf("gameshelf_export_%s.%s", stamp, format)
}
