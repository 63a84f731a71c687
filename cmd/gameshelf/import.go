// Import command: parses a portable file, validates it, and reconciles it
// into the store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/gameshelf/internal/codec"
	"github.com/dukaforge/gameshelf/internal/transfer"
)

var (
	importFormat  string
	importMode    string
	importInclude includeFlags
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import records from an export file",
	Long: `Import decodes an export file, validates every record, and writes the
valid ones into the store. One bad record never aborts the whole import;
the summary reports how many records were imported and why the rest were
skipped.

Modes:
  merge    insert records that are not already present (default)
  replace  clear each included collection, then insert its records

Example:
  gameshelf import backup.json
  gameshelf import save.csv --mode replace --games`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "file format (json, csv, sql; default: detect)")
	importCmd.Flags().StringVar(&importMode, "mode", "merge", "merge mode (merge, replace)")
	importInclude.register(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	text := string(content)

	var explicit codec.Format
	if importFormat != "" {
		explicit, err = codec.ParseFormat(importFormat)
		if err != nil {
			return err
		}
	}
	format := codec.Detect(explicit, path, text)

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	pipeline := transfer.New(s, log)
	result, err := pipeline.Import(text, transfer.ImportOptions{
		Format:  format,
		Mode:    transfer.MergeMode(importMode),
		Include: importInclude.selection(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d of %d records imported\n", result.SuccessfulImports, result.TotalRecords)
	for _, e := range result.Errors {
		fmt.Printf("  %s: %s (%s)\n", e.Path, e.Message, e.Code)
	}
	if result.SkippedRecords > 0 {
		return fmt.Errorf("%d records skipped", result.SkippedRecords)
	}
	return nil
}
