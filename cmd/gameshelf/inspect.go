// Inspect command: read-only preview of an import file.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dukaforge/gameshelf/internal/transfer"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Analyze an import file without writing anything",
	Long: `Inspect decodes an export file and reports the detected format, the
record count per collection, and whether the overall structure is valid.
Nothing is written to the store.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "", "file format hint (json, csv, sql)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	hint := inspectFormat
	if hint == "" {
		hint = path
	}
	analysis := transfer.New(nil, log).Analyze(string(content), hint)

	if flagJSON {
		out, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal analysis: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println("Format:   ", analysis.Format)
	fmt.Println("Structure:", structureWord(analysis.HasValidStructure))
	names := make([]string, 0, len(analysis.RecordCounts))
	for name := range analysis.RecordCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-14s %d record(s)\n", name, analysis.RecordCounts[name])
	}
	return nil
}

func structureWord(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
