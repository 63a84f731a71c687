// Stats command: per-collection record counts.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dukaforge/gameshelf/internal/transfer"
	"github.com/dukaforge/gameshelf/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record counts per collection",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := transfer.New(s, log).Stats()
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal stats: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printStatsTable(stats)
	return nil
}

func printStatsTable(stats types.ExportStats) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "COLLECTION\tRECORDS")
	fmt.Fprintf(w, "%s\t%d\n", types.Games, stats.GamesCount)
	fmt.Fprintf(w, "%s\t%d\n", types.PlaySessions, stats.PlaySessionsCount)
	fmt.Fprintf(w, "%s\t%d\n", types.Uploads, stats.UploadsCount)
	fmt.Fprintf(w, "%s\t%d\n", types.Chapters, stats.ChaptersCount)
	fmt.Fprintf(w, "%s\t%d\n", types.Memos, stats.MemosCount)
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
}
