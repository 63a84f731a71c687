// Shared helpers for gameshelf CLI commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/gameshelf/internal/store"
	"github.com/dukaforge/gameshelf/internal/transfer"
	"github.com/dukaforge/gameshelf/pkg/types"
)

// openStore resolves the data directory and opens the SQLite store.
// The caller must defer Close.
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	s, err := store.Open(types.Config{DataDir: dataDir, LogFile: configLogFile})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// includeFlags holds the per-collection selection flags shared by the
// export and import commands.
type includeFlags struct {
	games    bool
	sessions bool
	uploads  bool
	chapters bool
	memos    bool
	all      bool
}

// register adds the selection flags to a command.
func (f *includeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.games, "games", false, "include games")
	cmd.Flags().BoolVar(&f.sessions, "sessions", false, "include play sessions")
	cmd.Flags().BoolVar(&f.uploads, "uploads", false, "include uploads")
	cmd.Flags().BoolVar(&f.chapters, "chapters", false, "include chapters")
	cmd.Flags().BoolVar(&f.memos, "memos", false, "include memos")
	cmd.Flags().BoolVar(&f.all, "all", false, "include every collection")
}

// selection converts the flags to an inclusion set. When no flag was given
// at all, every collection is included.
func (f *includeFlags) selection() map[string]bool {
	if f.all || f.none() {
		return transfer.IncludeAll()
	}
	return map[string]bool{
		types.Games:        f.games,
		types.PlaySessions: f.sessions,
		types.Uploads:      f.uploads,
		types.Chapters:     f.chapters,
		types.Memos:        f.memos,
	}
}

func (f *includeFlags) none() bool {
	return !f.games && !f.sessions && !f.uploads && !f.chapters && !f.memos
}
