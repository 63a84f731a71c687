// Package transfer orchestrates the export/import pipeline: it pulls
// records from the store for export, and decodes, validates, and reconciles
// imported data back into it. The analyzer shares the decode path without
// writing.
package transfer

import (
	"errors"
	"log/slog"

	"github.com/dukaforge/gameshelf/pkg/types"
)

// RecordStore is the persistence boundary the pipeline writes to and reads
// from. The SQLite store in internal/store is the one durable
// implementation; tests substitute in-memory fakes.
type RecordStore interface {
	ListAll(collection string) ([]types.Record, error)
	Count(collection string) (int, error)
	Has(collection, id string) (bool, error)
	Insert(collection string, rec types.Record) (string, error)
	ReplaceAll(collection string, records []types.Record) error
}

// MergeMode controls how imported records reconcile with existing data.
type MergeMode string

const (
	// ModeMerge inserts records that are not already present and leaves
	// existing data untouched.
	ModeMerge MergeMode = "merge"
	// ModeReplace clears each included collection before inserting its
	// decoded records. Only collections included in the current call are
	// cleared.
	ModeReplace MergeMode = "replace"
)

// ErrUnsupportedMode is returned for a merge mode outside merge|replace.
var ErrUnsupportedMode = errors.New("unsupported merge mode")

// Pipeline bundles the store and logger the orchestrators operate with.
type Pipeline struct {
	store RecordStore
	log   *slog.Logger
}

// New creates a pipeline over the given store. A nil logger falls back to
// slog.Default.
func New(store RecordStore, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{store: store, log: log}
}

// IncludeAll returns an inclusion set selecting every collection.
func IncludeAll() map[string]bool {
	include := make(map[string]bool, len(types.Collections))
	for _, name := range types.Collections {
		include[name] = true
	}
	return include
}
