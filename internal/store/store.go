// Package store implements the SQLite-backed record store for gameshelf.
// The pipeline treats it as an opaque collaborator: list, count, and insert
// per collection, plus the batch replace used by import's replace mode.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/gameshelf/internal/schema"
	"github.com/dukaforge/gameshelf/pkg/types"
)

const dbFileName = "gameshelf.db"

// Store is a SQLite-backed record store. Safe for use by a single process;
// the pipeline assumes no concurrent writers during an import.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// Open validates the config, creates the data directory if needed, opens
// the database, and ensures the schema exists.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(cfg.DataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	for _, s := range schema.All {
		if _, err := db.Exec(createTableDDL(s)); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating table %s: %w", s.Table, err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent; all operations after
// Close return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// ListAll returns every record of a collection in insertion order, keyed by
// wire field names. NULL columns are absent from the returned records.
func (s *Store) ListAll(collection string) ([]types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sch, err := s.schemaFor(collection)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid",
		strings.Join(sch.Columns(), ", "), sch.Table)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		rec, err := scanRecord(rows, sch)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", collection, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}
	return records, nil
}

// Count returns the number of records in a collection.
func (s *Store) Count(collection string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sch, err := s.schemaFor(collection)
	if err != nil {
		return 0, err
	}
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + sch.Table).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting %s: %w", collection, err)
	}
	return count, nil
}

// Has reports whether a record with the given id exists.
func (s *Store) Has(collection, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sch, err := s.schemaFor(collection)
	if err != nil {
		return false, err
	}
	var one int
	err = s.db.QueryRow("SELECT 1 FROM "+sch.Table+" WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s %s: %w", collection, id, err)
	}
	return true, nil
}

// Insert stores one record. A record without an id gets a generated UUID.
// Returns the record's id.
func (s *Store) Insert(collection string, rec types.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sch, err := s.schemaFor(collection)
	if err != nil {
		return "", err
	}
	id := ensureID(rec)
	if _, err := s.db.Exec(insertStmt(sch), insertArgs(sch, rec)...); err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}
	return id, nil
}

// ReplaceAll clears a collection and inserts the given records in one
// transaction, so a failure can never leave the collection cleared but
// unfilled.
func (s *Store) ReplaceAll(collection string, records []types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sch, err := s.schemaFor(collection)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning replace of %s: %w", collection, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + sch.Table); err != nil {
		return fmt.Errorf("clearing %s: %w", collection, err)
	}
	stmt, err := tx.Prepare(insertStmt(sch))
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", collection, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		ensureID(rec)
		if _, err := stmt.Exec(insertArgs(sch, rec)...); err != nil {
			return fmt.Errorf("inserting into %s: %w", collection, err)
		}
	}
	return tx.Commit()
}

// schemaFor resolves a collection name, guarding the closed flag.
func (s *Store) schemaFor(collection string) (*schema.Schema, error) {
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	sch := schema.For(collection)
	if sch == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownCollection, collection)
	}
	return sch, nil
}

// ensureID fills in a generated id when the record has none, and returns
// the record's id. UUID v7 keeps insertion order sortable; v4 is the
// fallback when v7 generation fails.
func ensureID(rec types.Record) string {
	if id := rec.String("id"); id != "" {
		return id
	}
	id, err := uuid.NewV7()
	if err != nil {
		rec["id"] = uuid.New().String()
	} else {
		rec["id"] = id.String()
	}
	return rec["id"].(string)
}
