// SQL text construction and row hydration. DDL and insert statements are
// derived from the schema tables so a new entity type needs no changes
// here.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/dukaforge/gameshelf/internal/schema"
	"github.com/dukaforge/gameshelf/pkg/types"
)

// createTableDDL builds the CREATE TABLE statement for one collection.
// The id column is the primary key; Integer fields get INTEGER affinity,
// everything else is TEXT.
func createTableDDL(s *schema.Schema) string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		typ := "TEXT"
		if f.Type == schema.Integer {
			typ = "INTEGER"
		}
		col := f.Column + " " + typ
		if f.Column == "id" {
			col += " PRIMARY KEY"
		}
		cols[i] = "    " + col
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		s.Table, strings.Join(cols, ",\n"))
}

// insertStmt builds the parameterized INSERT statement for one collection.
func insertStmt(s *schema.Schema) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(s.Fields)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.Table, strings.Join(s.Columns(), ", "), placeholders)
}

// insertArgs extracts statement arguments from a record in column order.
// Absent fields insert as NULL.
func insertArgs(s *schema.Schema, rec types.Record) []any {
	args := make([]any, len(s.Fields))
	for i, f := range s.Fields {
		v, ok := rec[f.Name]
		if !ok {
			args[i] = nil
			continue
		}
		args[i] = v
	}
	return args
}

// scanRecord hydrates one row into a Record, omitting NULL columns.
func scanRecord(rows *sql.Rows, s *schema.Schema) (types.Record, error) {
	dest := make([]any, len(s.Fields))
	for i, f := range s.Fields {
		if f.Type == schema.Integer {
			dest[i] = new(sql.NullInt64)
		} else {
			dest[i] = new(sql.NullString)
		}
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	rec := make(types.Record, len(s.Fields))
	for i, f := range s.Fields {
		switch v := dest[i].(type) {
		case *sql.NullInt64:
			if v.Valid {
				rec[f.Name] = v.Int64
			}
		case *sql.NullString:
			if v.Valid {
				rec[f.Name] = v.String
			}
		}
	}
	return rec, nil
}
