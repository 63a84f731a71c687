// Package schema declares the per-collection validation rules for the
// gameshelf pipeline. Each collection carries an ordered list of field
// rules; adding an entity type is a data change here, not a code change
// elsewhere.
package schema

import "github.com/dukaforge/gameshelf/pkg/types"

// FieldType is the expected data type for a field value.
type FieldType int

const (
	Text FieldType = iota
	Integer
	Enum
)

// Field defines the rules for a single record field. Fields are declared in
// wire order; delimited and SQL codecs emit columns in exactly this order.
type Field struct {
	Name     string    // wire name (camelCase)
	Column   string    // SQLite column name (snake_case)
	Type     FieldType // expected data type
	Required bool      // absent or empty value is a validation error
	Min      *int      // inclusive lower bound for Integer fields
	Max      *int      // inclusive upper bound for Integer fields
	Values   []string  // membership set for Enum fields
	RangeMsg string    // message for out-of-range values
}

// Schema describes one collection: its canonical name, SQLite table, and
// ordered field rules.
type Schema struct {
	Collection string  // canonical collection name (types.Games etc.)
	Table      string  // SQLite table name
	Fields     []Field
}

// FieldNames returns the wire field names in declared order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Columns returns the SQLite column names in declared order.
func (s *Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Column
	}
	return cols
}

func intp(v int) *int { return &v }

var gameSchema = &Schema{
	Collection: types.Games,
	Table:      "games",
	Fields: []Field{
		{Name: "id", Column: "id", Type: Text},
		{Name: "title", Column: "title", Type: Text, Required: true},
		{Name: "publisher", Column: "publisher", Type: Text},
		{Name: "platform", Column: "platform", Type: Text},
		{Name: "playStatus", Column: "play_status", Type: Enum, Required: true, Values: types.PlayStatuses},
		{Name: "totalPlayTime", Column: "total_play_time", Type: Integer, Min: intp(0),
			RangeMsg: "play time must be 0 or greater"},
		{Name: "rating", Column: "rating", Type: Integer, Min: intp(0), Max: intp(5),
			RangeMsg: "rating must be between 0 and 5"},
		{Name: "review", Column: "review", Type: Text},
		{Name: "createdAt", Column: "created_at", Type: Text},
		{Name: "updatedAt", Column: "updated_at", Type: Text},
	},
}

var playSessionSchema = &Schema{
	Collection: types.PlaySessions,
	Table:      "play_sessions",
	Fields: []Field{
		{Name: "id", Column: "id", Type: Text},
		{Name: "gameId", Column: "game_id", Type: Text, Required: true},
		{Name: "playedAt", Column: "played_at", Type: Text},
		{Name: "duration", Column: "duration", Type: Integer, Min: intp(0),
			RangeMsg: "duration must be 0 or greater"},
		{Name: "note", Column: "note", Type: Text},
		{Name: "createdAt", Column: "created_at", Type: Text},
	},
}

var uploadSchema = &Schema{
	Collection: types.Uploads,
	Table:      "uploads",
	Fields: []Field{
		{Name: "id", Column: "id", Type: Text},
		{Name: "gameId", Column: "game_id", Type: Text, Required: true},
		{Name: "fileName", Column: "file_name", Type: Text, Required: true},
		{Name: "filePath", Column: "file_path", Type: Text},
		{Name: "mimeType", Column: "mime_type", Type: Text},
		{Name: "createdAt", Column: "created_at", Type: Text},
	},
}

var chapterSchema = &Schema{
	Collection: types.Chapters,
	Table:      "chapters",
	Fields: []Field{
		{Name: "id", Column: "id", Type: Text},
		{Name: "gameId", Column: "game_id", Type: Text, Required: true},
		{Name: "title", Column: "title", Type: Text, Required: true},
		{Name: "order", Column: "chapter_order", Type: Integer, Min: intp(0),
			RangeMsg: "chapter order must be 0 or greater"},
		{Name: "createdAt", Column: "created_at", Type: Text},
	},
}

var memoSchema = &Schema{
	Collection: types.Memos,
	Table:      "memos",
	Fields: []Field{
		{Name: "id", Column: "id", Type: Text},
		{Name: "gameId", Column: "game_id", Type: Text, Required: true},
		{Name: "title", Column: "title", Type: Text},
		{Name: "content", Column: "content", Type: Text, Required: true},
		{Name: "createdAt", Column: "created_at", Type: Text},
		{Name: "updatedAt", Column: "updated_at", Type: Text},
	},
}

// All lists every schema in canonical export order.
var All = []*Schema{
	gameSchema,
	playSessionSchema,
	uploadSchema,
	chapterSchema,
	memoSchema,
}
