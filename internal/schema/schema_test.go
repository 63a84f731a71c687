package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/gameshelf/pkg/types"
)

func TestForResolvesCanonicalNames(t *testing.T) {
	for _, name := range types.Collections {
		s := For(name)
		require.NotNil(t, s, "collection %s", name)
		assert.Equal(t, name, s.Collection)
	}
}

func TestForAliases(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  string
	}{
		{name: "singular game", alias: "game", want: types.Games},
		{name: "table name", alias: "play_sessions", want: types.PlaySessions},
		{name: "snake singular", alias: "play_session", want: types.PlaySessions},
		{name: "short sessions", alias: "sessions", want: types.PlaySessions},
		{name: "uppercase section header", alias: "GAMES", want: types.Games},
		{name: "mixed case", alias: "Uploads", want: types.Uploads},
		{name: "surrounding whitespace", alias: "  memos ", want: types.Memos},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := For(tt.alias)
			require.NotNil(t, s)
			assert.Equal(t, tt.want, s.Collection)
		})
	}
}

func TestForUnknownReturnsNil(t *testing.T) {
	for _, name := range []string{"achievements", "", "games2", "player"} {
		assert.Nil(t, For(name), "name %q", name)
	}
}

func TestAllCoversEveryCollection(t *testing.T) {
	require.Len(t, All, len(types.Collections))
	for i, s := range All {
		assert.Equal(t, types.Collections[i], s.Collection)
	}
}

func TestFieldNamesAndColumnsAligned(t *testing.T) {
	for _, s := range All {
		names := s.FieldNames()
		cols := s.Columns()
		require.Len(t, names, len(s.Fields), "collection %s", s.Collection)
		require.Len(t, cols, len(names), "collection %s", s.Collection)
		assert.Equal(t, "id", names[0], "collection %s", s.Collection)
		assert.Equal(t, "id", cols[0], "collection %s", s.Collection)
	}
}

func TestChapterOrderColumnAvoidsKeyword(t *testing.T) {
	s := For(types.Chapters)
	require.NotNil(t, s)
	for _, f := range s.Fields {
		if f.Name == "order" {
			assert.Equal(t, "chapter_order", f.Column)
			return
		}
	}
	t.Fatal("chapters schema has no order field")
}
