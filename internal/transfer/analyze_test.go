package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/gameshelf/internal/codec"
	"github.com/dukaforge/gameshelf/pkg/types"
)

func TestAnalyzeJSON(t *testing.T) {
	// Analyze never writes, so a pipeline without a store is enough.
	p := testPipeline(nil)

	a := p.Analyze(twoGamesOneInvalid, "")
	assert.Equal(t, codec.JSON, a.Format)
	assert.True(t, a.HasValidStructure)
	assert.Equal(t, map[string]int{types.Games: 2}, a.RecordCounts)
}

func TestAnalyzeCountsIgnoreFieldValidity(t *testing.T) {
	p := testPipeline(nil)
	text := `{"data": {"games": [{"nonsense": true}, {"more": "nonsense"}]}}`

	a := p.Analyze(text, "json")
	assert.True(t, a.HasValidStructure)
	assert.Equal(t, 2, a.RecordCounts[types.Games])
}

func TestAnalyzeHintPrecedence(t *testing.T) {
	p := testPipeline(nil)
	sqlText := "INSERT INTO games (id, title) VALUES ('g-1', 'Ico');"

	tests := []struct {
		name  string
		hint  string
		want  codec.Format
		valid bool
	}{
		{name: "format name hint", hint: "sql", want: codec.SQL, valid: true},
		{name: "filename hint extension", hint: "backup.sql", want: codec.SQL, valid: true},
		{name: "no hint sniffs content", hint: "", want: codec.CSV, valid: false},
		{name: "wrong explicit hint", hint: "json", want: codec.JSON, valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := p.Analyze(sqlText, tt.hint)
			assert.Equal(t, tt.want, a.Format)
			assert.Equal(t, tt.valid, a.HasValidStructure)
		})
	}
}

func TestAnalyzeInvalidStructure(t *testing.T) {
	p := testPipeline(nil)

	a := p.Analyze("not an export of any kind", "json")
	assert.Equal(t, codec.JSON, a.Format)
	assert.False(t, a.HasValidStructure)
	assert.Empty(t, a.RecordCounts)
	require.NotNil(t, a.RecordCounts, "counts map is present even when empty")
}

func TestAnalyzeUnknownCollectionsStillCount(t *testing.T) {
	p := testPipeline(nil)
	text := `{"data": {"games": [{"title": "A"}], "achievements": [{"id": "x"}]}}`

	a := p.Analyze(text, "json")
	assert.True(t, a.HasValidStructure)
	assert.Equal(t, map[string]int{types.Games: 1, "achievements": 1}, a.RecordCounts)
}
