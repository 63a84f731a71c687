package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/gameshelf/internal/codec"
	"github.com/dukaforge/gameshelf/pkg/types"
)

const twoGamesOneInvalid = `{
  "version": "1.0",
  "data": {
    "games": [
      {"id": "g-1", "title": "Valid Game", "playStatus": "playing"},
      {"id": "g-2", "playStatus": "playing"}
    ]
  }
}`

func TestImportPartialSuccess(t *testing.T) {
	fs := newFakeStore()
	result, err := testPipeline(fs).Import(twoGamesOneInvalid, ImportOptions{
		Format:  codec.JSON,
		Include: IncludeAll(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRecords)
	assert.Equal(t, 1, result.SuccessfulImports)
	assert.Equal(t, 1, result.SkippedRecords)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "games[1].title", result.Errors[0].Path)
	assert.Equal(t, "title is required", result.Errors[0].Message)
	assert.Equal(t, types.CodeRequired, result.Errors[0].Code)

	require.Len(t, fs.data[types.Games], 1)
	assert.Equal(t, "g-1", fs.data[types.Games][0]["id"])
}

func TestImportDefaultsToMerge(t *testing.T) {
	fs := newFakeStore()
	_, err := testPipeline(fs).Import(twoGamesOneInvalid, ImportOptions{
		Format:  codec.JSON,
		Include: IncludeAll(),
	})
	require.NoError(t, err)
	assert.Empty(t, fs.replaced)
}

func TestImportMergeSkipsDuplicates(t *testing.T) {
	fs := newFakeStore()
	fs.data[types.Games] = []types.Record{
		{"id": "g-1", "title": "Already Here", "playStatus": "completed"},
	}

	result, err := testPipeline(fs).Import(twoGamesOneInvalid, ImportOptions{
		Format:  codec.JSON,
		Mode:    ModeMerge,
		Include: IncludeAll(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRecords)
	assert.Equal(t, 0, result.SuccessfulImports)
	assert.Equal(t, 2, result.SkippedRecords)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "games[1].title", result.Errors[0].Path)
	assert.Equal(t, "games[0].id", result.Errors[1].Path)
	assert.Equal(t, "record already exists", result.Errors[1].Message)
	assert.Equal(t, types.CodeDuplicate, result.Errors[1].Code)

	// The existing record is untouched.
	require.Len(t, fs.data[types.Games], 1)
	assert.Equal(t, "Already Here", fs.data[types.Games][0]["title"])
}

func TestImportMergeDuplicatePathKeepsOriginalIndex(t *testing.T) {
	fs := newFakeStore()
	fs.data[types.Games] = []types.Record{
		{"id": "g-dup", "title": "Already Here", "playStatus": "completed"},
	}
	text := `{"data": {"games": [
		{"id": "g-bad", "playStatus": "playing"},
		{"id": "g-dup", "title": "Again", "playStatus": "playing"}
	]}}`

	result, err := testPipeline(fs).Import(text, ImportOptions{
		Format:  codec.JSON,
		Mode:    ModeMerge,
		Include: IncludeAll(),
	})
	require.NoError(t, err)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, "games[1].id", result.Errors[1].Path,
		"duplicate path uses the record's position in the file")
}

func TestImportReplaceClearsOnlyIncludedCollections(t *testing.T) {
	fs := newFakeStore()
	fs.data[types.Games] = []types.Record{
		{"id": "old", "title": "Old Game", "playStatus": "dropped"},
	}
	fs.data[types.Memos] = []types.Record{
		{"id": "m-1", "gameId": "old", "content": "kept"},
	}

	result, err := testPipeline(fs).Import(twoGamesOneInvalid, ImportOptions{
		Format:  codec.JSON,
		Mode:    ModeReplace,
		Include: IncludeAll(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SuccessfulImports)
	assert.Equal(t, []string{types.Games}, fs.replaced)
	require.Len(t, fs.data[types.Games], 1)
	assert.Equal(t, "g-1", fs.data[types.Games][0]["id"])
	assert.Len(t, fs.data[types.Memos], 1, "collections absent from the file stay intact")
}

func TestImportIgnoresExcludedCollections(t *testing.T) {
	fs := newFakeStore()
	text := `{"data": {
		"games": [{"id": "g-1", "title": "A", "playStatus": "playing"}],
		"memos": [{"id": "m-1", "gameId": "g-1", "content": "skip me"}]
	}}`

	result, err := testPipeline(fs).Import(text, ImportOptions{
		Format:  codec.JSON,
		Include: map[string]bool{types.Games: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalRecords, "excluded collections do not count")
	assert.Equal(t, 1, result.SuccessfulImports)
	assert.Empty(t, fs.data[types.Memos])
}

func TestImportUnknownCollectionSkipsRecords(t *testing.T) {
	fs := newFakeStore()
	text := `{"data": {
		"games": [{"id": "g-1", "title": "A", "playStatus": "playing"}],
		"achievements": [{"id": "a-1"}, {"id": "a-2"}]
	}}`

	result, err := testPipeline(fs).Import(text, ImportOptions{
		Format:  codec.JSON,
		Include: IncludeAll(),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRecords)
	assert.Equal(t, 1, result.SuccessfulImports)
	assert.Equal(t, 2, result.SkippedRecords)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "achievements[0]", result.Errors[0].Path)
	assert.Equal(t, "unknown record type: achievements", result.Errors[0].Message)
	assert.Equal(t, types.CodeUnknownError, result.Errors[0].Code)
}

func TestImportInvariantHolds(t *testing.T) {
	fs := newFakeStore()
	fs.data[types.Games] = []types.Record{
		{"id": "g-1", "title": "Dup", "playStatus": "playing"},
	}
	text := `{"data": {
		"games": [
			{"id": "g-1", "title": "Dup Again", "playStatus": "playing"},
			{"id": "g-3", "playStatus": "bogus"},
			{"id": "g-4", "title": "Fresh", "playStatus": "unplayed"}
		],
		"mystery": [{"id": "x"}]
	}}`

	result, err := testPipeline(fs).Import(text, ImportOptions{
		Format:  codec.JSON,
		Include: IncludeAll(),
	})
	require.NoError(t, err)

	assert.Equal(t, result.TotalRecords, result.SuccessfulImports+result.SkippedRecords)
	assert.GreaterOrEqual(t, len(result.Errors), result.SkippedRecords)
}

func TestImportStructuralErrorAborts(t *testing.T) {
	fs := newFakeStore()
	result, err := testPipeline(fs).Import(`{"version": "1.0"}`, ImportOptions{
		Format:  codec.JSON,
		Include: IncludeAll(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidStructure)
	assert.Nil(t, result)
	assert.Empty(t, fs.data[types.Games])

	_, err = testPipeline(fs).Import(`{"version": "1.0", "data": null}`, ImportOptions{
		Format:  codec.JSON,
		Include: IncludeAll(),
	})
	assert.ErrorIs(t, err, types.ErrInvalidStructure)
}

func TestImportUnsupportedFormat(t *testing.T) {
	_, err := testPipeline(newFakeStore()).Import("{}", ImportOptions{
		Format:  codec.Format("xml"),
		Include: IncludeAll(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)
}

func TestImportUnsupportedMode(t *testing.T) {
	_, err := testPipeline(newFakeStore()).Import(twoGamesOneInvalid, ImportOptions{
		Format:  codec.JSON,
		Mode:    MergeMode("upsert"),
		Include: IncludeAll(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestImportStoreFailureIsFatal(t *testing.T) {
	fs := newFakeStore()
	fs.insertErr = errDiskFull

	result, err := testPipeline(fs).Import(twoGamesOneInvalid, ImportOptions{
		Format:  codec.JSON,
		Include: IncludeAll(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Nil(t, result)
}

func TestImportCSVFile(t *testing.T) {
	fs := newFakeStore()
	text := "# GAMES\nid,title,playStatus,rating\ng-1,\"Nier, Automata\",completed,5\n"

	result, err := testPipeline(fs).Import(text, ImportOptions{
		Format:  codec.CSV,
		Include: IncludeAll(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessfulImports)

	require.Len(t, fs.data[types.Games], 1)
	rec := fs.data[types.Games][0]
	assert.Equal(t, "Nier, Automata", rec["title"])
	assert.Equal(t, int64(5), rec["rating"], "numeric strings coerce before storage")
}

func TestImportSQLFile(t *testing.T) {
	fs := newFakeStore()
	text := "-- games\nINSERT INTO games (id, title, playStatus) VALUES ('g-1', 'It''s Magic', 'playing');\n"

	result, err := testPipeline(fs).Import(text, ImportOptions{
		Format:  codec.SQL,
		Include: IncludeAll(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessfulImports)
	require.Len(t, fs.data[types.Games], 1)
	assert.Equal(t, "It's Magic", fs.data[types.Games][0]["title"])
}
