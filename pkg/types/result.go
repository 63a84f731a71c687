package types

import "fmt"

// ExportFormatVersion is the version tag written to every export envelope.
const ExportFormatVersion = "1.0"

// Machine-stable validation error codes.
const (
	CodeRequired     = "required"
	CodeInvalidType  = "invalid_type"
	CodeOutOfRange   = "out_of_range"
	CodeInvalidEnum  = "invalid_enum"
	CodeDuplicate    = "duplicate"
	CodeUnknownError = "unknown_error"
)

// ValidationError describes one field-level failure. Path addresses the
// offending field: "games.title" for a single record, "games[1].title" for
// a record inside a batch (zero-based, encounter order).
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ImportResult aggregates the outcome of one import call.
// TotalRecords = SuccessfulImports + SkippedRecords always holds, and every
// skipped record contributes at least one entry to Errors.
type ImportResult struct {
	TotalRecords      int               `json:"total_records"`
	SuccessfulImports int               `json:"successful_imports"`
	SkippedRecords    int               `json:"skipped_records"`
	Errors            []ValidationError `json:"errors,omitempty"`
}

// ExportBundle is the export-time wrapper handed to a codec. Data holds one
// record slice per included collection; an absent key means "not exported",
// which is distinct from an empty slice.
type ExportBundle struct {
	Version    string              `json:"version"`
	ExportedAt string              `json:"exportedAt"`
	Data       map[string][]Record `json:"data"`
}

// ExportStats reports per-collection record counts without payload.
type ExportStats struct {
	GamesCount        int `json:"games_count"`
	PlaySessionsCount int `json:"play_sessions_count"`
	UploadsCount      int `json:"uploads_count"`
	ChaptersCount     int `json:"chapters_count"`
	MemosCount        int `json:"memos_count"`
}
