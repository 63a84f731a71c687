package types

import "errors"

// Standard pipeline errors.
var (
	// ErrUnsupportedFormat is wrapped with the offending value, e.g.
	// "unsupported format: xml". Raised before any store access.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidStructure is a structural decode failure: the overall shape
	// of the import file was not recognized. Raised before any per-record
	// validation runs.
	ErrInvalidStructure = errors.New("invalid file structure")

	// ErrUnknownCollection is returned by store operations for a collection
	// name outside the closed entity set.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrStoreClosed is returned by store operations after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data directory must not be empty")
)
