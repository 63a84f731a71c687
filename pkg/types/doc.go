// Package types defines the entity collections, record representation,
// validation and import result types, and standard errors shared by the
// gameshelf export/import pipeline.
package types
