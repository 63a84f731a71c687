// Package codec implements the three export/import file formats (JSON,
// delimited text, SQL statements) and format detection. Each codec pairs an
// encoder over an ExportBundle with a decoder producing untyped records per
// collection; a file produced by Encode always decodes cleanly through the
// same codec's Decode.
package codec

import (
	"fmt"
	"strings"

	"github.com/dukaforge/gameshelf/internal/schema"
	"github.com/dukaforge/gameshelf/pkg/types"
)

// Format identifies one of the supported file formats.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	SQL  Format = "sql"
)

// Codec encodes an export bundle to text and decodes text back into
// untyped records keyed by collection name. Decoded keys are canonical
// where the name resolves through the schema registry; unrecognized names
// are kept as found (lowercased) so callers can report them.
type Codec interface {
	Encode(bundle *types.ExportBundle) (string, error)
	Decode(text string) (map[string][]types.Record, error)
}

// For returns the codec for a format. Unsupported values fail with
// "unsupported format: <value>" before any other work happens.
func For(format Format) (Codec, error) {
	switch format {
	case JSON:
		return jsonCodec{}, nil
	case CSV:
		return csvCodec{}, nil
	case SQL:
		return sqlCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, format)
	}
}

// ParseFormat resolves a user-supplied format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case JSON:
		return JSON, nil
	case CSV:
		return CSV, nil
	case SQL:
		return SQL, nil
	default:
		return "", fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, name)
	}
}

// canonicalKey resolves a decoded collection name to its canonical form,
// falling back to the lowercased input for names outside the entity set.
func canonicalKey(name string) string {
	if s := schema.For(name); s != nil {
		return s.Collection
	}
	return strings.ToLower(strings.TrimSpace(name))
}
