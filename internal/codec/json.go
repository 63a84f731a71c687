// JSON codec: the export envelope is an object with "version",
// "exportedAt", and "data" keys; "data" maps collection names to record
// arrays, present only for included collections.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/dukaforge/gameshelf/pkg/types"
)

type jsonCodec struct{}

// Encode marshals the bundle as an indented envelope. Collections absent
// from bundle.Data do not appear under "data" at all.
func (jsonCodec) Encode(bundle *types.ExportBundle) (string, error) {
	out, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON export: %w", err)
	}
	return string(out), nil
}

// Decode parses the envelope and returns the record arrays under "data".
// A document with a missing or null "data" key is a structural error; no
// per-record inspection happens in that case.
func (jsonCodec) Decode(text string) (map[string][]types.Record, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidStructure, err)
	}

	raw, ok := envelope["data"]
	if !ok {
		return nil, fmt.Errorf("%w: missing data key", types.ErrInvalidStructure)
	}

	var data map[string][]types.Record
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: data is not an object of record arrays: %v",
			types.ErrInvalidStructure, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: data is null", types.ErrInvalidStructure)
	}

	decoded := make(map[string][]types.Record, len(data))
	for name, records := range data {
		decoded[canonicalKey(name)] = records
	}
	return decoded, nil
}
