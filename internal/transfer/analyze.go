package transfer

import "github.com/dukaforge/gameshelf/internal/codec"

// Analysis is the read-only preview of an import file.
type Analysis struct {
	Format            codec.Format   `json:"format"`
	RecordCounts      map[string]int `json:"record_counts"`
	HasValidStructure bool           `json:"has_valid_structure"`
}

// Analyze decodes an import file without writing anything, reporting the
// detected format, per-collection record counts, and whether the overall
// structure was recognized. HasValidStructure is independent of field-level
// validity: a structurally sound file full of bad records still reports
// true. Analyze never fails; an unreadable file reports false.
func (p *Pipeline) Analyze(fileText, formatHint string) Analysis {
	var explicit codec.Format
	filename := ""
	if f, err := codec.ParseFormat(formatHint); err == nil {
		explicit = f
	} else {
		// A hint that is not a format name is treated as a filename, so
		// extension detection still applies.
		filename = formatHint
	}
	format := codec.Detect(explicit, filename, fileText)

	analysis := Analysis{Format: format, RecordCounts: map[string]int{}}

	c, err := codec.For(format)
	if err != nil {
		return analysis
	}
	data, err := c.Decode(fileText)
	if err != nil {
		return analysis
	}

	analysis.HasValidStructure = true
	for name, records := range data {
		analysis.RecordCounts[name] = len(records)
	}
	return analysis
}
