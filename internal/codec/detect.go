// Format detection from weak signals. Detection never fails: an
// undetectable format resolves to a best-effort guess, because correctness
// is re-checked by the codec itself on first use.
package codec

import (
	"path/filepath"
	"strings"
)

// extensionFormats maps file extensions to formats.
var extensionFormats = map[string]Format{
	".json": JSON,
	".csv":  CSV,
	".sql":  SQL,
}

// Detect infers the format of an import file. Precedence: an explicit
// format from the caller, then the filename extension, then content
// sniffing (trimmed content starting with '{' is JSON, anything else is
// delimited text).
func Detect(explicit Format, filename, content string) Format {
	switch explicit {
	case JSON, CSV, SQL:
		return explicit
	}

	if f, ok := extensionFormats[strings.ToLower(filepath.Ext(filename))]; ok {
		return f
	}

	if strings.HasPrefix(strings.TrimSpace(content), "{") {
		return JSON
	}
	return CSV
}
