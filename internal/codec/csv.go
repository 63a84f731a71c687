// Delimited-text codec. The file is a sequence of sections, one per
// included collection in canonical order:
//
//	# GAMES
//	id,title,...
//	<one row per record>
//
// Row quoting follows RFC 4180: values containing a comma, double quote,
// or newline are wrapped in double quotes with embedded quotes doubled.
// Null or absent values serialize as the empty string.
package codec

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/dukaforge/gameshelf/internal/schema"
	"github.com/dukaforge/gameshelf/pkg/types"
)

type csvCodec struct{}

// Encode writes one section per included collection, in canonical order.
// Collections included with zero records still get their header lines.
func (csvCodec) Encode(bundle *types.ExportBundle) (string, error) {
	var sb strings.Builder

	for _, name := range types.Collections {
		records, ok := bundle.Data[name]
		if !ok {
			continue
		}
		s := schema.For(name)
		if s == nil {
			return "", fmt.Errorf("%w: %s", types.ErrUnknownCollection, name)
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("# ")
		sb.WriteString(strings.ToUpper(name))
		sb.WriteByte('\n')

		w := csv.NewWriter(&sb)
		if err := w.Write(s.FieldNames()); err != nil {
			return "", fmt.Errorf("writing %s header: %w", name, err)
		}
		for _, rec := range records {
			row := make([]string, len(s.Fields))
			for i, f := range s.Fields {
				row[i] = cellValue(rec[f.Name])
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("writing %s row: %w", name, err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", fmt.Errorf("flushing %s section: %w", name, err)
		}
	}

	return sb.String(), nil
}

// Decode splits the text into sections by "# NAME" header lines, treats the
// first row of each section as field names, and parses the remaining rows
// honoring the quoting rules. Empty cells decode as absent fields.
func (csvCodec) Decode(text string) (map[string][]types.Record, error) {
	sections, err := splitSections(text)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no section headers found", types.ErrInvalidStructure)
	}

	decoded := make(map[string][]types.Record, len(sections))
	for _, sec := range sections {
		key := canonicalKey(sec.name)

		r := csv.NewReader(strings.NewReader(sec.body))
		r.FieldsPerRecord = -1
		rows, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%w: section %s: %v", types.ErrInvalidStructure, sec.name, err)
		}
		if len(rows) == 0 {
			// Header line with no field row: an included collection with
			// zero records. Record it as present but empty.
			if _, seen := decoded[key]; !seen {
				decoded[key] = nil
			}
			continue
		}

		header := rows[0]
		records := make([]types.Record, 0, len(rows)-1)
		for _, row := range rows[1:] {
			rec := make(types.Record, len(header))
			for i, field := range header {
				if i >= len(row) || row[i] == "" {
					continue
				}
				rec[field] = row[i]
			}
			records = append(records, rec)
		}
		decoded[key] = append(decoded[key], records...)
	}
	return decoded, nil
}

// section is one "# NAME" block of a delimited export.
type section struct {
	name string
	body string
}

// splitSections scans the text line by line, starting a new section at each
// "# " header encountered outside a quoted field. Quote state is tracked by
// double-quote parity, which doubled quotes preserve, so a quoted value
// containing a line that looks like a header does not split the section.
func splitSections(text string) ([]section, error) {
	var (
		sections []section
		current  *section
		body     strings.Builder
		inQuotes bool
	)

	flush := func() {
		if current != nil {
			current.body = body.String()
			sections = append(sections, *current)
			body.Reset()
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if !inQuotes && strings.HasPrefix(line, "# ") {
			flush()
			name := strings.TrimSpace(strings.TrimPrefix(line, "# "))
			if name == "" {
				return nil, fmt.Errorf("%w: empty section header", types.ErrInvalidStructure)
			}
			current = &section{name: name}
			continue
		}
		if current == nil {
			if strings.TrimSpace(line) != "" {
				return nil, fmt.Errorf("%w: content before first section header",
					types.ErrInvalidStructure)
			}
			continue
		}
		if strings.Count(line, `"`)%2 == 1 {
			inQuotes = !inQuotes
		}
		body.WriteString(line)
	}
	flush()

	return sections, nil
}

// cellValue renders a record value for a delimited row. Nil serializes as
// the empty string, never the literal word "null".
func cellValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", n)
	}
}
