// SQL-statement codec. Each included collection emits a comment line naming
// its table followed by one INSERT per record:
//
//	-- games
//	INSERT INTO games (id, title, ...) VALUES ('...', '...', NULL, 0);
//
// Literal rules: strings are single-quoted with embedded quotes doubled,
// numbers are unquoted, nulls are the bare token NULL. Decode reverses
// exactly this grammar; anything outside it (backslash escapes, backticks,
// multi-row VALUES) is rejected as a structural error rather than
// misparsed.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dukaforge/gameshelf/internal/schema"
	"github.com/dukaforge/gameshelf/pkg/types"
)

type sqlCodec struct{}

// Encode writes one comment-plus-INSERT block per included collection in
// canonical order, fields in schema-declared order.
func (sqlCodec) Encode(bundle *types.ExportBundle) (string, error) {
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
		sb.WriteString("-- ")
		sb.WriteString(s.Table)
		sb.WriteByte('\n')

		fieldList := strings.Join(s.FieldNames(), ", ")
		for _, rec := range records {
			literals := make([]string, len(s.Fields))
			for i, f := range s.Fields {
				literals[i] = sqlLiteral(rec[f.Name])
			}
			fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES (%s);\n",
				s.Table, fieldList, strings.Join(literals, ", "))
		}
	}

	return sb.String(), nil
}

// Decode parses the INSERT grammar produced by Encode. Field names come
// from each statement's column list, so statements round-trip even when
// the schema order changes between export and import.
func (sqlCodec) Decode(text string) (map[string][]types.Record, error) {
	p := &sqlParser{src: text}
	decoded := make(map[string][]types.Record)

	sawStatement := false
	for {
		p.skipInsignificant()
		if p.done() {
			break
		}
		table, fields, values, err := p.insert()
		if err != nil {
			return nil, err
		}
		if len(values) != len(fields) {
			return nil, fmt.Errorf("%w: %d columns but %d values in %s insert",
				types.ErrInvalidStructure, len(fields), len(values), table)
		}

		rec := make(types.Record, len(fields))
		for i, f := range fields {
			if values[i] == nil {
				continue
			}
			rec[f] = values[i]
		}
		key := canonicalKey(table)
		decoded[key] = append(decoded[key], rec)
		sawStatement = true
	}

	if !sawStatement {
		return nil, fmt.Errorf("%w: no INSERT statements found", types.ErrInvalidStructure)
	}
	return decoded, nil
}

// sqlLiteral renders one record value. Nil becomes the bare token NULL,
// never a quoted string.
func sqlLiteral(v any) string {
	switch n := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(n, "'", "''") + "'"
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return "'" + strings.ReplaceAll(fmt.Sprintf("%v", n), "'", "''") + "'"
	}
}

// sqlParser is a cursor over the statement text. It recognizes exactly the
// encoder's grammar; any deviation is a structural error.
type sqlParser struct {
	src string
	pos int
}

func (p *sqlParser) done() bool { return p.pos >= len(p.src) }

func (p *sqlParser) fail(what string) error {
	return fmt.Errorf("%w: %s near offset %d", types.ErrInvalidStructure, what, p.pos)
}

// skipInsignificant advances past whitespace and "--" comment lines.
func (p *sqlParser) skipInsignificant() {
	for !p.done() {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case strings.HasPrefix(p.src[p.pos:], "--"):
			if nl := strings.IndexByte(p.src[p.pos:], '\n'); nl >= 0 {
				p.pos += nl + 1
			} else {
				p.pos = len(p.src)
			}
		default:
			return
		}
	}
}

// expect consumes a literal token, case-insensitively for keywords.
func (p *sqlParser) expect(token string) error {
	if len(p.src)-p.pos < len(token) ||
		!strings.EqualFold(p.src[p.pos:p.pos+len(token)], token) {
		return p.fail(fmt.Sprintf("expected %q", token))
	}
	p.pos += len(token)
	return nil
}

func (p *sqlParser) skipSpaces() {
	for !p.done() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// identifier consumes a bare table or column name.
func (p *sqlParser) identifier() (string, error) {
	start := p.pos
	for !p.done() {
		c := p.src[p.pos]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", p.fail("expected identifier")
	}
	return p.src[start:p.pos], nil
}

// insert parses one full INSERT statement through its trailing semicolon.
func (p *sqlParser) insert() (table string, fields []string, values []any, err error) {
	if err = p.expect("INSERT INTO"); err != nil {
		return
	}
	p.skipSpaces()
	if table, err = p.identifier(); err != nil {
		return
	}
	p.skipSpaces()
	if fields, err = p.nameList(); err != nil {
		return
	}
	p.skipSpaces()
	if err = p.expect("VALUES"); err != nil {
		return
	}
	p.skipSpaces()
	if values, err = p.valueList(); err != nil {
		return
	}
	p.skipSpaces()
	err = p.expect(";")
	return
}

// nameList parses "(a, b, c)".
func (p *sqlParser) nameList() ([]string, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var names []string
	for {
		p.skipSpaces()
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		p.skipSpaces()
		if p.done() {
			return nil, p.fail("unterminated column list")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return names, nil
		default:
			return nil, p.fail("expected ',' or ')' in column list")
		}
	}
}

// valueList parses "(lit, lit, ...)" where each literal is a single-quoted
// string, a number, or NULL.
func (p *sqlParser) valueList() ([]any, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var values []any
	for {
		p.skipSpaces()
		v, err := p.literal()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		p.skipSpaces()
		if p.done() {
			return nil, p.fail("unterminated value list")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return values, nil
		default:
			return nil, p.fail("expected ',' or ')' in value list")
		}
	}
}

// literal parses one literal value. Returns nil for NULL.
func (p *sqlParser) literal() (any, error) {
	if p.done() {
		return nil, p.fail("expected literal")
	}
	c := p.src[p.pos]

	if c == '\'' {
		return p.stringLiteral()
	}
	if c == '-' || c >= '0' && c <= '9' {
		return p.numberLiteral()
	}
	if len(p.src)-p.pos >= 4 && strings.EqualFold(p.src[p.pos:p.pos+4], "NULL") {
		p.pos += 4
		return nil, nil
	}
	return nil, p.fail("unrecognized literal")
}

// stringLiteral parses '...' with '' as an escaped quote. Newlines inside
// the literal are preserved.
func (p *sqlParser) stringLiteral() (string, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for {
		if p.done() {
			return "", p.fail("unterminated string literal")
		}
		c := p.src[p.pos]
		if c == '\'' {
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '\'' {
				sb.WriteByte('\'')
				p.pos += 2
				continue
			}
			p.pos++
			return sb.String(), nil
		}
		if c == '\\' {
			// Backslash escapes are outside the grammar; rejecting here
			// avoids silently misparsing exports from other tools.
			return "", p.fail("backslash escape in string literal")
		}
		sb.WriteByte(c)
		p.pos++
	}
}

// numberLiteral parses an optionally signed integer or decimal.
func (p *sqlParser) numberLiteral() (any, error) {
	start := p.pos
	if p.src[p.pos] == '-' {
		p.pos++
	}
	digits := 0
	for !p.done() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
		digits++
	}
	isFloat := false
	if !p.done() && p.src[p.pos] == '.' {
		isFloat = true
		p.pos++
		for !p.done() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
			digits++
		}
	}
	if digits == 0 {
		return nil, p.fail("malformed number")
	}
	text := p.src[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.fail("malformed number")
		}
		return f, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, p.fail("malformed number")
	}
	return n, nil
}
