package types

// Record is the untyped representation of a single entity record as it
// crosses the pipeline boundary: decoded from a file before validation, or
// pulled from the store before encoding. Keys are the schema-declared wire
// field names (camelCase).
type Record map[string]any

// String returns the value of a field as a string. Missing fields and nil
// values return the empty string.
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// Has reports whether the field is present with a non-nil value.
func (r Record) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	cp := make(Record, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}
