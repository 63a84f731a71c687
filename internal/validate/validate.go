// Package validate applies collection schemas to untyped records. All
// applicable field errors for a record are collected before returning;
// validation never stops at the first violation and never panics on a
// missing or malformed schema.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dukaforge/gameshelf/internal/schema"
	"github.com/dukaforge/gameshelf/pkg/types"
)

// Result is the outcome of validating a single record.
type Result struct {
	Valid  bool
	Record types.Record // coerced record, only set when Valid
	Errors []types.ValidationError
}

// BatchResult is the outcome of validating a record slice. Records holds
// the valid elements in original order, Indexes their zero-based positions
// in the input slice, and Errors concatenates every element's errors with
// batch-style paths ("games[1].title").
type BatchResult struct {
	Valid   bool
	Records []types.Record
	Indexes []int
	Errors  []types.ValidationError
}

// Record validates one untyped record against a schema. Paths in the
// returned errors use the form "<label>.<field>". A nil schema yields a
// single unknown_error instead of a panic.
func Record(raw types.Record, s *schema.Schema, label string) Result {
	if s == nil || len(s.Fields) == 0 {
		return Result{Errors: []types.ValidationError{{
			Path:    label,
			Message: "validation schema unavailable",
			Code:    types.CodeUnknownError,
		}}}
	}

	out := make(types.Record, len(s.Fields))
	var errs []types.ValidationError

	for _, f := range s.Fields {
		path := label + "." + f.Name
		v, present := raw[f.Name]
		if !present || v == nil || v == "" {
			if f.Required {
				errs = append(errs, types.ValidationError{
					Path:    path,
					Message: f.Name + " is required",
					Code:    types.CodeRequired,
				})
			}
			continue
		}

		switch f.Type {
		case schema.Integer:
			n, ok := coerceInt(v)
			if !ok {
				errs = append(errs, types.ValidationError{
					Path:    path,
					Message: f.Name + " must be a number",
					Code:    types.CodeInvalidType,
				})
				continue
			}
			if (f.Min != nil && n < int64(*f.Min)) || (f.Max != nil && n > int64(*f.Max)) {
				msg := f.RangeMsg
				if msg == "" {
					msg = f.Name + " is out of range"
				}
				errs = append(errs, types.ValidationError{
					Path:    path,
					Message: msg,
					Code:    types.CodeOutOfRange,
				})
				continue
			}
			out[f.Name] = n
		case schema.Enum:
			sv := fmt.Sprintf("%v", v)
			if !contains(f.Values, sv) {
				errs = append(errs, types.ValidationError{
					Path: path,
					Message: fmt.Sprintf("%s must be one of: %s",
						f.Name, strings.Join(f.Values, ", ")),
					Code: types.CodeInvalidEnum,
				})
				continue
			}
			out[f.Name] = sv
		default:
			out[f.Name] = fmt.Sprintf("%v", v)
		}
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Valid: true, Record: out}
}

// Batch validates each element of raws in order. Error paths carry the
// zero-based element index: "<label>[<i>].<field>". Valid is true only when
// every element validated cleanly.
func Batch(raws []types.Record, s *schema.Schema, label string) BatchResult {
	result := BatchResult{Valid: true}
	for i, raw := range raws {
		r := Record(raw, s, fmt.Sprintf("%s[%d]", label, i))
		if r.Valid {
			result.Records = append(result.Records, r.Record)
			result.Indexes = append(result.Indexes, i)
			continue
		}
		result.Valid = false
		result.Errors = append(result.Errors, r.Errors...)
	}
	return result
}

// coerceInt converts numeric values and numeric strings to int64.
// Fractional floats are rejected.
func coerceInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
