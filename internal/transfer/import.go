package transfer

import (
	"fmt"
	"sort"

	"github.com/dukaforge/gameshelf/internal/codec"
	"github.com/dukaforge/gameshelf/internal/schema"
	"github.com/dukaforge/gameshelf/internal/validate"
	"github.com/dukaforge/gameshelf/pkg/types"
)

// ImportOptions selects the file format, the merge mode, and the
// collections to process. Decoded collections that are not included are
// ignored entirely and do not appear in any counter.
type ImportOptions struct {
	Format  codec.Format
	Mode    MergeMode
	Include map[string]bool
}

// Import decodes the file text, validates every record, and reconciles the
// valid ones into the store. Field-level failures never abort the batch:
// the aggregate result is always returned on partial success. Structural
// and format errors abort before any write; a store failure is fatal for
// the call and is logged with the offending record's position.
func (p *Pipeline) Import(fileText string, opts ImportOptions) (*types.ImportResult, error) {
	c, err := codec.For(opts.Format)
	if err != nil {
		return nil, err
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeMerge
	}
	if mode != ModeMerge && mode != ModeReplace {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, opts.Mode)
	}

	data, err := c.Decode(fileText)
	if err != nil {
		return nil, err
	}

	result := &types.ImportResult{}
	for _, name := range types.Collections {
		raws, present := data[name]
		if !present || !opts.Include[name] {
			continue
		}
		if err := p.importCollection(name, raws, mode, result); err != nil {
			return nil, err
		}
	}
	p.skipUnknownCollections(data, result)

	return result, nil
}

// importCollection validates and writes one collection's records,
// accumulating counts and errors into result.
func (p *Pipeline) importCollection(name string, raws []types.Record, mode MergeMode, result *types.ImportResult) error {
	batch := validate.Batch(raws, schema.For(name), name)
	result.TotalRecords += len(raws)
	result.SkippedRecords += len(raws) - len(batch.Records)
	result.Errors = append(result.Errors, batch.Errors...)

	switch mode {
	case ModeReplace:
		result.SuccessfulImports += len(batch.Records)
		if err := p.store.ReplaceAll(name, batch.Records); err != nil {
			p.log.Error("replace failed", "collection", name, "records", len(batch.Records), "error", err)
			return err
		}
	case ModeMerge:
		for i, rec := range batch.Records {
			label := fmt.Sprintf("%s[%d]", name, batch.Indexes[i])
			inserted, dupErr, err := p.mergeRecord(name, label, rec)
			if err != nil {
				return err
			}
			if inserted {
				result.SuccessfulImports++
			} else {
				result.SkippedRecords++
				result.Errors = append(result.Errors, *dupErr)
			}
		}
	}
	return nil
}

// mergeRecord inserts a record unless one with the same id already exists.
// Existing data is never overwritten; a duplicate is reported back as a
// skip, not a store write.
func (p *Pipeline) mergeRecord(name, label string, rec types.Record) (inserted bool, dup *types.ValidationError, err error) {
	if id := rec.String("id"); id != "" {
		exists, err := p.store.Has(name, id)
		if err != nil {
			p.log.Error("existence check failed", "collection", name, "record", label, "error", err)
			return false, nil, err
		}
		if exists {
			return false, &types.ValidationError{
				Path:    label + ".id",
				Message: "record already exists",
				Code:    types.CodeDuplicate,
			}, nil
		}
	}
	if _, err := p.store.Insert(name, rec); err != nil {
		p.log.Error("insert failed", "collection", name, "record", label, "error", err)
		return false, nil, err
	}
	return true, nil, nil
}

// skipUnknownCollections counts records under unrecognized collection names
// as skipped, one error per record. Unknown names are not fatal.
func (p *Pipeline) skipUnknownCollections(data map[string][]types.Record, result *types.ImportResult) {
	var unknown []string
	for name := range data {
		if schema.For(name) == nil {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	for _, name := range unknown {
		for i := range data[name] {
			result.TotalRecords++
			result.SkippedRecords++
			result.Errors = append(result.Errors, types.ValidationError{
				Path:    fmt.Sprintf("%s[%d]", name, i),
				Message: "unknown record type: " + name,
				Code:    types.CodeUnknownError,
			})
		}
	}
}
