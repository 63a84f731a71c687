package transfer

import (
	"time"

	"github.com/dukaforge/gameshelf/internal/codec"
	"github.com/dukaforge/gameshelf/pkg/types"
)

// ExportOptions selects the target format and the collections to include.
// A collection absent from Include (or mapped to false) is not exported:
// it produces no key, section, or statement in the output.
type ExportOptions struct {
	Format  codec.Format
	Include map[string]bool
}

// Export pulls each included collection from the store and encodes the
// aggregate with the selected codec. The format is validated before any
// store access, so an unsupported format never touches the store.
func (p *Pipeline) Export(opts ExportOptions) (string, error) {
	c, err := codec.For(opts.Format)
	if err != nil {
		return "", err
	}

	bundle := &types.ExportBundle{
		Version:    types.ExportFormatVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Data:       make(map[string][]types.Record),
	}
	for _, name := range types.Collections {
		if !opts.Include[name] {
			continue
		}
		records, err := p.store.ListAll(name)
		if err != nil {
			return "", err
		}
		if records == nil {
			// Included but empty is still exported, distinct from absent.
			records = []types.Record{}
		}
		bundle.Data[name] = records
	}

	return c.Encode(bundle)
}
