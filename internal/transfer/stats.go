package transfer

import "github.com/dukaforge/gameshelf/pkg/types"

// Stats returns per-collection record counts without touching any payload.
func (p *Pipeline) Stats() (types.ExportStats, error) {
	var stats types.ExportStats
	counts := []struct {
		collection string
		dest       *int
	}{
		{types.Games, &stats.GamesCount},
		{types.PlaySessions, &stats.PlaySessionsCount},
		{types.Uploads, &stats.UploadsCount},
		{types.Chapters, &stats.ChaptersCount},
		{types.Memos, &stats.MemosCount},
	}
	for _, c := range counts {
		n, err := p.store.Count(c.collection)
		if err != nil {
			return types.ExportStats{}, err
		}
		*c.dest = n
	}
	return stats, nil
}
