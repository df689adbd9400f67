package tracegraph

import (
	"context"

	"github.com/iho/customscore/internal/domain"
)

// Index is an in-memory EdgeSource over a fixed set of links, keeping
// insertion order per batch.
type Index struct {
	bySource map[string][]domain.TraceLink
	byTarget map[string][]domain.TraceLink
}

// NewIndex indexes links by source and target batch.
func NewIndex(links []domain.TraceLink) *Index {
	idx := &Index{
		bySource: make(map[string][]domain.TraceLink),
		byTarget: make(map[string][]domain.TraceLink),
	}
	for _, l := range links {
		if l.SourceBatch != "" {
			idx.bySource[l.SourceBatch] = append(idx.bySource[l.SourceBatch], l)
		}
		if l.TargetBatch != "" {
			idx.byTarget[l.TargetBatch] = append(idx.byTarget[l.TargetBatch], l)
		}
	}
	return idx
}

func (i *Index) DirectEdges(_ context.Context, batch string, dir Direction) ([]domain.TraceLink, error) {
	if dir == Backward {
		return i.byTarget[batch], nil
	}
	return i.bySource[batch], nil
}
