// Package tracegraph walks batch/MRN trace links transitively.
package tracegraph

import (
	"context"
	"errors"
	"fmt"

	"github.com/iho/customscore/internal/domain"
)

// Direction selects which end of a link is followed.
type Direction int

const (
	// Forward follows links from source to target (where did the material go).
	Forward Direction = iota
	// Backward follows links from target to source (where did it come from).
	Backward
)

var ErrInvalidDirection = errors.New("direction must be forward or backward")

// ParseDirection accepts "forward"/"backward" (and empty as forward).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// EdgeSource returns the direct links of a batch in one direction: links
// whose source batch matches when forward, whose target batch matches when
// backward.
type EdgeSource interface {
	DirectEdges(ctx context.Context, batch string, dir Direction) ([]domain.TraceLink, error)
}

// AnnotatedLink is a link in discovery order with the batch it was expanded
// from and its depth below the start batch (direct links have depth 1).
type AnnotatedLink struct {
	Link      domain.TraceLink
	FromBatch string
	NextBatch string
	Depth     int
}

// Path is the result of a full traversal.
type Path struct {
	Start     string
	Direction Direction
	Links     []AnnotatedLink
	Visited   []string
	Truncated bool
}

// DefaultMaxExpansions bounds how many distinct batches one walk expands.
const DefaultMaxExpansions = 10000

// Walker performs cycle-safe depth-first traversals.
type Walker struct {
	source        EdgeSource
	maxExpansions int
}

// NewWalker creates a walker. maxExpansions <= 0 uses DefaultMaxExpansions.
func NewWalker(source EdgeSource, maxExpansions int) *Walker {
	if maxExpansions <= 0 {
		maxExpansions = DefaultMaxExpansions
	}
	return &Walker{source: source, maxExpansions: maxExpansions}
}

type frame struct {
	batch string
	edges []domain.TraceLink
	next  int
	depth int
}

// NextBatch returns the batch a link leads to in dir.
func NextBatch(l domain.TraceLink, dir Direction) string {
	if dir == Backward {
		return l.SourceBatch
	}
	return l.TargetBatch
}

// FullPath returns the transitive closure of start in dir, in pre-order DFS
// discovery order. Every distinct batch is expanded at most once, so cyclic
// or duplicated links terminate. Once maxExpansions batches have been
// expanded, remaining links are still appended but not expanded, and the path
// is marked truncated.
func (w *Walker) FullPath(ctx context.Context, start string, dir Direction) (*Path, error) {
	path := &Path{Start: start, Direction: dir, Links: []AnnotatedLink{}}
	if start == "" {
		return path, nil
	}

	visited := map[string]struct{}{start: {}}
	path.Visited = append(path.Visited, start)

	edges, err := w.source.DirectEdges(ctx, start, dir)
	if err != nil {
		return nil, err
	}
	stack := []*frame{{batch: start, edges: edges, depth: 1}}
	expansions := 1

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]
		if top.next >= len(top.edges) {
			stack = stack[:len(stack)-1]
			continue
		}

		link := top.edges[top.next]
		top.next++

		next := NextBatch(link, dir)
		path.Links = append(path.Links, AnnotatedLink{
			Link:      link,
			FromBatch: top.batch,
			NextBatch: next,
			Depth:     top.depth,
		})

		if next == "" {
			continue
		}
		if _, seen := visited[next]; seen {
			continue
		}
		if expansions >= w.maxExpansions {
			path.Truncated = true
			continue
		}

		visited[next] = struct{}{}
		path.Visited = append(path.Visited, next)
		expansions++

		childEdges, err := w.source.DirectEdges(ctx, next, dir)
		if err != nil {
			return nil, err
		}
		stack = append(stack, &frame{batch: next, edges: childEdges, depth: top.depth + 1})
	}

	return path, nil
}

// Ancestry summarizes a backward path as a genealogy record.
func Ancestry(p *Path) *domain.BatchGenealogy {
	g := &domain.BatchGenealogy{BatchNumber: p.Start, LinkCount: len(p.Links)}

	seenBatch := map[string]struct{}{p.Start: {}}
	seenMRN := map[string]struct{}{}
	for _, al := range p.Links {
		if al.Depth > g.Depth {
			g.Depth = al.Depth
		}
		if b := al.Link.SourceBatch; b != "" {
			if _, ok := seenBatch[b]; !ok {
				seenBatch[b] = struct{}{}
				g.ParentBatches = append(g.ParentBatches, b)
			}
		}
		if m := al.Link.SourceMRN; m != "" {
			if _, ok := seenMRN[m]; !ok {
				seenMRN[m] = struct{}{}
				g.ParentMRNs = append(g.ParentMRNs, m)
			}
		}
	}
	return g
}
