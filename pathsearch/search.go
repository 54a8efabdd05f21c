package pathsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/knightpath/board"
)

// searcher encapsulates mutable state for one FindShortestPaths call.
type searcher struct {
	opts  Options
	ctx   context.Context
	queue []*PathNode
	found []*PathNode
	board *board.Board
	dst   *board.Cell
	// limit is the true knight distance from src to dst.
	limit int
	// toDst holds the knight distance from every cell to dst, indexed by
	// board.Index; -1 marks cells that cannot reach dst.
	toDst []int

	expanded int
	created  int
}

// FindShortestPaths returns up to WithMaxResults (default 1) shortest paths
// from src to dst as PathNodes in discovery order. Each returned node is the
// leaf of its route; RenderPath turns it into coordinates.
//
// Behavior:
//  1. Validate the board, options and both coordinates.
//  2. src == dst: return the root alone (depth 0).
//  3. Run Distances from dst; unreachable destinations return an empty
//     slice, otherwise the distance to src bounds the search.
//  4. Breadth-first expansion of PathNodes with per-path cycle avoidance.
//     A child is created only when its depth plus its distance to dst
//     equals the bound, so only squares on some shortest route enter the
//     frontier. Every child landing on dst is recorded.
//
// Returns ErrInvalidArgument, ErrOptionViolation or ctx.Err().
func FindShortestPaths(b *board.Board, src, dst board.Coordinate, opts ...Option) ([]*PathNode, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: board is nil", ErrInvalidArgument)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	from, err := b.Cell(src)
	if err != nil {
		return nil, fmt.Errorf("%w: source: %w", ErrInvalidArgument, err)
	}
	to, err := b.Cell(dst)
	if err != nil {
		return nil, fmt.Errorf("%w: destination: %w", ErrInvalidArgument, err)
	}

	ctx, span := startSearchSpan(o.Ctx, src, dst, o.MaxResults)
	defer span.End()
	began := time.Now()

	root := &PathNode{Cell: from}
	if from == to {
		recordSearchMetrics(ctx, time.Since(began), 0, 1, 1)
		return []*PathNode{root}, nil
	}

	// Knight moves are symmetric, so distances from dst are distances to dst.
	dist, err := Distances(b, dst, WithContext(ctx))
	if err != nil {
		return nil, err
	}
	limit, ok := dist.Depth[src]
	if !ok {
		recordSearchMetrics(ctx, time.Since(began), 0, 1, 0)
		return []*PathNode{}, nil
	}

	s := &searcher{
		opts:  o,
		ctx:   ctx,
		queue: []*PathNode{root},
		board: b,
		dst:   to,
		limit: limit,
		toDst: remainingDistances(b, dist),
	}
	s.created = 1
	o.OnEnqueue(src, 0)

	err = s.loop()
	recordSearchMetrics(ctx, time.Since(began), s.expanded, s.created, len(s.found))
	if err != nil {
		return nil, err
	}
	return s.found, nil
}

// FindShortestPathsFromPair accepts the [[srcRow,srcCol],[dstRow,dstCol]]
// input shape. A malformed pair fails with ErrInvalidArgument before any
// search work is done.
func FindShortestPathsFromPair(b *board.Board, pair [][]int, opts ...Option) ([]*PathNode, error) {
	src, dst, err := board.ParseCoordinatePair(pair)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return FindShortestPaths(b, src, dst, opts...)
}

// loop expands the frontier until it is empty, enough paths are found,
// or the next node could only produce paths longer than the minimum.
func (s *searcher) loop() error {
	for len(s.queue) > 0 && len(s.found) < s.opts.MaxResults {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		default:
		}

		node := s.queue[0]
		s.queue = s.queue[1:]
		// FIFO order: every remaining node is at least this deep.
		if node.Depth >= s.limit {
			return nil
		}
		s.opts.OnDequeue(node.Coordinate(), node.Depth)
		s.expanded++
		if s.expand(node) {
			return nil
		}
	}
	return nil
}

// expand creates a child for every neighbor that is one step closer to dst
// and not already on node's own path. Reports whether MaxResults has been
// reached.
func (s *searcher) expand(node *PathNode) bool {
	for _, nbr := range node.Cell.Neighbors() {
		rem := s.toDst[s.board.Index(nbr)]
		if rem < 0 || node.Depth+1+rem != s.limit {
			continue
		}
		if IsVisitedOnPath(node, nbr) {
			continue
		}
		hit := nbr == s.dst
		child := node.addChild(nbr)
		s.created++
		s.queue = append(s.queue, child)
		s.opts.OnEnqueue(child.Coordinate(), child.Depth)
		if hit {
			s.found = append(s.found, child)
			if len(s.found) >= s.opts.MaxResults {
				return true
			}
		}
	}
	return false
}

// remainingDistances flattens a Distances result rooted at dst into a slice
// indexed by board.Index.
func remainingDistances(b *board.Board, dist *DistanceResult) []int {
	rem := make([]int, b.Len())
	for i := range rem {
		rem[i] = -1
	}
	for at, d := range dist.Depth {
		rem[b.Index(b.At(at.Row(), at.Col()))] = d
	}
	return rem
}

// IsVisitedOnPath reports whether c appears on leaf or any of its ancestors.
// It guards a single route against cycles; other routes may still pass c.
// Complexity: O(depth).
func IsVisitedOnPath(leaf *PathNode, c *board.Cell) bool {
	for n := leaf; n != nil; n = n.Parent {
		if n.Cell == c {
			return true
		}
	}
	return false
}
