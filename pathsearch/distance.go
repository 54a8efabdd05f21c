package pathsearch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knightpath/board"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  *board.Cell
	depth int
}

// walker encapsulates mutable state for Distances.
type walker struct {
	board   *board.Board
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *DistanceResult
}

// Distances runs a breadth-first search from src with a global visited set
// and returns the knight distance to every reachable square.
// Returns ErrInvalidArgument for a nil board or an off-board src,
// ErrOptionViolation for bad options, or ctx.Err() on cancellation.
func Distances(b *board.Board, src board.Coordinate, opts ...Option) (*DistanceResult, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: board is nil", ErrInvalidArgument)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	start, err := b.Cell(src)
	if err != nil {
		return nil, fmt.Errorf("%w: source: %w", ErrInvalidArgument, err)
	}

	n := b.Len()
	w := &walker{
		board:   b,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &DistanceResult{
			Source: src,
			Order:  make([]board.Coordinate, 0, n),
			Depth:  make(map[board.Coordinate]int, n),
			Parent: make(map[board.Coordinate]board.Coordinate, n),
		},
	}

	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(c *board.Cell, d int, parent *board.Cell) {
	w.visited[w.board.Index(c)] = true
	at := c.Coordinate()
	w.res.Depth[at] = d
	if parent != nil {
		w.res.Parent[at] = parent.Coordinate()
	}
	w.opts.OnEnqueue(at, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty or cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		at := item.cell.Coordinate()
		w.opts.OnDequeue(at, item.depth)
		w.res.Order = append(w.res.Order, at)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range item.cell.Neighbors() {
			if !w.visited[w.board.Index(nbr)] {
				w.enqueue(nbr, next, item.cell)
			}
		}
	}
	return nil
}
