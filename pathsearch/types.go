package pathsearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/knightpath/board"
)

// Sentinel errors for path search.
var (
	// ErrInvalidArgument is returned for a nil board, a malformed coordinate
	// pair, or a source/destination outside the board.
	ErrInvalidArgument = errors.New("pathsearch: invalid argument")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathsearch: invalid option supplied")

	// ErrUnreachable is returned by DistanceResult.PathTo for squares the
	// search never reached.
	ErrUnreachable = errors.New("pathsearch: destination unreachable")
)

// DefaultMaxResults is the number of paths FindShortestPaths returns when
// WithMaxResults is not given.
const DefaultMaxResults = 1

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for FindShortestPaths and Distances.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxResults caps the number of paths FindShortestPaths returns.
	MaxResults int

	// MaxDepth, if > 0, stops Distances from exploring beyond this depth.
	MaxDepth int

	// OnEnqueue is called whenever a node enters the frontier.
	OnEnqueue func(at board.Coordinate, depth int)

	// OnDequeue is called immediately before a node is expanded.
	OnDequeue func(at board.Coordinate, depth int)

	err error
}

// DefaultOptions returns Options with background context, one result,
// no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxResults: DefaultMaxResults,
		MaxDepth:   0,
		OnEnqueue:  func(board.Coordinate, int) {},
		OnDequeue:  func(board.Coordinate, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxResults sets how many shortest paths to collect.
//
//	n ≥ 1: collect up to n paths of minimum depth
//	n < 1: invalid option → ErrOptionViolation
func WithMaxResults(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxResults must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxResults = n
	}
}

// WithMaxDepth limits Distances to squares at most d moves away.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(at board.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(at board.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// PathNode is one step of a candidate route. The same Cell may appear in
// many PathNodes, one per distinct route that reaches it.
type PathNode struct {
	Cell     *board.Cell
	Parent   *PathNode // nil for the root
	Children []*PathNode
	Depth    int // edges from the root
}

// addChild attaches a node for c below n and returns it.
func (n *PathNode) addChild(c *board.Cell) *PathNode {
	child := &PathNode{Cell: c, Parent: n, Depth: n.Depth + 1}
	n.Children = append(n.Children, child)
	return child
}

// Coordinate returns the square this node stands on.
func (n *PathNode) Coordinate() board.Coordinate {
	return n.Cell.Coordinate()
}

// DistanceResult holds the outcome of Distances:
//   - Order: squares in visit sequence.
//   - Depth: knight distance from the source.
//   - Parent: predecessor in the BFS tree.
type DistanceResult struct {
	Source board.Coordinate
	Order  []board.Coordinate
	Depth  map[board.Coordinate]int
	Parent map[board.Coordinate]board.Coordinate
}

// Reachable reports whether dst was reached.
func (r *DistanceResult) Reachable(dst board.Coordinate) bool {
	_, ok := r.Depth[dst]
	return ok
}

// PathTo reconstructs one shortest path from the source to dst.
// Returns ErrUnreachable if dst was not reached.
func (r *DistanceResult) PathTo(dst board.Coordinate) ([]board.Coordinate, error) {
	if !r.Reachable(dst) {
		return nil, fmt.Errorf("%w: %s from %s", ErrUnreachable, dst, r.Source)
	}
	path := []board.Coordinate{}
	for cur := dst; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → dst
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
