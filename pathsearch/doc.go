// Package pathsearch finds shortest knight-move paths on a board.Board.
//
// What
//
//   - FindShortestPaths runs a breadth-first search whose frontier holds
//     PathNodes rather than cells, so several distinct shortest routes can
//     be reported even when they share squares.
//   - Cycle avoidance is per path: a neighbor is skipped only when it already
//     appears on the candidate's own root-to-leaf chain (IsVisitedOnPath).
//   - Distances runs the classic single-source BFS with a global visited set
//     and returns depth and parent maps, like a textbook BFS tree.
//   - RenderPath and FormatPath turn a found PathNode into coordinates or the
//     printable "you will get there in N move(s)" block.
//
// Result semantics
//
//   - Source equal to destination: one path, the root itself, depth 0.
//   - Only paths of the minimum depth are ever returned. With
//     WithMaxResults(k) the search stops after k of them, or earlier when
//     fewer than k minimum-depth paths exist; it never pads with longer ones.
//   - Unreachable destination: empty result, nil error.
//   - Ties come back in discovery order, which follows board.KnightOffsets().
//
// Complexity (V = cells, d = shortest distance, b ≤ 8 branching)
//
//   - Distances:         O(V) time and memory.
//   - FindShortestPaths: O(V) for the Distances pass from dst, then one path
//     node per shortest-route prefix explored before MaxResults is reached.
//     Only squares whose depth plus distance to dst equals d are enqueued,
//     so routes that drift away from dst are never built. Asking for every
//     shortest path still costs the number of such prefixes, which can grow
//     exponentially with d.
//
// Options
//
//   - WithMaxResults(n):  number of paths wanted (n ≥ 1, default 1).
//   - WithMaxDepth(d):    Distances only; stop exploring beyond depth d (0 = no limit).
//   - WithContext(ctx):   cancellation, checked once per dequeue.
//   - WithOnEnqueue(fn):  hook when a node is enqueued.
//   - WithOnDequeue(fn):  hook before a node is expanded.
//
// Errors
//
//   - ErrInvalidArgument  nil board, malformed coordinate pair, or a source or
//     destination off the board (wraps board.ErrMalformedPair / board.ErrOutOfBounds).
//   - ErrOptionViolation  invalid Option value.
//   - ErrUnreachable      DistanceResult.PathTo for a square never reached.
//   - ctx.Err()           when the supplied context is cancelled.
//
// Concurrency
//
//	A populated board is never written by this package, so any number of
//	searches may run on the same board concurrently. All frontier and tree
//	state is local to a single call.
package pathsearch
