package pathsearch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/pathsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBoard builds a populated rows×cols board or fails the test.
func newBoard(t testing.TB, rows, cols int) *board.Board {
	t.Helper()
	b, err := board.BuildKnightGraph(rows, cols)
	require.NoError(t, err)
	return b
}

// assertLegalPath checks that coords starts at src, ends at dst and that
// every step is a knight move.
func assertLegalPath(t *testing.T, coords []board.Coordinate, src, dst board.Coordinate) {
	t.Helper()
	require.NotEmpty(t, coords)
	assert.Equal(t, src, coords[0])
	assert.Equal(t, dst, coords[len(coords)-1])
	for i := 1; i < len(coords); i++ {
		dr, dc := abs(coords[i][0]-coords[i-1][0]), abs(coords[i][1]-coords[i-1][1])
		assert.True(t, (dr == 1 && dc == 2) || (dr == 2 && dc == 1),
			"step %s→%s is not a knight move", coords[i-1], coords[i])
	}
}

// countShortestPaths counts minimum-length routes by dynamic programming
// over the BFS layers from Distances.
func countShortestPaths(t *testing.T, b *board.Board, src, dst board.Coordinate) int {
	t.Helper()
	dist, err := pathsearch.Distances(b, src)
	require.NoError(t, err)
	ways := map[board.Coordinate]int{src: 1}
	for _, at := range dist.Order {
		if at == src {
			continue
		}
		for _, n := range b.At(at[0], at[1]).Neighbors() {
			if d, ok := dist.Depth[n.Coordinate()]; ok && d == dist.Depth[at]-1 {
				ways[at] += ways[n.Coordinate()]
			}
		}
	}
	return ways[dst]
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

// TestFindShortestPaths_Errors verifies that invalid input is rejected
// before any node is enqueued.
func TestFindShortestPaths_Errors(t *testing.T) {
	b := newBoard(t, 8, 8)

	cases := []struct {
		name  string
		run   func(opts ...pathsearch.Option) error
		wants []error
	}{
		{
			"NilBoard",
			func(opts ...pathsearch.Option) error {
				_, err := pathsearch.FindShortestPaths(nil, board.Coordinate{0, 0}, board.Coordinate{1, 2}, opts...)
				return err
			},
			[]error{pathsearch.ErrInvalidArgument},
		},
		{
			"PairTooShort",
			func(opts ...pathsearch.Option) error {
				_, err := pathsearch.FindShortestPathsFromPair(b, [][]int{{0, 0}}, opts...)
				return err
			},
			[]error{pathsearch.ErrInvalidArgument, board.ErrMalformedPair},
		},
		{
			"PairNil",
			func(opts ...pathsearch.Option) error {
				_, err := pathsearch.FindShortestPathsFromPair(b, nil, opts...)
				return err
			},
			[]error{pathsearch.ErrInvalidArgument, board.ErrMalformedPair},
		},
		{
			"PairInnerWrongLength",
			func(opts ...pathsearch.Option) error {
				_, err := pathsearch.FindShortestPathsFromPair(b, [][]int{{0, 0, 0}, {1, 2}}, opts...)
				return err
			},
			[]error{pathsearch.ErrInvalidArgument, board.ErrMalformedPair},
		},
		{
			"SourceOutOfBounds",
			func(opts ...pathsearch.Option) error {
				_, err := pathsearch.FindShortestPaths(b, board.Coordinate{8, 0}, board.Coordinate{1, 2}, opts...)
				return err
			},
			[]error{pathsearch.ErrInvalidArgument, board.ErrOutOfBounds},
		},
		{
			"DestinationNegative",
			func(opts ...pathsearch.Option) error {
				_, err := pathsearch.FindShortestPaths(b, board.Coordinate{0, 0}, board.Coordinate{-1, 2}, opts...)
				return err
			},
			[]error{pathsearch.ErrInvalidArgument, board.ErrOutOfBounds},
		},
		{
			"ZeroMaxResults",
			func(opts ...pathsearch.Option) error {
				opts = append(opts, pathsearch.WithMaxResults(0))
				_, err := pathsearch.FindShortestPaths(b, board.Coordinate{0, 0}, board.Coordinate{1, 2}, opts...)
				return err
			},
			[]error{pathsearch.ErrOptionViolation},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enqueued := 0
			err := tc.run(pathsearch.WithOnEnqueue(func(board.Coordinate, int) { enqueued++ }))
			for _, want := range tc.wants {
				assert.ErrorIs(t, err, want)
			}
			assert.Zero(t, enqueued, "no search work expected on invalid input")
		})
	}
}

//----------------------------------------------------------------------------//
// Shortest paths
//----------------------------------------------------------------------------//

// TestFindShortestPaths_KnownScenario pins the 8×8 (3,3)→(7,6) route.
func TestFindShortestPaths_KnownScenario(t *testing.T) {
	b := newBoard(t, 8, 8)
	paths, err := pathsearch.FindShortestPathsFromPair(b, [][]int{{3, 3}, {7, 6}})
	require.NoError(t, err)
	require.Len(t, paths, 1)

	assert.Equal(t, 3, paths[0].Depth)
	assert.Equal(t,
		[]board.Coordinate{{3, 3}, {5, 2}, {6, 4}, {7, 6}},
		pathsearch.RenderPath(paths[0]))
}

// TestFindShortestPaths_KnownDepths checks well-known distances on 8×8.
func TestFindShortestPaths_KnownDepths(t *testing.T) {
	b := newBoard(t, 8, 8)
	cases := []struct {
		src, dst board.Coordinate
		depth    int
	}{
		{board.Coordinate{0, 0}, board.Coordinate{1, 2}, 1},
		{board.Coordinate{0, 0}, board.Coordinate{7, 7}, 6},
		{board.Coordinate{3, 3}, board.Coordinate{7, 6}, 3},
		{board.Coordinate{0, 0}, board.Coordinate{2, 4}, 2},
	}
	for _, tc := range cases {
		paths, err := pathsearch.FindShortestPaths(b, tc.src, tc.dst)
		require.NoError(t, err)
		require.Len(t, paths, 1, "%s→%s", tc.src, tc.dst)
		assert.Equal(t, tc.depth, paths[0].Depth, "%s→%s", tc.src, tc.dst)
		assertLegalPath(t, pathsearch.RenderPath(paths[0]), tc.src, tc.dst)
	}
}

// TestFindShortestPaths_MatchesDistances cross-checks every destination on
// a rectangular board against the global-visited BFS.
func TestFindShortestPaths_MatchesDistances(t *testing.T) {
	b := newBoard(t, 6, 7)
	src := board.Coordinate{0, 0}
	dist, err := pathsearch.Distances(b, src)
	require.NoError(t, err)
	require.Len(t, dist.Order, b.Len(), "6×7 knight graph is connected")

	for _, c := range b.Cells() {
		dst := c.Coordinate()
		paths, err := pathsearch.FindShortestPaths(b, src, dst)
		require.NoError(t, err)
		require.Len(t, paths, 1, "→%s", dst)
		assert.Equal(t, dist.Depth[dst], paths[0].Depth, "→%s", dst)
		coords := pathsearch.RenderPath(paths[0])
		assert.Len(t, coords, paths[0].Depth+1)
		assertLegalPath(t, coords, src, dst)
	}
}

// TestFindShortestPaths_SameSquare documents the depth-0 result.
func TestFindShortestPaths_SameSquare(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {8, 8}} {
		b := newBoard(t, dims[0], dims[1])
		paths, err := pathsearch.FindShortestPaths(b, board.Coordinate{0, 0}, board.Coordinate{0, 0},
			pathsearch.WithMaxResults(5))
		require.NoError(t, err)
		require.Len(t, paths, 1)
		assert.Equal(t, 0, paths[0].Depth)
		assert.Nil(t, paths[0].Parent)
		assert.Equal(t, []board.Coordinate{{0, 0}}, pathsearch.RenderPath(paths[0]))
	}
}

// TestFindShortestPaths_Unreachable covers degenerate boards.
func TestFindShortestPaths_Unreachable(t *testing.T) {
	cases := []struct {
		name     string
		rows     int
		cols     int
		src, dst board.Coordinate
	}{
		{"2x2", 2, 2, board.Coordinate{0, 0}, board.Coordinate{1, 1}},
		{"3x3Center", 3, 3, board.Coordinate{0, 0}, board.Coordinate{1, 1}},
		{"1x8", 1, 8, board.Coordinate{0, 0}, board.Coordinate{0, 7}},
		{"2x5", 2, 5, board.Coordinate{0, 0}, board.Coordinate{1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard(t, tc.rows, tc.cols)
			paths, err := pathsearch.FindShortestPaths(b, tc.src, tc.dst, pathsearch.WithMaxResults(3))
			require.NoError(t, err)
			assert.NotNil(t, paths)
			assert.Empty(t, paths)
		})
	}
}

// TestFindShortestPaths_TiesInDiscoveryOrder uses the 3×3 ring, where the
// corner (0,0) reaches (2,2) in 4 moves going either way round.
func TestFindShortestPaths_TiesInDiscoveryOrder(t *testing.T) {
	b := newBoard(t, 3, 3)
	paths, err := pathsearch.FindShortestPaths(b, board.Coordinate{0, 0}, board.Coordinate{2, 2},
		pathsearch.WithMaxResults(5))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t,
		[]board.Coordinate{{0, 0}, {2, 1}, {0, 2}, {1, 0}, {2, 2}},
		pathsearch.RenderPath(paths[0]))
	assert.Equal(t,
		[]board.Coordinate{{0, 0}, {1, 2}, {2, 0}, {0, 1}, {2, 2}},
		pathsearch.RenderPath(paths[1]))

	single, err := pathsearch.FindShortestPaths(b, board.Coordinate{0, 0}, board.Coordinate{2, 2})
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, pathsearch.RenderPath(paths[0]), pathsearch.RenderPath(single[0]))
}

// TestFindShortestPaths_MaxResults checks that k results are all of minimum
// depth, distinct, and that asking for more than exist returns exactly the
// number of shortest routes.
func TestFindShortestPaths_MaxResults(t *testing.T) {
	b := newBoard(t, 8, 8)
	src, dst := board.Coordinate{0, 0}, board.Coordinate{7, 7}

	three, err := pathsearch.FindShortestPaths(b, src, dst, pathsearch.WithMaxResults(3))
	require.NoError(t, err)
	assert.Len(t, three, 3)

	want := countShortestPaths(t, b, src, dst)
	require.Greater(t, want, 3)
	all, err := pathsearch.FindShortestPaths(b, src, dst, pathsearch.WithMaxResults(want+50))
	require.NoError(t, err)
	assert.Len(t, all, want)

	seen := map[string]bool{}
	for _, p := range all {
		assert.Equal(t, 6, p.Depth)
		coords := pathsearch.RenderPath(p)
		assertLegalPath(t, coords, src, dst)
		key := pathsearch.FormatPath(p)
		assert.False(t, seen[key], "duplicate path %v", coords)
		seen[key] = true
	}
	// first k results are a prefix of the full enumeration
	for i := range three {
		assert.Equal(t, pathsearch.RenderPath(all[i]), pathsearch.RenderPath(three[i]))
	}
}

// TestFindShortestPaths_ParentChildLinks checks the node tree invariants.
func TestFindShortestPaths_ParentChildLinks(t *testing.T) {
	b := newBoard(t, 8, 8)
	paths, err := pathsearch.FindShortestPaths(b, board.Coordinate{3, 3}, board.Coordinate{7, 6},
		pathsearch.WithMaxResults(4))
	require.NoError(t, err)
	for _, leaf := range paths {
		for n := leaf; n.Parent != nil; n = n.Parent {
			assert.Equal(t, n.Parent.Depth+1, n.Depth)
			assert.Contains(t, n.Parent.Children, n)
		}
	}
}

// TestFindShortestPaths_Hooks asserts the root is enqueued first and that
// dequeues never exceed depth limit-1.
func TestFindShortestPaths_Hooks(t *testing.T) {
	b := newBoard(t, 8, 8)
	var enq []board.Coordinate
	maxDeq := -1
	paths, err := pathsearch.FindShortestPaths(b, board.Coordinate{0, 0}, board.Coordinate{7, 7},
		pathsearch.WithOnEnqueue(func(at board.Coordinate, _ int) { enq = append(enq, at) }),
		pathsearch.WithOnDequeue(func(_ board.Coordinate, d int) {
			if d > maxDeq {
				maxDeq = d
			}
		}),
	)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.NotEmpty(t, enq)
	assert.Equal(t, board.Coordinate{0, 0}, enq[0])
	assert.Equal(t, board.Coordinate{7, 7}, enq[len(enq)-1])
	assert.Equal(t, 5, maxDeq)
}

// TestFindShortestPaths_LargeBoardStaysOnShortestRoutes searches corner to
// corner on 18×18. Every enqueued node must sit on some shortest route, which
// keeps the node count far below the number of simple paths of that length.
func TestFindShortestPaths_LargeBoardStaysOnShortestRoutes(t *testing.T) {
	b := newBoard(t, 18, 18)
	src, dst := board.Coordinate{0, 0}, board.Coordinate{17, 17}

	fromSrc, err := pathsearch.Distances(b, src)
	require.NoError(t, err)
	toDst, err := pathsearch.Distances(b, dst)
	require.NoError(t, err)
	limit := fromSrc.Depth[dst]
	require.Equal(t, 12, limit)

	enqueued := 0
	offRoute := 0
	paths, err := pathsearch.FindShortestPaths(b, src, dst,
		pathsearch.WithOnEnqueue(func(at board.Coordinate, d int) {
			enqueued++
			if fromSrc.Depth[at] != d || d+toDst.Depth[at] != limit {
				offRoute++
			}
		}),
	)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, limit, paths[0].Depth)
	assertLegalPath(t, pathsearch.RenderPath(paths[0]), src, dst)
	assert.Zero(t, offRoute)
	assert.Less(t, enqueued, 50_000)
}

// TestFindShortestPaths_Cancellation verifies that a cancelled context halts the search.
func TestFindShortestPaths_Cancellation(t *testing.T) {
	b := newBoard(t, 8, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pathsearch.FindShortestPaths(b, board.Coordinate{0, 0}, board.Coordinate{7, 7},
		pathsearch.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFindShortestPaths_ConcurrentSafety runs searches on one board in parallel.
func TestFindShortestPaths_ConcurrentSafety(t *testing.T) {
	b := newBoard(t, 8, 8)
	want, err := pathsearch.FindShortestPaths(b, board.Coordinate{0, 0}, board.Coordinate{7, 7},
		pathsearch.WithMaxResults(4))
	require.NoError(t, err)

	const runs = 8
	results := make(chan [][]board.Coordinate, runs)
	for i := 0; i < runs; i++ {
		go func() {
			paths, err := pathsearch.FindShortestPaths(b, board.Coordinate{0, 0}, board.Coordinate{7, 7},
				pathsearch.WithMaxResults(4))
			if err != nil {
				results <- nil
				return
			}
			var out [][]board.Coordinate
			for _, p := range paths {
				out = append(out, pathsearch.RenderPath(p))
			}
			results <- out
		}()
	}
	var expected [][]board.Coordinate
	for _, p := range want {
		expected = append(expected, pathsearch.RenderPath(p))
	}
	for i := 0; i < runs; i++ {
		assert.Equal(t, expected, <-results)
	}
}

//----------------------------------------------------------------------------//
// IsVisitedOnPath
//----------------------------------------------------------------------------//

func TestIsVisitedOnPath(t *testing.T) {
	b := newBoard(t, 8, 8)
	root := &pathsearch.PathNode{Cell: b.At(0, 0)}
	mid := &pathsearch.PathNode{Cell: b.At(2, 1), Parent: root, Depth: 1}
	leaf := &pathsearch.PathNode{Cell: b.At(4, 2), Parent: mid, Depth: 2}
	sibling := &pathsearch.PathNode{Cell: b.At(1, 2), Parent: root, Depth: 1}

	assert.True(t, pathsearch.IsVisitedOnPath(leaf, b.At(4, 2)))
	assert.True(t, pathsearch.IsVisitedOnPath(leaf, b.At(2, 1)))
	assert.True(t, pathsearch.IsVisitedOnPath(leaf, b.At(0, 0)))
	assert.False(t, pathsearch.IsVisitedOnPath(leaf, b.At(1, 2)), "sibling branch must not count")
	assert.True(t, pathsearch.IsVisitedOnPath(sibling, b.At(0, 0)))
	assert.False(t, pathsearch.IsVisitedOnPath(nil, b.At(0, 0)))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
