// Package knightpath computes shortest knight-move routes on rectangular
// chessboards.
//
// What is inside?
//
//	board/       - Board, Cell and Coordinate; grid construction and
//	               knight-move adjacency (BuildGrid, PopulateKnightAdjacency,
//	               BuildKnightGraph)
//	pathsearch/  - breadth-first search over route trees (FindShortestPaths),
//	               single-source distances (Distances), path rendering
//	cmd/knightpath - command-line front end: path, distance, batch
//
// Quick example:
//
//	b, _ := board.BuildKnightGraph(8, 8)
//	paths, _ := pathsearch.FindShortestPathsFromPair(b, [][]int{{3, 3}, {7, 6}})
//	fmt.Print(pathsearch.FormatPath(paths[0]))
//
//	you will get there in 3 move(s)
//	[3,3]
//	[5,2]
//	[6,4]
//	[7,6]
//
// Boards are immutable once built, so one board can serve any number of
// concurrent searches.
package knightpath
