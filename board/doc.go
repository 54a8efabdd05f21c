// Package board models a rectangular chessboard as a graph whose edges are
// knight moves.
//
// What:
//
//   - Board holds a Rows×Cols grid of Cells stored row-major.
//   - PopulateKnightAdjacency precomputes, for every Cell, the set of Cells
//     reachable by one legal knight move ("L" jump).
//   - BuildKnightGraph composes both steps.
//
// Why:
//
//   - Searches over the board only follow precomputed neighbor pointers,
//     so the bounds check happens exactly once per offset per cell.
//
// Determinism:
//
//	Neighbors are appended in the order of KnightOffsets():
//	(-2,+1) (-2,-1) (+2,+1) (+2,-1) (+1,-2) (-1,-2) (+1,+2) (-1,+2).
//	Every traversal that follows Neighbors() is therefore reproducible.
//
// Complexity:
//
//   - BuildGrid:               O(R×C), Memory: O(R×C).
//   - PopulateKnightAdjacency: O(R×C×8), Memory: O(R×C×8).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive row length or negative column length.
//   - ErrOutOfBounds:       coordinate outside [0,Rows)×[0,Cols).
//   - ErrMalformedPair:     coordinate pair is not [[r,c],[r,c]].
package board
