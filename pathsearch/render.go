package pathsearch

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/knightpath/board"
)

// RenderPath returns the coordinates from the root to n, inclusive.
// A nil node renders as nil.
func RenderPath(n *PathNode) []board.Coordinate {
	if n == nil {
		return nil
	}
	path := make([]board.Coordinate, 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.Coordinate())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FormatPath renders n as
//
//	you will get there in <depth> move(s)
//	[r0,c0]
//	...
//	[rN,cN]
//
// with one trailing newline. A nil node yields "".
func FormatPath(n *PathNode) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("you will get there in ")
	sb.WriteString(strconv.Itoa(n.Depth))
	sb.WriteString(" move(s)\n")
	for _, c := range RenderPath(n) {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
