package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/pathsearch"
)

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance [row,col]",
		Short: "Print the knight distance from one square to every square",
		Long: `distance prints a rows×cols table of move counts from the given
square. Squares the knight can never reach are shown as ".".`,
		Example: "  knightpath distance '[0,0]' --rows 5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rc []int
			if err := json.Unmarshal([]byte(args[0]), &rc); err != nil || len(rc) != 2 {
				return fmt.Errorf("%w: %q is not a [row,col] square", pathsearch.ErrInvalidArgument, args[0])
			}
			b, err := a.buildBoard()
			if err != nil {
				return err
			}
			res, err := pathsearch.Distances(b, board.Coordinate{rc[0], rc[1]},
				pathsearch.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			return writeString(cmd.OutOrStdout(), distanceTable(b, res))
		},
	}
}

// distanceTable renders res as one line per row, cells right-aligned.
func distanceTable(b *board.Board, res *pathsearch.DistanceResult) string {
	width := 1
	for _, d := range res.Depth {
		if w := len(strconv.Itoa(d)); w > width {
			width = w
		}
	}
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if d, ok := res.Depth[board.Coordinate{r, c}]; ok {
				cell = strconv.Itoa(d)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
