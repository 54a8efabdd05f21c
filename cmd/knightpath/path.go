package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightpath/pathsearch"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		maxResults int
		format     string
	)
	cmd := &cobra.Command{
		Use:   "path [[srcRow,srcCol],[dstRow,dstCol]]",
		Short: "Print the shortest knight route(s) between two squares",
		Example: `  knightpath path '[[3,3],[7,6]]'
  knightpath path '[[0,0],[7,7]]' --max-results 3 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			pair, err := parsePair(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-results") {
				maxResults = a.cfg.Search.MaxResults
			}

			b, err := a.buildBoard()
			if err != nil {
				return err
			}
			began := time.Now()
			paths, err := pathsearch.FindShortestPathsFromPair(b, pair,
				pathsearch.WithContext(cmd.Context()),
				pathsearch.WithMaxResults(maxResults),
			)
			if err != nil {
				return err
			}
			a.log.Debug("search finished",
				slog.String("query", args[0]),
				slog.Int("paths", len(paths)),
				slog.Duration("elapsed", time.Since(began)),
			)

			if format == formatText {
				return writeString(cmd.OutOrStdout(), renderText(paths))
			}
			return encode(cmd.OutOrStdout(), format, newQueryResult(pair[0], pair[1], paths))
		},
	}
	cmd.Flags().IntVarP(&maxResults, "max-results", "n", 1, "number of shortest routes to list")
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text|json|yaml")
	return cmd
}

// parsePair decodes the JSON pair argument. Shape is checked later by
// pathsearch so that malformed pairs share one error kind.
func parsePair(arg string) ([][]int, error) {
	var pair [][]int
	if err := json.Unmarshal([]byte(arg), &pair); err != nil {
		return nil, fmt.Errorf("%w: %q is not a [[row,col],[row,col]] pair: %v",
			pathsearch.ErrInvalidArgument, arg, err)
	}
	return pair, nil
}
