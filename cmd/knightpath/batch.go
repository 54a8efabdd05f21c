package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/pathsearch"
)

// batchFile is the YAML document accepted by the batch command:
//
//	queries:
//	  - from: [0, 0]
//	    to: [7, 7]
//	    max_results: 2
type batchFile struct {
	Queries []batchQuery `yaml:"queries"`
}

type batchQuery struct {
	From       []int `yaml:"from"`
	To         []int `yaml:"to"`
	MaxResults int   `yaml:"max_results"` // 0 uses the configured default
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers int
		format  string
	)
	cmd := &cobra.Command{
		Use:   "batch [queries.yaml]",
		Short: "Run many path queries concurrently over one board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Search.Workers
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			var file batchFile
			dec := yaml.NewDecoder(bytes.NewReader(raw))
			dec.KnownFields(true)
			if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			b, err := a.buildBoard()
			if err != nil {
				return err
			}
			found, err := a.runBatch(cmd, b, file.Queries, workers)
			if err != nil {
				return err
			}

			if format != formatText {
				results := make([]queryResult, len(found))
				for i, paths := range found {
					q := file.Queries[i]
					results[i] = newQueryResult(q.From, q.To, paths)
				}
				return encode(cmd.OutOrStdout(), format, results)
			}
			var sb strings.Builder
			for i, paths := range found {
				if i > 0 {
					sb.WriteByte('\n')
				}
				q := file.Queries[i]
				fmt.Fprintf(&sb, "# %s -> %s\n",
					board.Coordinate{q.From[0], q.From[1]}, board.Coordinate{q.To[0], q.To[1]})
				sb.WriteString(renderText(paths))
			}
			return writeString(cmd.OutOrStdout(), sb.String())
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "queries searched concurrently")
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text|json|yaml")
	return cmd
}

// runBatch searches every query on b with at most workers goroutines and
// returns the found paths in input order. The first failing query cancels
// the rest.
func (a *app) runBatch(cmd *cobra.Command, b *board.Board, queries []batchQuery, workers int) ([][]*pathsearch.PathNode, error) {
	results := make([][]*pathsearch.PathNode, len(queries))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for i, q := range queries {
		g.Go(func() error {
			limit := q.MaxResults
			if limit == 0 {
				limit = a.cfg.Search.MaxResults
			}
			paths, err := pathsearch.FindShortestPathsFromPair(b, [][]int{q.From, q.To},
				pathsearch.WithContext(ctx),
				pathsearch.WithMaxResults(limit),
			)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = paths
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.log.Debug("batch finished", slog.Int("queries", len(queries)), slog.Int("workers", workers))
	return results, nil
}
