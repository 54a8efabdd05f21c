package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/pathsearch"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// pathResult is one found route in machine-readable output.
type pathResult struct {
	Moves int                `json:"moves" yaml:"moves"`
	Path  []board.Coordinate `json:"path" yaml:"path,flow"`
}

// queryResult groups every route found for one source/destination pair.
type queryResult struct {
	From  []int        `json:"from" yaml:"from,flow"`
	To    []int        `json:"to" yaml:"to,flow"`
	Paths []pathResult `json:"paths" yaml:"paths"`
}

func newQueryResult(from, to []int, nodes []*pathsearch.PathNode) queryResult {
	res := queryResult{From: from, To: to, Paths: make([]pathResult, 0, len(nodes))}
	for _, n := range nodes {
		res.Paths = append(res.Paths, pathResult{Moves: n.Depth, Path: pathsearch.RenderPath(n)})
	}
	return res
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown --format %q (want text, json or yaml)", format)
}

// renderText prints every path as a FormatPath block, blank-line separated.
func renderText(nodes []*pathsearch.PathNode) string {
	if len(nodes) == 0 {
		return "no path found\n"
	}
	blocks := make([]string, 0, len(nodes))
	for _, n := range nodes {
		blocks = append(blocks, pathsearch.FormatPath(n))
	}
	return strings.Join(blocks, "\n")
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return validateFormat(format)
}
