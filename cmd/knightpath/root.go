package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/internal/config"
	"github.com/katalvlaran/knightpath/internal/logging"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	rows, cols int

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "knightpath",
		Short: "Find the fewest knight moves between squares of a rectangular board",
		Long: `knightpath builds a knight-move graph for a rows×cols board and
searches it breadth-first for the shortest routes between squares.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text|json")
	pf.IntVar(&a.rows, "rows", 0, "board rows (default from config, 8)")
	pf.IntVar(&a.cols, "cols", 0, "board columns (default: same as rows)")

	root.AddCommand(
		newPathCmd(a),
		newDistanceCmd(a),
		newBatchCmd(a),
	)
	return root
}

// setup loads configuration, overlays explicitly set flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Board.Rows = a.rows
		if !flags.Changed("cols") {
			cfg.Board.Cols = 0
		}
	}
	if flags.Changed("cols") {
		cfg.Board.Cols = a.cols
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Logging, cmd.ErrOrStderr())
	return nil
}

// buildBoard builds the configured knight graph.
func (a *app) buildBoard() (*board.Board, error) {
	b, err := board.BuildKnightGraph(a.cfg.Board.Rows, a.cfg.Board.Cols)
	if err != nil {
		return nil, err
	}
	a.log.Debug("board built",
		slog.Int("rows", b.Rows()),
		slog.Int("cols", b.Cols()),
		slog.Int("edges", b.EdgeCount()),
	)
	return b, nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
