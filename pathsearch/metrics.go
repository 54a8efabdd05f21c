package pathsearch

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/knightpath/board"
)

// Package-level tracer and meter. Both are no-ops until the host process
// installs global providers.
var (
	tracer = otel.Tracer("knightpath.pathsearch")
	meter  = otel.Meter("knightpath.pathsearch")
)

var (
	searchLatency metric.Float64Histogram
	searchTotal   metric.Int64Counter
	nodesExpanded metric.Int64Histogram
	nodesCreated  metric.Int64Histogram
	pathsFound    metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchLatency, err = meter.Float64Histogram(
			"knightpath_search_duration_seconds",
			metric.WithDescription("Duration of shortest-path searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchTotal, err = meter.Int64Counter(
			"knightpath_search_total",
			metric.WithDescription("Total number of shortest-path searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		nodesExpanded, err = meter.Int64Histogram(
			"knightpath_search_nodes_expanded",
			metric.WithDescription("Path nodes dequeued and expanded per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		nodesCreated, err = meter.Int64Histogram(
			"knightpath_search_nodes_created",
			metric.WithDescription("Path nodes allocated per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pathsFound, err = meter.Int64Histogram(
			"knightpath_search_paths_found",
			metric.WithDescription("Shortest paths returned per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSearchMetrics records one completed search.
func recordSearchMetrics(ctx context.Context, duration time.Duration, expanded, created, found int) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("found", found > 0))

	searchLatency.Record(ctx, duration.Seconds(), attrs)
	searchTotal.Add(ctx, 1, attrs)
	nodesExpanded.Record(ctx, int64(expanded))
	nodesCreated.Record(ctx, int64(created))
	pathsFound.Record(ctx, int64(found))
}

// startSearchSpan opens a span describing one FindShortestPaths call.
func startSearchSpan(ctx context.Context, src, dst board.Coordinate, maxResults int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "pathsearch.FindShortestPaths",
		trace.WithAttributes(
			attribute.String("knightpath.source", src.String()),
			attribute.String("knightpath.destination", dst.String()),
			attribute.Int("knightpath.max_results", maxResults),
		),
	)
}
