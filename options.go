package tablemetrics

import (
	"io"
	"log/slog"
	"math"

	"github.com/tsawler/tablemetrics/htmldoc"
)

// compareOptions holds configuration for a table comparison.
type compareOptions struct {
	// Content handling
	structureOnly bool
	ignoredNodes  []string

	// Multi-table inputs
	aggregation Aggregation

	logger *slog.Logger
}

// defaultOptions returns the default comparison options.
func defaultOptions() compareOptions {
	return compareOptions{
		structureOnly: false,
		ignoredNodes:  nil,
		aggregation:   AggregateFirst,
		logger:        slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
}

// clone creates a deep copy of compareOptions.
func (o compareOptions) clone() compareOptions {
	newOpts := compareOptions{
		structureOnly: o.structureOnly,
		aggregation:   o.aggregation,
		logger:        o.logger,
	}

	if o.ignoredNodes != nil {
		newOpts.ignoredNodes = make([]string, len(o.ignoredNodes))
		copy(newOpts.ignoredNodes, o.ignoredNodes)
	}

	return newOpts
}

// ignored returns the ignored node names as a tag set.
func (o compareOptions) ignored() htmldoc.TagSet {
	return htmldoc.NewTagSet(o.ignoredNodes...)
}
