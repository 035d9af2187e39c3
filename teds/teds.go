// Package teds computes Tree-Edit-Distance-based Similarity between tables.
//
// Each HTML table becomes an ordered tree: a table root, one row node per
// <tr>, and one cell node per <td>/<th>. Cell nodes carry their row and
// column spans and, unless structure-only comparison is requested, their
// content tokens. The similarity of two tables is
//
//	1 - distance / N
//
// where distance is the tree edit distance and N is the node count of the
// larger tree, not counting the table root. Two empty tables are identical
// and score 1.
//
// Renaming a cell into a cell with different spans costs 1. Between cells of
// equal spans it costs the normalized Levenshtein distance of their content,
// so near-matching text earns partial credit.
package teds

import (
	"github.com/adrg/strutil/metrics"

	"github.com/tsawler/tablemetrics/htmldoc"
	"github.com/tsawler/tablemetrics/internal/treedist"
)

// Options controls how tables are turned into trees.
type Options struct {
	// StructureOnly drops cell content so only layout is compared.
	StructureOnly bool
	// Ignored lists inline elements whose markup is dropped from cell
	// content; their text is kept.
	Ignored htmldoc.TagSet
}

// Comparer scores tables against each other. A Comparer holds the token
// symbol table shared by every tree it builds, so one Comparer must be used
// for both sides of a comparison. It is not safe for concurrent use.
type Comparer struct {
	opts    Options
	symbols *symbolTable
	lev     *metrics.Levenshtein
}

// NewComparer creates a Comparer.
func NewComparer(opts Options) *Comparer {
	return &Comparer{
		opts:    opts,
		symbols: newSymbolTable(),
		lev:     metrics.NewLevenshtein(),
	}
}

// Similarity returns the TEDS score of pred against truth, in [0, 1].
func (c *Comparer) Similarity(truth, pred *htmldoc.Table) float64 {
	a, b := c.Tree(truth), c.Tree(pred)

	n := max(a.Len(), b.Len()) - 1 // the table roots always match
	if n <= 0 {
		return 1
	}

	dist := treedist.Distance(a, b, c.rename)
	sim := 1 - dist/float64(n)
	switch {
	case sim < 0:
		return 0
	case sim > 1:
		return 1
	default:
		return sim
	}
}

// Similarity is a convenience wrapper that scores one pair of tables with a
// fresh Comparer.
func Similarity(truth, pred *htmldoc.Table, opts Options) float64 {
	return NewComparer(opts).Similarity(truth, pred)
}

// rename is the relabeling cost between two tree nodes.
func (c *Comparer) rename(a, b Node) float64 {
	if a.Kind != b.Kind {
		return 1
	}
	if a.Kind != KindCell {
		return 0
	}
	if a.RowSpan != b.RowSpan || a.ColSpan != b.ColSpan {
		return 1
	}
	if c.opts.StructureOnly || a.Content == b.Content {
		return 0
	}
	return c.contentDistance(a.Content, b.Content)
}

// contentDistance is the Levenshtein distance over content symbols divided
// by the longer content's length.
func (c *Comparer) contentDistance(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 0
	}
	return float64(c.lev.Distance(a, b)) / float64(longest)
}
