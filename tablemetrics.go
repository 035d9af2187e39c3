// Package tablemetrics scores predicted tables against ground-truth tables,
// for benchmarking table structure recognition.
//
// Three families of metrics are available:
//
//   - TEDS, a tree-edit-distance similarity over HTML tables
//   - GriTS-Top and GriTS-Con, grid alignment metrics over the cells of HTML
//     tables (topology and content)
//   - GriTS-Loc, the grid alignment metric over labeled bounding boxes
//
// Basic usage:
//
//	score := tablemetrics.TEDS(trueHTML, predHTML, false)
//	top := tablemetrics.GritsTop(trueHTML, predHTML)
//	fmt.Println(score, top.FScore, top.Precision, top.Recall)
//
// With options:
//
//	score, err := tablemetrics.Compare(trueHTML, predHTML).
//	    StructureOnly().
//	    IgnoreNodes("sup", "sub").
//	    Aggregate(tablemetrics.AggregateMean).
//	    TEDS()
//
// HTML is parsed with a forgiving parser: malformed markup is scored on a
// best-effort grid and never produces an error. An input without any table
// scores 0 against everything.
//
// Every call is self-contained; functions and Comparison values are safe for
// concurrent use.
package tablemetrics

import (
	"errors"
	"fmt"

	"github.com/tsawler/tablemetrics/grits"
	"github.com/tsawler/tablemetrics/htmldoc"
	"github.com/tsawler/tablemetrics/model"
)

// ErrInvalidArgument is returned when an argument violates a precondition,
// such as box and label slices of different lengths.
var ErrInvalidArgument = errors.New("tablemetrics: invalid argument")

// HTMLToCells canonicalizes every table in the markup into grid cells and
// returns them concatenated in document order. Elements named in
// ignoredNodes contribute their text to the enclosing cell without a word
// boundary. Markup without tables yields nil.
//
// Example:
//
//	cells := tablemetrics.HTMLToCells(`<table><tr><td colspan="2">A</td></tr></table>`)
//	cells[0].ColumnNums // [0 1]
func HTMLToCells(markup string, ignoredNodes ...string) []model.Cell {
	return htmldoc.Parse(markup).Cells(htmldoc.NewTagSet(ignoredNodes...))
}

// TEDS returns the tree-edit-distance similarity of predHTML against
// trueHTML, in [0, 1]. With structureOnly set, cell text is not compared.
// Only the first table of each input is compared; see [Compare] and
// [AggregateMean] for other policies.
func TEDS(trueHTML, predHTML string, structureOnly bool, ignoredNodes ...string) float64 {
	c := Compare(trueHTML, predHTML).IgnoreNodes(ignoredNodes...)
	if structureOnly {
		c = c.StructureOnly()
	}
	score, _ := c.TEDS() // default options are always valid
	return score
}

// GritsTop returns the GriTS topology score of predHTML against trueHTML.
// Score.FScore is the metric; precision and recall come with it.
func GritsTop(trueHTML, predHTML string) grits.Score {
	score, _ := Compare(trueHTML, predHTML).GritsTop()
	return score
}

// GritsCon returns the GriTS content score of predHTML against trueHTML.
func GritsCon(trueHTML, predHTML string) grits.Score {
	score, _ := Compare(trueHTML, predHTML).GritsCon()
	return score
}

// GritsLoc returns the GriTS location score over labeled boxes. Boxes are
// [x1, y1, x2, y2]; labels are [model.BoxLabel] values. A box only matches
// boxes with the same label. Each box slice must be as long as its label
// slice, otherwise an error wrapping ErrInvalidArgument is returned.
func GritsLoc(trueBoxes [][4]float64, trueLabels []int, predBoxes [][4]float64, predLabels []int) (grits.Score, error) {
	truth, err := grits.LabeledBoxes(trueBoxes, trueLabels)
	if err != nil {
		return grits.Score{}, fmt.Errorf("%w: ground truth: %v", ErrInvalidArgument, err)
	}
	pred, err := grits.LabeledBoxes(predBoxes, predLabels)
	if err != nil {
		return grits.Score{}, fmt.Errorf("%w: prediction: %v", ErrInvalidArgument, err)
	}
	return grits.Location(truth, pred), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	score := tablemetrics.Must(tablemetrics.Compare(a, b).TEDS())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
