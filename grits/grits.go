// Package grits implements the Grid Table Similarity (GriTS) metrics.
//
// Every variant compares a ground-truth set of units with a predicted set.
// A similarity in [0, 1] is computed for every (truth, prediction) pair, the
// pairs are matched one-to-one to maximize the summed similarity W, and
//
//	precision = W / |predicted|
//	recall    = W / |truth|
//	fscore    = 2 * precision * recall / (precision + recall)
//
// The variants differ only in the unit type and the similarity function:
//
//   - [Topology]: grid cells, similarity is the IoU of their grid spans
//   - [Content]: grid cells, similarity is 1 when their texts are equal
//   - [Location]: labeled boxes, similarity is the IoU of boxes sharing a label
//
// [Compute] is the generic engine; any similarity function can be plugged in.
package grits

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tsawler/tablemetrics/internal/assign"
)

// Score holds the F-score together with its precision and recall.
type Score struct {
	FScore    float64
	Precision float64
	Recall    float64
}

// Components returns the F-score, precision and recall in that order.
func (s Score) Components() (fscore, precision, recall float64) {
	return s.FScore, s.Precision, s.Recall
}

// SimilarityFunc scores a ground-truth unit against a predicted unit. It must
// return a value in [0, 1].
type SimilarityFunc[T any] func(truth, pred T) float64

// Matrix builds the |truth| x |pred| similarity matrix. Both slices must be
// non-empty.
func Matrix[T any](truth, pred []T, sim SimilarityFunc[T]) *mat.Dense {
	m := mat.NewDense(len(truth), len(pred), nil)
	for i, t := range truth {
		for j, p := range pred {
			m.Set(i, j, sim(t, p))
		}
	}
	return m
}

// Compute scores pred against truth. If either side is empty the score is
// zero, even when both are.
func Compute[T any](truth, pred []T, sim SimilarityFunc[T]) Score {
	if len(truth) == 0 || len(pred) == 0 {
		return Score{}
	}

	w := assign.Maximize(Matrix(truth, pred, sim)).Total
	return FromWeight(w, len(truth), len(pred))
}

// FromWeight derives the score from the total matched similarity and the
// unit counts.
func FromWeight(w float64, numTruth, numPred int) Score {
	if numTruth == 0 || numPred == 0 {
		return Score{}
	}
	s := Score{
		Precision: w / float64(numPred),
		Recall:    w / float64(numTruth),
	}
	if s.Precision+s.Recall > 0 {
		s.FScore = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	return s
}
