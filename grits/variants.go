package grits

import (
	"fmt"

	"github.com/tsawler/tablemetrics/model"
)

// TopologySimilarity is the IoU of two cells' grid rectangles.
func TopologySimilarity(truth, pred model.Cell) float64 {
	return truth.GridIoU(pred)
}

// ContentSimilarity is 1 when the cells' texts are equal and 0 otherwise.
func ContentSimilarity(truth, pred model.Cell) float64 {
	if truth.Text == pred.Text {
		return 1
	}
	return 0
}

// LocationSimilarity is the IoU of two boxes with the same label, and 0 for
// boxes with different labels.
func LocationSimilarity(truth, pred model.LabeledBox) float64 {
	if truth.Label != pred.Label {
		return 0
	}
	return truth.BBox.IoU(pred.BBox)
}

// Topology computes GriTS-Top over the cells of two tables.
func Topology(truth, pred []model.Cell) Score {
	return Compute(truth, pred, TopologySimilarity)
}

// Content computes GriTS-Con over the cells of two tables. When the
// topologies agree and k of n aligned cells have equal text, the score is
// k/n.
func Content(truth, pred []model.Cell) Score {
	return Compute(truth, pred, ContentSimilarity)
}

// Location computes GriTS-Loc over two sets of labeled boxes.
func Location(truth, pred []model.LabeledBox) Score {
	return Compute(truth, pred, LocationSimilarity)
}

// LabeledBoxes pairs [x1, y1, x2, y2] boxes with integer labels. The slices
// must have the same length.
func LabeledBoxes(boxes [][4]float64, labels []int) ([]model.LabeledBox, error) {
	if len(boxes) != len(labels) {
		return nil, fmt.Errorf("%d boxes but %d labels", len(boxes), len(labels))
	}
	out := make([]model.LabeledBox, len(boxes))
	for i, b := range boxes {
		out[i] = model.LabeledBox{
			BBox:  model.NewBBoxFromCorners(b[0], b[1], b[2], b[3]),
			Label: model.BoxLabel(labels[i]),
		}
	}
	return out, nil
}
