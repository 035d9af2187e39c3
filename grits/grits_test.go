package grits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/tablemetrics/model"
)

// grid2x2 returns the cells of a 2x2 table with the given texts in row order.
func grid2x2(texts ...string) []model.Cell {
	return []model.Cell{
		model.NewCell(texts[0], 0, 0, 1, 1),
		model.NewCell(texts[1], 0, 1, 1, 1),
		model.NewCell(texts[2], 1, 0, 1, 1),
		model.NewCell(texts[3], 1, 1, 1, 1),
	}
}

func TestCompute_Empty(t *testing.T) {
	cells := grid2x2("A", "B", "C", "D")

	assert.Equal(t, Score{}, Topology(nil, cells))
	assert.Equal(t, Score{}, Topology(cells, nil))
	assert.Equal(t, Score{}, Topology(nil, nil))
	assert.Equal(t, Score{}, Content([]model.Cell{}, []model.Cell{}))
}

func TestTopology_Identical(t *testing.T) {
	cells := grid2x2("A", "B", "C", "D")

	got := Topology(cells, cells)
	assert.Equal(t, Score{FScore: 1, Precision: 1, Recall: 1}, got)
}

func TestTopology_MergedCell(t *testing.T) {
	truth := []model.Cell{
		model.NewCell("Merged", 0, 0, 1, 2),
		model.NewCell("A", 1, 0, 1, 1),
		model.NewCell("B", 1, 1, 1, 1),
	}
	pred := grid2x2("X", "Y", "A", "B")

	got := Topology(truth, pred)

	// The merged cell overlaps one predicted cell with IoU 1/2.
	w := 2.5
	assert.InDelta(t, w/4, got.Precision, 1e-9)
	assert.InDelta(t, w/3, got.Recall, 1e-9)
	assert.Greater(t, got.FScore, 0.0)
	assert.Less(t, got.FScore, 1.0)
}

func TestTopology_ShiftedGrid(t *testing.T) {
	truth := []model.Cell{model.NewCell("", 0, 0, 1, 1)}
	pred := []model.Cell{model.NewCell("", 5, 5, 1, 1)}

	assert.Equal(t, Score{}, Topology(truth, pred))
}

func TestContent_PartialMatch(t *testing.T) {
	truth := []model.Cell{model.NewCell("A", 0, 0, 1, 1), model.NewCell("B", 0, 1, 1, 1)}
	pred := []model.Cell{model.NewCell("A", 0, 0, 1, 1), model.NewCell("C", 0, 1, 1, 1)}

	got := Content(truth, pred)
	assert.Equal(t, 0.5, got.FScore)
	assert.Equal(t, 0.5, got.Precision)
	assert.Equal(t, 0.5, got.Recall)
}

func TestContent_KOfN(t *testing.T) {
	truth := grid2x2("A", "B", "C", "D")
	pred := grid2x2("A", "x", "C", "y")

	assert.InDelta(t, 2.0/4.0, Content(truth, pred).FScore, 1e-12)
}

func TestContent_MatchesAcrossPositions(t *testing.T) {
	truth := []model.Cell{model.NewCell("A", 0, 0, 1, 1), model.NewCell("B", 0, 1, 1, 1)}
	pred := []model.Cell{model.NewCell("B", 0, 0, 1, 1), model.NewCell("C", 0, 1, 1, 1)}

	got := Content(truth, pred).FScore
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
}

func TestFScore_SymmetricUnderSwap(t *testing.T) {
	truth := []model.Cell{
		model.NewCell("Merged", 0, 0, 1, 2),
		model.NewCell("A", 1, 0, 1, 1),
		model.NewCell("B", 1, 1, 1, 1),
	}
	pred := grid2x2("X", "Y", "A", "B")

	forward := Topology(truth, pred)
	backward := Topology(pred, truth)

	assert.InDelta(t, forward.FScore, backward.FScore, 1e-12)
	assert.InDelta(t, forward.Precision, backward.Recall, 1e-12)
	assert.InDelta(t, forward.Recall, backward.Precision, 1e-12)
	assert.NotEqual(t, forward.Precision, forward.Recall)
}

func TestCompute_CustomSimilarity(t *testing.T) {
	// Any unit type works with a pluggable similarity function.
	sim := func(a, b int) float64 {
		if a == b {
			return 1
		}
		return 0
	}

	got := Compute([]int{1, 2, 3}, []int{3, 4}, sim)
	assert.InDelta(t, 1.0/2.0, got.Precision, 1e-12)
	assert.InDelta(t, 1.0/3.0, got.Recall, 1e-12)
	assert.InDelta(t, 0.4, got.FScore, 1e-12)
}

func TestMatrix(t *testing.T) {
	truth := []model.Cell{model.NewCell("", 0, 0, 1, 2)}
	pred := grid2x2("", "", "", "")

	m := Matrix(truth, pred, TopologySimilarity)
	r, c := m.Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 4, c)
	assert.Equal(t, []float64{0.5, 0.5, 0, 0}, m.RawRowView(0))
}

func TestFromWeight(t *testing.T) {
	assert.Equal(t, Score{}, FromWeight(0, 3, 3))
	assert.Equal(t, Score{}, FromWeight(1, 0, 3))

	s := FromWeight(1, 2, 4)
	assert.Equal(t, 0.25, s.Precision)
	assert.Equal(t, 0.5, s.Recall)
	assert.InDelta(t, 1.0/3.0, s.FScore, 1e-12)

	f, p, r := s.Components()
	assert.Equal(t, s.FScore, f)
	assert.Equal(t, s.Precision, p)
	assert.Equal(t, s.Recall, r)
}

// ============================================================================
// Location
// ============================================================================

func mustBoxes(t *testing.T, boxes [][4]float64, labels []int) []model.LabeledBox {
	t.Helper()
	out, err := LabeledBoxes(boxes, labels)
	require.NoError(t, err)
	return out
}

func TestLocation_Identical(t *testing.T) {
	boxes := mustBoxes(t, [][4]float64{
		{0, 0, 100, 20},
		{0, 20, 100, 40},
		{0, 0, 50, 40},
		{50, 0, 100, 40},
	}, []int{2, 2, 1, 1})

	assert.Equal(t, Score{FScore: 1, Precision: 1, Recall: 1}, Location(boxes, boxes))
}

func TestLocation_WithSpanningCells(t *testing.T) {
	boxes := mustBoxes(t, [][4]float64{
		{0, 0, 100, 25},
		{0, 25, 100, 50},
		{0, 0, 50, 50},
		{50, 0, 100, 50},
		{10, 10, 40, 40},
	}, []int{2, 2, 1, 1, 4})

	assert.Equal(t, 1.0, Location(boxes, boxes).FScore)
}

func TestLocation_DifferentStructure(t *testing.T) {
	truth := mustBoxes(t, [][4]float64{
		{0, 0, 100, 50},
		{0, 0, 100, 50},
	}, []int{2, 1})
	pred := mustBoxes(t, [][4]float64{
		{0, 0, 100, 25},
		{0, 25, 100, 50},
		{0, 0, 50, 50},
		{50, 0, 100, 50},
	}, []int{2, 2, 1, 1})

	got := Location(truth, pred)
	assert.InDelta(t, 0.25, got.Precision, 1e-12)
	assert.InDelta(t, 0.5, got.Recall, 1e-12)
	assert.InDelta(t, 1.0/3.0, got.FScore, 1e-12)
}

func TestLocation_LabelsMustAgree(t *testing.T) {
	truth := mustBoxes(t, [][4]float64{{0, 0, 100, 20}}, []int{int(model.LabelRow)})
	pred := mustBoxes(t, [][4]float64{{0, 0, 100, 20}}, []int{int(model.LabelColumn)})

	assert.Equal(t, Score{}, Location(truth, pred))
}

func TestLocation_EmptyPrediction(t *testing.T) {
	truth := mustBoxes(t, [][4]float64{{0, 0, 100, 20}}, []int{2})

	assert.Equal(t, Score{}, Location(truth, nil))
}

func TestLabeledBoxes_LengthMismatch(t *testing.T) {
	_, err := LabeledBoxes([][4]float64{{0, 0, 1, 1}}, []int{1, 2})
	assert.Error(t, err)
}
