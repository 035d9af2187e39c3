package model

import "fmt"

// BoxLabel is the category of a labeled bounding box in the location metric.
// Boxes only ever match boxes of the same label.
type BoxLabel int

const (
	LabelTable BoxLabel = iota
	LabelColumn
	LabelRow
	LabelCell
	LabelSpanningCell
)

// String returns a string representation of the label
func (l BoxLabel) String() string {
	switch l {
	case LabelTable:
		return "table"
	case LabelColumn:
		return "column"
	case LabelRow:
		return "row"
	case LabelCell:
		return "cell"
	case LabelSpanningCell:
		return "spanning-cell"
	default:
		return fmt.Sprintf("label(%d)", int(l))
	}
}

// LabeledBox is a bounding box tagged with its structure category
type LabeledBox struct {
	BBox  BBox
	Label BoxLabel
}
