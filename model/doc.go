// Package model provides the data structures shared by the table metrics.
//
// # Cells and Tables
//
// A [Cell] is an atomic table unit on the canonical grid. It records the grid
// rows and columns it covers, its text, and whether it belongs to the column
// header:
//
//	cell := model.NewCell("Total", 2, 0, 1, 3) // row 2, columns 0-2
//	cell.ColumnNums // [0 1 2]
//
// A [Table] is the ordered list of cells of one HTML table. Row and column
// counts are derived from the cells:
//
//	t := model.Table{Cells: cells}
//	t.RowCount(), t.ColCount()
//	t.CellAt(1, 2)
//
// [Cell.GridIoU] gives the intersection over union of two cells' grid
// rectangles, used by the topology metric.
//
// # Geometry
//
// [BBox] is a rectangle with intersection and IoU calculations. Boxes produced
// by structure recognition models come as [x1, y1, x2, y2] corners:
//
//	box := model.NewBBoxFromCorners(0, 0, 100, 20)
//	box.IoU(other)
//
// [LabeledBox] pairs a box with a [BoxLabel] (row, column, cell, spanning
// cell) for the location metric.
package model
