package htmldoc

import "github.com/tsawler/tablemetrics/model"

// occupancy records which grid columns are already claimed in each row,
// either by a cell starting there or by a rowspan from an earlier row. One
// occupancy lives for the canonicalization of a single table.
type occupancy struct {
	rows    map[int]map[int]struct{}
	numRows int // claims past the last row are never consulted
}

func newOccupancy(numRows int) *occupancy {
	return &occupancy{
		rows:    make(map[int]map[int]struct{}),
		numRows: numRows,
	}
}

// claimed reports whether (row, col) is taken.
func (o *occupancy) claimed(row, col int) bool {
	_, ok := o.rows[row][col]
	return ok
}

// claim marks the rectangle anchored at (row, col) as taken.
func (o *occupancy) claim(row, col, rowSpan, colSpan int) {
	for r := row; r < row+rowSpan && r < o.numRows; r++ {
		cols := o.rows[r]
		if cols == nil {
			cols = make(map[int]struct{}, colSpan)
			o.rows[r] = cols
		}
		for c := col; c < col+colSpan; c++ {
			cols[c] = struct{}{}
		}
	}
}

// nextFree returns the lowest unclaimed column at or after col.
func (o *occupancy) nextFree(row, col int) int {
	for o.claimed(row, col) {
		col++
	}
	return col
}

// done drops the bookkeeping for a finished row.
func (o *occupancy) done(row int) {
	delete(o.rows, row)
}

// Grid canonicalizes the table: each cell is placed at the lowest unclaimed
// column of its row, honoring rowspans from earlier rows, and covers
// rowspan x colspan grid slots from there.
func (t *Table) Grid(ignored TagSet) model.Table {
	occ := newOccupancy(len(t.Rows))
	cells := make([]model.Cell, 0, t.CellCount())
	for r, row := range t.Rows {
		cells = scanRow(occ, r, row, ignored, cells)
		occ.done(r)
	}
	return model.Table{Cells: cells}
}

// scanRow places the cells of row r and appends them to out.
func scanRow(occ *occupancy, r int, row Row, ignored TagSet, out []model.Cell) []model.Cell {
	col := 0
	for _, tc := range row.Cells {
		col = occ.nextFree(r, col)
		occ.claim(r, col, tc.RowSpan, tc.ColSpan)

		cell := model.NewCell(tc.Text(ignored), r, col, tc.RowSpan, tc.ColSpan)
		cell.IsColumnHeader = tc.IsHeader
		out = append(out, cell)

		col += tc.ColSpan
	}
	return out
}
