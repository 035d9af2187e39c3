package model

import (
	"strings"
)

// Cell represents an atomic table unit on the canonical grid. RowNums and
// ColumnNums hold the contiguous, ascending grid indices the cell covers.
type Cell struct {
	Text           string
	RowNums        []int
	ColumnNums     []int
	IsColumnHeader bool
}

// NewCell creates a cell anchored at (row, col) spanning rowSpan rows and
// colSpan columns. Spans below 1 are treated as 1.
func NewCell(text string, row, col, rowSpan, colSpan int) Cell {
	return Cell{
		Text:       text,
		RowNums:    spanRange(row, rowSpan),
		ColumnNums: spanRange(col, colSpan),
	}
}

func spanRange(start, n int) []int {
	if n < 1 {
		n = 1
	}
	nums := make([]int, n)
	for i := range nums {
		nums[i] = start + i
	}
	return nums
}

// RowSpan returns the number of grid rows the cell covers
func (c Cell) RowSpan() int {
	return len(c.RowNums)
}

// ColSpan returns the number of grid columns the cell covers
func (c Cell) ColSpan() int {
	return len(c.ColumnNums)
}

// IsSpanning reports whether the cell covers more than one grid slot
func (c Cell) IsSpanning() bool {
	return c.RowSpan() > 1 || c.ColSpan() > 1
}

// Area returns the number of grid slots the cell covers
func (c Cell) Area() int {
	return c.RowSpan() * c.ColSpan()
}

// GridIntersection returns the number of grid slots covered by both cells
func (c Cell) GridIntersection(other Cell) int {
	return overlap(c.RowNums, other.RowNums) * overlap(c.ColumnNums, other.ColumnNums)
}

// GridIoU returns the intersection over union of the two cells' grid
// rectangles, between 0 and 1.
func (c Cell) GridIoU(other Cell) float64 {
	inter := c.GridIntersection(other)
	if inter == 0 {
		return 0
	}
	return float64(inter) / float64(c.Area()+other.Area()-inter)
}

// overlap counts the shared indices of two contiguous ascending ranges.
func overlap(a, b []int) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	lo := max(a[0], b[0])
	hi := min(a[len(a)-1], b[len(b)-1])
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// covers reports whether the cell occupies the grid slot (row, col)
func (c Cell) covers(row, col int) bool {
	return overlap(c.RowNums, []int{row}) == 1 && overlap(c.ColumnNums, []int{col}) == 1
}

// Table represents one canonicalized table: its cells in document order
type Table struct {
	Cells []Cell
}

// RowCount returns the number of grid rows occupied by the table
func (t *Table) RowCount() int {
	n := 0
	for _, cell := range t.Cells {
		if k := len(cell.RowNums); k > 0 && cell.RowNums[k-1]+1 > n {
			n = cell.RowNums[k-1] + 1
		}
	}
	return n
}

// ColCount returns the number of grid columns occupied by the table
func (t *Table) ColCount() int {
	n := 0
	for _, cell := range t.Cells {
		if k := len(cell.ColumnNums); k > 0 && cell.ColumnNums[k-1]+1 > n {
			n = cell.ColumnNums[k-1] + 1
		}
	}
	return n
}

// CellAt returns the cell covering the grid slot (row, col), or nil when the
// slot is empty or out of bounds.
func (t *Table) CellAt(row, col int) *Cell {
	if row < 0 || col < 0 {
		return nil
	}
	for i := range t.Cells {
		if t.Cells[i].covers(row, col) {
			return &t.Cells[i]
		}
	}
	return nil
}

// HeaderCells returns the cells flagged as column headers
func (t *Table) HeaderCells() []Cell {
	var header []Cell
	for _, cell := range t.Cells {
		if cell.IsColumnHeader {
			header = append(header, cell)
		}
	}
	return header
}

// GetText returns the table text, one grid row per line with tab separated
// slots. A spanning cell's text appears at its anchor slot only.
func (t *Table) GetText() string {
	var sb strings.Builder
	rows, cols := t.RowCount(), t.ColCount()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if cell := t.CellAt(i, j); cell != nil && cell.RowNums[0] == i && cell.ColumnNums[0] == j {
				sb.WriteString(cell.Text)
			}
			if j < cols-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
