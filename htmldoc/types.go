// Package htmldoc provides HTML table parsing.
package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// HTML limits on span attributes; larger values are clamped.
const (
	maxColSpan = 1000
	maxRowSpan = 65534
)

// TagSet is a set of lower-case element names.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from element names. Names are case-insensitive.
func NewTagSet(names ...string) TagSet {
	set := make(TagSet, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}

// Has reports whether name is in the set. A nil set is empty.
func (s TagSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Table is a <table> element with its rows resolved. Rows of nested tables
// belong to the nested Table, not to this one.
type Table struct {
	node *html.Node
	Rows []Row
}

// Row is a <tr> element and its <td>/<th> children in document order.
type Row struct {
	Cells []TableCell
}

// TableCell is a <td> or <th> element with its parsed span attributes.
type TableCell struct {
	node     *html.Node
	IsHeader bool // <th>, or inside a <thead> of the same table
	RowSpan  int
	ColSpan  int
}

// CellCount returns the total number of cells in the table.
func (t *Table) CellCount() int {
	n := 0
	for _, row := range t.Rows {
		n += len(row.Cells)
	}
	return n
}
