package teds

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/tablemetrics/htmldoc"
	"github.com/tsawler/tablemetrics/internal/treedist"
)

// Kind is the label of a comparison tree node.
type Kind int

const (
	KindTable Kind = iota
	KindRow
	KindCell
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindRow:
		return "row"
	case KindCell:
		return "cell"
	default:
		return "unknown"
	}
}

// Node is the payload of a comparison tree node. Content holds the cell's
// tokens, one rune per token, and is empty for tables, rows, and for cells in
// structure-only mode.
type Node struct {
	Kind    Kind
	RowSpan int
	ColSpan int
	Content string
}

// Tree builds the comparison tree of a table.
func (c *Comparer) Tree(table *htmldoc.Table) *treedist.Tree[Node] {
	tree := treedist.New(Node{Kind: KindTable})
	for _, row := range table.Rows {
		rowID := tree.Add(tree.Root(), Node{Kind: KindRow})
		for _, cell := range row.Cells {
			node := Node{
				Kind:    KindCell,
				RowSpan: cell.RowSpan,
				ColSpan: cell.ColSpan,
			}
			if !c.opts.StructureOnly {
				node.Content = c.symbols.encode(cell.Tokens(c.opts.Ignored))
			}
			tree.Add(rowID, node)
		}
	}
	return tree
}

// symbolTable maps content tokens to runes so that a token sequence can be
// compared as a string. Single-rune tokens map to themselves; markup tokens
// such as "<b>" get runes from Supplementary Private Use Area-A, assigned in
// order of first appearance.
type symbolTable struct {
	markup map[string]rune
	next   rune
}

const firstMarkupRune = 0xF0000

func newSymbolTable() *symbolTable {
	return &symbolTable{
		markup: make(map[string]rune),
		next:   firstMarkupRune,
	}
}

func (s *symbolTable) encode(tokens []string) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if r, size := utf8.DecodeRuneInString(tok); size == len(tok) && r != utf8.RuneError {
			sb.WriteRune(r)
			continue
		}
		r, ok := s.markup[tok]
		if !ok {
			r = s.next
			s.next++
			s.markup[tok] = r
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
