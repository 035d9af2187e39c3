// Package htmldoc provides HTML table parsing.
package htmldoc

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/tablemetrics/model"
)

// Document is a parsed HTML fragment and the tables found in it.
type Document struct {
	doc    *html.Node
	tables []*Table
}

// Parse parses an HTML fragment. The HTML parser recovers from malformed
// markup, so Parse never fails; input without tables yields a Document with
// no tables.
func Parse(markup string) *Document {
	d, err := OpenReader(strings.NewReader(markup))
	if err != nil {
		// strings.Reader never returns a read error
		return &Document{}
	}
	return d
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	d := &Document{doc: doc}
	d.collectTables(doc)
	return d, nil
}

// Tables returns every <table> element in document order, nested tables
// included.
func (d *Document) Tables() []*Table {
	return d.tables
}

// Grids canonicalizes every table into grid cells. Each table is laid out
// independently, starting at row 0 and column 0.
func (d *Document) Grids(ignored TagSet) []model.Table {
	grids := make([]model.Table, 0, len(d.tables))
	for _, t := range d.tables {
		grids = append(grids, t.Grid(ignored))
	}
	return grids
}

// Cells returns the grid cells of all tables concatenated in document order.
// It returns nil when the document has no table cells.
func (d *Document) Cells(ignored TagSet) []model.Cell {
	var cells []model.Cell
	for _, t := range d.tables {
		cells = append(cells, t.Grid(ignored).Cells...)
	}
	return cells
}

// collectTables finds table elements in pre-order.
func (d *Document) collectTables(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "table" {
		d.tables = append(d.tables, parseTable(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.collectTables(c)
	}
}

// parseTable extracts the rows of a table element.
func parseTable(tableNode *html.Node) *Table {
	table := &Table{node: tableNode}
	collectRows(tableNode, false, table)
	return table
}

// collectRows walks thead, tbody, tfoot and any wrapper elements the parser
// kept, stopping at nested tables.
func collectRows(n *html.Node, inHead bool, table *Table) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "table":
			// Nested tables are collected separately
		case "thead":
			collectRows(c, true, table)
		case "tr":
			table.Rows = append(table.Rows, parseTableRow(c, inHead))
		default:
			collectRows(c, inHead, table)
		}
	}
}

// parseTableRow parses a single table row.
func parseTableRow(tr *html.Node, isHeader bool) Row {
	row := Row{Cells: make([]TableCell, 0)}

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row.Cells = append(row.Cells, TableCell{
				node:     c,
				IsHeader: isHeader || c.Data == "th",
				RowSpan:  spanAttr(c, "rowspan", maxRowSpan),
				ColSpan:  spanAttr(c, "colspan", maxColSpan),
			})
		}
	}

	return row
}

// spanAttr parses a span attribute. Missing, unparsable and non-positive
// values default to 1.
func spanAttr(n *html.Node, key string, limit int) int {
	for _, attr := range n.Attr {
		if attr.Key != key {
			continue
		}
		span := 0
		fmt.Sscanf(attr.Val, "%d", &span)
		switch {
		case span < 1:
			return 1
		case span > limit:
			return limit
		default:
			return span
		}
	}
	return 1
}

// shouldSkipElement returns true if the element holds no table text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// isVoidElement returns true for elements that never have an end tag.
func isVoidElement(tagName string) bool {
	switch tagName {
	case "area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr":
		return true
	}
	return false
}

// Text returns the cell's text content. Text of an ignored element is spliced
// into its surroundings; any other element is surrounded by a word boundary.
// The result is NFC-normalized with whitespace runs collapsed to one space.
func (c TableCell) Text(ignored TagSet) string {
	if c.node == nil {
		return ""
	}
	var sb strings.Builder
	writeTextContent(c.node, ignored, &sb)
	return normalizeText(sb.String())
}

func writeTextContent(n *html.Node, ignored TagSet, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			if shouldSkipElement(c.Data) {
				continue
			}
			if ignored.Has(c.Data) {
				writeTextContent(c, ignored, sb)
				continue
			}
			sb.WriteByte(' ')
			writeTextContent(c, ignored, sb)
			sb.WriteByte(' ')
		}
	}
}

// normalizeText applies NFC and collapses whitespace.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// Tokens returns the cell content as a token sequence: one token per
// character of text and one per start or end tag of a non-ignored element
// ("<b>", "</b>"). Whitespace collapses to single " " tokens and is trimmed
// at both ends.
func (c TableCell) Tokens(ignored TagSet) []string {
	if c.node == nil {
		return nil
	}
	tokens := make([]string, 0)
	tokens = appendTokens(c.node, ignored, tokens)
	for len(tokens) > 0 && tokens[len(tokens)-1] == " " {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

func appendTokens(n *html.Node, ignored TagSet, tokens []string) []string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			for _, r := range norm.NFC.String(c.Data) {
				if unicode.IsSpace(r) {
					if len(tokens) == 0 || tokens[len(tokens)-1] == " " {
						continue
					}
					r = ' '
				}
				tokens = append(tokens, string(r))
			}
		case html.ElementNode:
			if shouldSkipElement(c.Data) {
				continue
			}
			if ignored.Has(c.Data) {
				tokens = appendTokens(c, ignored, tokens)
				continue
			}
			tokens = append(tokens, "<"+c.Data+">")
			tokens = appendTokens(c, ignored, tokens)
			if !isVoidElement(c.Data) {
				tokens = append(tokens, "</"+c.Data+">")
			}
		}
	}
	return tokens
}
