package teds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/tablemetrics/htmldoc"
)

func firstTable(t *testing.T, markup string) *htmldoc.Table {
	t.Helper()
	tables := htmldoc.Parse(markup).Tables()
	require.NotEmpty(t, tables, "markup has no table: %s", markup)
	return tables[0]
}

func score(t *testing.T, truth, pred string, opts Options) float64 {
	t.Helper()
	return Similarity(firstTable(t, truth), firstTable(t, pred), opts)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		truth string
		pred  string
		opts  Options
		want  float64
	}{
		{
			name:  "identical",
			truth: `<table><tr><td>A</td><td>B</td></tr><tr><td>C</td><td>D</td></tr></table>`,
			pred:  `<table><tr><td>A</td><td>B</td></tr><tr><td>C</td><td>D</td></tr></table>`,
			want:  1,
		},
		{
			name:  "single cell text differs",
			truth: `<table><tr><td>A</td></tr></table>`,
			pred:  `<table><tr><td>B</td></tr></table>`,
			want:  0.5,
		},
		{
			name:  "structure only ignores text",
			truth: `<table><tr><td>A</td><td>B</td></tr></table>`,
			pred:  `<table><tr><td>C</td><td>D</td></tr></table>`,
			opts:  Options{StructureOnly: true},
			want:  1,
		},
		{
			name:  "ignored markup",
			truth: `<table><tr><td>A</td><td><i>B</i></td></tr></table>`,
			pred:  `<table><tr><td>A</td><td><b>B</b></td></tr></table>`,
			opts:  Options{Ignored: htmldoc.NewTagSet("i", "b")},
			want:  1,
		},
		{
			// Content <i>B</i> vs <b>B</b>: two of three tokens differ.
			name:  "markup counts per tag",
			truth: `<table><tr><td>A</td><td><i>B</i></td></tr></table>`,
			pred:  `<table><tr><td>A</td><td><b>B</b></td></tr></table>`,
			want:  1 - (2.0/3.0)/3.0,
		},
		{
			name:  "near match earns partial credit",
			truth: `<table><tr><td>abcd</td></tr></table>`,
			pred:  `<table><tr><td>abce</td></tr></table>`,
			want:  1 - 0.25/2,
		},
		{
			name:  "span mismatch",
			truth: `<table><tr><td colspan="2">A</td></tr></table>`,
			pred:  `<table><tr><td>A</td><td></td></tr></table>`,
			want:  1.0 / 3.0,
		},
		{
			name:  "missing row",
			truth: `<table><tr><td>A</td></tr><tr><td>B</td></tr></table>`,
			pred:  `<table><tr><td>A</td></tr></table>`,
			want:  0.5,
		},
		{
			name:  "empty tables",
			truth: `<table></table>`,
			pred:  `<table></table>`,
			want:  1,
		},
		{
			name:  "empty prediction table",
			truth: `<table><tr><td>A</td></tr></table>`,
			pred:  `<table></table>`,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := score(t, tt.truth, tt.pred, tt.opts)
			assert.InDelta(t, tt.want, got, 1e-9)

			reverse := score(t, tt.pred, tt.truth, tt.opts)
			assert.InDelta(t, got, reverse, 1e-9, "similarity should be symmetric")
		})
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	truth := `<table><tr><td>A</td></tr></table>`
	pred := `<table>
		<tr><td>x</td><td>y</td><td>z</td></tr>
		<tr><td>x</td><td>y</td><td>z</td></tr>
	</table>`

	got := score(t, truth, pred, Options{})
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 1.0)
}

func TestComparer_Tree(t *testing.T) {
	table := firstTable(t, `<table>
		<tr><td rowspan="2">A</td><td><b>B</b></td></tr>
		<tr><td>C</td></tr>
	</table>`)

	c := NewComparer(Options{})
	tree := c.Tree(table)

	require.Equal(t, 6, tree.Len())
	root := tree.Root()
	assert.Equal(t, KindTable, tree.Payload(root).Kind)

	rows := tree.Children(root)
	require.Len(t, rows, 2)
	assert.Equal(t, KindRow, tree.Payload(rows[0]).Kind)

	cells := tree.Children(rows[0])
	require.Len(t, cells, 2)
	first := tree.Payload(cells[0])
	assert.Equal(t, KindCell, first.Kind)
	assert.Equal(t, 2, first.RowSpan)
	assert.Equal(t, "A", first.Content)
	assert.Len(t, []rune(tree.Payload(cells[1]).Content), 3)
}

func TestComparer_TreeStructureOnly(t *testing.T) {
	table := firstTable(t, `<table><tr><td>A</td></tr></table>`)

	tree := NewComparer(Options{StructureOnly: true}).Tree(table)
	cells := tree.Children(tree.Children(tree.Root())[0])
	assert.Empty(t, tree.Payload(cells[0]).Content)
}

func TestSymbolTable(t *testing.T) {
	s := newSymbolTable()

	plain := s.encode([]string{"a", "\u00e9", " "})
	assert.Equal(t, "a\u00e9 ", plain)

	first := []rune(s.encode([]string{"<b>", "x", "</b>"}))
	second := []rune(s.encode([]string{"</b>", "<i>", "<b>"}))
	require.Len(t, first, 3)
	require.Len(t, second, 3)

	assert.Equal(t, rune(firstMarkupRune), first[0])
	assert.Equal(t, first[2], second[0], "same token must map to the same rune")
	assert.Equal(t, first[0], second[2])
	assert.NotEqual(t, first[0], second[1])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "table", KindTable.String())
	assert.Equal(t, "row", KindRow.String())
	assert.Equal(t, "cell", KindCell.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
