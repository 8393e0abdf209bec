package sqltutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToHTMLEmptyInput(t *testing.T) {
	assert.Equal(t, "", MarkdownToHTML(""))
}

func TestMarkdownToHTMLPassthrough(t *testing.T) {
	assert.Equal(t, "just plain text", MarkdownToHTML("just plain text"))
}

func TestMarkdownToHTMLLineBreaks(t *testing.T) {
	assert.Equal(t, "line1<br>line2", MarkdownToHTML("line1\nline2"))
}

func TestMarkdownToHTMLBold(t *testing.T) {
	assert.Equal(t, "<strong>x</strong>", MarkdownToHTML("**x**"))
}

func TestMarkdownToHTMLBoldShortestMatch(t *testing.T) {
	// Two separate spans, not one spanning "a** and **b".
	assert.Equal(t,
		"<strong>a</strong> and <strong>b</strong>",
		MarkdownToHTML("**a** and **b**"))
}

func TestMarkdownToHTMLBoldSpansInnerAsterisks(t *testing.T) {
	// The bold span covers all of a*b*c. The leftover single
	// asterisks are then picked up by the italic pass, which is the
	// documented behavior of the sequential rewrite.
	assert.Equal(t,
		"<strong>a<em>b</em>c</strong>",
		MarkdownToHTML("**a*b*c**"))
}

func TestMarkdownToHTMLItalic(t *testing.T) {
	assert.Equal(t, "<em>x</em>", MarkdownToHTML("*x*"))
	assert.Equal(t,
		"<em>a</em> and <em>b</em>",
		MarkdownToHTML("*a* and *b*"))
}

func TestMarkdownToHTMLInlineCode(t *testing.T) {
	assert.Equal(t,
		"Use <code>SELECT 1</code> to test.",
		MarkdownToHTML("Use `SELECT 1` to test."))
}

func TestMarkdownToHTMLUnterminatedMarkers(t *testing.T) {
	assert.Equal(t, "**a", MarkdownToHTML("**a"))
	assert.Equal(t, "*a", MarkdownToHTML("*a"))
	assert.Equal(t, "`a", MarkdownToHTML("`a"))
}

func TestMarkdownToHTMLTable(t *testing.T) {
	input := "|Name|Age|\n|---|---|\n|Alice|30|\n|Bob|25|"
	want := "<table><thead><tr><th>Name</th><th>Age</th></tr></thead>" +
		"<tbody><tr><td>Alice</td><td>30</td></tr><tr><td>Bob</td><td>25</td></tr></tbody></table>"
	assert.Equal(t, want, MarkdownToHTML(input))
}

func TestMarkdownToHTMLTableWithPaddedCells(t *testing.T) {
	input := "| Name | Age |\n| --- | --- |\n| Alice | 30 |\n"
	want := "<table><thead><tr><th>Name</th><th>Age</th></tr></thead>" +
		"<tbody><tr><td>Alice</td><td>30</td></tr></tbody></table>"
	assert.Equal(t, want, MarkdownToHTML(input))
}

func TestMarkdownToHTMLTableWithoutBodyRows(t *testing.T) {
	input := "|A|B|\n|---|---|\n"
	want := "<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody></tbody></table>"
	assert.Equal(t, want, MarkdownToHTML(input))
}

func TestMarkdownToHTMLTableUnequalCellCounts(t *testing.T) {
	// A short row renders only the cells it has, without padding.
	input := "|A|B|C|\n|---|---|---|\n|1|2|\n"
	want := "<table><thead><tr><th>A</th><th>B</th><th>C</th></tr></thead>" +
		"<tbody><tr><td>1</td><td>2</td></tr></tbody></table>"
	assert.Equal(t, want, MarkdownToHTML(input))
}

func TestMarkdownToHTMLTableSurroundedByText(t *testing.T) {
	input := "before\n|A|B|\n|---|---|\n|1|2|\nafter"
	want := "before<br>" +
		"<table><thead><tr><th>A</th><th>B</th></tr></thead>" +
		"<tbody><tr><td>1</td><td>2</td></tr></tbody></table>" +
		"after"
	assert.Equal(t, want, MarkdownToHTML(input))
}

func TestMarkdownToHTMLInlineMarkersInsideTableCells(t *testing.T) {
	// The inline passes run after the table pass, so markers inside
	// cells are still converted.
	input := "|**X**|\n|---|\n"
	want := "<table><thead><tr><th><strong>X</strong></th></tr></thead><tbody></tbody></table>"
	assert.Equal(t, want, MarkdownToHTML(input))
}

func TestMarkdownToHTMLRowsWithoutSeparatorAreNotTables(t *testing.T) {
	assert.Equal(t, "|a|b|<br>|c|d|", MarkdownToHTML("|a|b|\n|c|d|"))
}

func TestMarkdownToHTMLDoesNotEscapeHTML(t *testing.T) {
	// Raw HTML passes through untouched.
	input := "<script>alert(1)</script> & <b>x</b>"
	assert.Equal(t, input, MarkdownToHTML(input))
}
