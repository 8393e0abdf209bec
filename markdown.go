package sqltutor

import (
	"regexp"
	"strings"
)

// Patterns for the conversion passes, applied in declaration order.
var (
	// A table block: a pipe-delimited header row, a dash/pipe separator
	// row, then zero or more pipe-delimited body rows.
	tablePattern = regexp.MustCompile(`(?m)^\|[^\n]+\|[ \t]*\n\|(?:[ \t]*:?-+:?[ \t]*\|)+[ \t]*(?:\n|$)(?:\|[^\n]*(?:\n|$))*`)

	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
	codePattern   = regexp.MustCompile("`(.+?)`")
)

// MarkdownToHTML converts a restricted markdown subset to HTML.
// Useful for rendering tutor answers as rich text.
//
// Supported syntax: tables, **bold**, *italic*, `code`, and line
// breaks. The conversion is a sequence of string-rewrite passes over
// the whole text: tables first, then bold, italic, code, and finally
// newlines to <br>. Each pass replaces all non-overlapping shortest
// matches left to right. Unterminated or malformed markers simply do
// not match and pass through unchanged.
//
// Marker characters left behind by an earlier pass are still visible
// to later passes, so single asterisks inside an already-converted
// bold span can be picked up as italics. That is inherent to the
// sequential rewrite and is kept as-is.
//
// The input is not sanitized: <, > and & pass through untouched, so
// the output must only be shown in surfaces that trust the answer
// source.
func MarkdownToHTML(md string) string {
	out := tablePattern.ReplaceAllStringFunc(md, renderTable)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicPattern.ReplaceAllString(out, "<em>$1</em>")
	out = codePattern.ReplaceAllString(out, "<code>$1</code>")
	return strings.ReplaceAll(out, "\n", "<br>")
}

// renderTable converts one matched table block into table markup.
// The markup contains no newlines so the later line-break pass leaves
// it alone.
func renderTable(block string) string {
	lines := make([]string, 0, 8)
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, cell := range splitRow(lines[0]) {
		b.WriteString("<th>")
		b.WriteString(cell)
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	// lines[1] is the separator row; it carries no data.
	for _, row := range lines[2:] {
		b.WriteString("<tr>")
		for _, cell := range splitRow(row) {
			b.WriteString("<td>")
			b.WriteString(cell)
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// splitRow splits a pipe-delimited row into trimmed cells, dropping
// the empty fields produced by leading and trailing delimiters. Rows
// are not padded or truncated to any expected column count.
func splitRow(row string) []string {
	fields := strings.Split(row, "|")
	cells := make([]string, 0, len(fields))
	for _, f := range fields {
		c := strings.TrimSpace(f)
		if c == "" {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}
