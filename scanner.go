package md2site

import (
	"fmt"
	"regexp"
	"strings"
)

// Line-level patterns. Heading, fence, divider, and rule lines must
// match the whole line.
var (
	headingRe        = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	fenceRe          = regexp.MustCompile("^```(.*)$")
	tableDividerRe   = regexp.MustCompile(`^\s*\|?[-:]+\|[-:\s|]+\|?\s*$`)
	horizontalRuleRe = regexp.MustCompile(`^\s*[-*_]{3,}\s*$`)
)

// documentScanner converts Markdown to an HTML body fragment in a
// single line-oriented pass, collecting headings along the way. All
// scan state (block modes, buffers, the id registry) lives here; a
// scanner converts exactly one document.
type documentScanner struct {
	ids       *idRegistry
	highlight codeHighlighter // nil = emit fenced code verbatim
}

func newDocumentScanner(h codeHighlighter) *documentScanner {
	return &documentScanner{ids: newIDRegistry(), highlight: h}
}

// Scan processes the document line by line and returns the HTML body
// and the ordered heading records. Classification per line, in
// precedence order: blank (skipped), horizontal rule, fence toggle,
// code content, table divider, table row, table flush, heading,
// paragraph. There is no lookahead; block modes carry across lines.
func (s *documentScanner) Scan(markdown string) (string, []Heading) {
	var (
		out       strings.Builder
		headings  []Heading
		inCode    bool
		inTable   bool
		codeLang  string
		codeLines []string
		tableRows [][]string
	)

	for _, line := range strings.Split(markdown, "\n") {
		if line == "" {
			continue
		}

		if horizontalRuleRe.MatchString(line) {
			out.WriteString("<hr>\n")
			continue
		}

		if m := fenceRe.FindStringSubmatch(line); m != nil {
			if !inCode {
				inCode = true
				codeLang = m[1]
				if s.highlight != nil {
					codeLines = codeLines[:0]
				} else {
					out.WriteString(openCodeTag(codeLang))
				}
			} else {
				inCode = false
				if s.highlight != nil {
					s.emitCodeBlock(&out, codeLang, codeLines)
				} else {
					out.WriteString("</code></pre>\n")
				}
			}
			continue
		}

		if inCode {
			if s.highlight != nil {
				codeLines = append(codeLines, line)
			} else {
				out.WriteString(line)
				out.WriteByte('\n')
			}
			continue
		}

		if tableDividerRe.MatchString(line) {
			if !inTable && len(tableRows) > 0 {
				inTable = true
				continue
			}
			// A divider with no buffered rows does not start a table;
			// the line falls through to heading/paragraph handling.
		} else if strings.ContainsRune(line, '|') {
			tableRows = append(tableRows, parseTableRow(line))
			continue
		} else if inTable {
			writeTable(&out, tableRows)
			tableRows = nil
			inTable = false
			// The triggering line is not consumed by the flush.
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			level := len(m[1])
			text := strings.ReplaceAll(m[2], "**", "")
			id := s.ids.assign(text)
			headings = append(headings, Heading{Level: level, Text: text, ID: id})
			fmt.Fprintf(&out, "<h%d id=\"%s\">%s</h%d>\n", level, id, text, level)
			continue
		}

		out.WriteString("<p>")
		out.WriteString(applyInline(line, paragraphRules))
		out.WriteString("</p>\n")
	}

	// A table still buffered at end of input is flushed as-is.
	if inTable && len(tableRows) > 0 {
		writeTable(&out, tableRows)
	}

	// An unclosed fence stays unclosed; in highlight mode the buffered
	// lines are emitted verbatim since there is no complete block to
	// tokenize.
	if inCode && s.highlight != nil {
		out.WriteString(openCodeTag(codeLang))
		for _, l := range codeLines {
			out.WriteString(l)
			out.WriteByte('\n')
		}
	}

	return out.String(), headings
}

// emitCodeBlock renders a completed fenced block through the
// highlighter, falling back to verbatim output if tokenizing fails.
func (s *documentScanner) emitCodeBlock(out *strings.Builder, lang string, lines []string) {
	source := strings.Join(lines, "\n") + "\n"
	var buf strings.Builder
	if err := s.highlight.Highlight(&buf, source, lang); err != nil {
		out.WriteString(openCodeTag(lang))
		out.WriteString(source)
		out.WriteString("</code></pre>\n")
		return
	}
	out.WriteString(buf.String())
	out.WriteByte('\n')
}

// openCodeTag returns the opening tag for a fenced block. The language
// label is passed through verbatim.
func openCodeTag(lang string) string {
	if lang == "" {
		return "<pre><code>\n"
	}
	return "<pre><code class=\"language-" + lang + "\">\n"
}

// parseTableRow strips one leading and one trailing pipe, splits on
// pipes, trims each cell, and inline-formats it in table-cell order.
func parseTableRow(line string) []string {
	processed := strings.TrimPrefix(line, "|")
	processed = strings.TrimSuffix(processed, "|")
	cells := splitTableCells(processed)
	for i, cell := range cells {
		cell = strings.Trim(cell, " \t")
		cells[i] = applyInline(cell, tableCellRules)
	}
	return cells
}

// splitTableCells splits on pipes with no field after a trailing
// delimiter: "a|b|" yields ["a","b"], "" yields no cells.
func splitTableCells(s string) []string {
	if s == "" {
		return nil
	}
	cells := strings.Split(s, "|")
	if strings.HasSuffix(s, "|") {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// writeTable emits buffered rows: the first non-empty row as header
// cells, the rest as body cells. Empty rows are skipped.
func writeTable(out *strings.Builder, rows [][]string) {
	out.WriteString("<table>\n")
	first := true
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		tag := "td"
		if first {
			tag = "th"
		}
		out.WriteString("<tr>")
		for _, cell := range row {
			out.WriteString("<" + tag + ">" + cell + "</" + tag + ">")
		}
		out.WriteString("</tr>\n")
		first = false
	}
	out.WriteString("</table>\n")
}
