package md2site

import (
	"fmt"
	"strings"
)

// buildTOC renders the ordered heading sequence as a nested link list.
// Nesting tracks level transitions only: a jump from level 1 to 4
// opens three lists at once, and a document starting below level 1
// opens extra levels before any shallower heading exists. No
// well-formedness validation is attempted. An empty heading sequence
// produces no TOC at all, not even an empty container.
func buildTOC(headings []Heading, title string) string {
	if len(headings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"toc\">\n<h2>" + title + "</h2>\n<ul>\n")

	depth := 1
	for _, h := range headings {
		for depth < h.Level {
			b.WriteString("<ul>\n")
			depth++
		}
		for depth > h.Level {
			b.WriteString("</ul>\n")
			depth--
		}
		fmt.Fprintf(&b, "<li><a href=\"#%s\" data-id=\"%s\">%s</a></li>\n", h.ID, h.ID, h.Text)
	}

	for depth > 1 {
		b.WriteString("</ul>\n")
		depth--
	}

	b.WriteString("</ul>\n</div>\n")
	return b.String()
}
