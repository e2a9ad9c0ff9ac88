package md2site

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle is the chroma style used for fenced code blocks.
const highlightStyle = "github"

// codeHighlighter abstracts syntax highlighting of fenced code blocks.
type codeHighlighter interface {
	Highlight(w io.Writer, source, lang string) error
}

// chromaHighlighter renders code through chroma with inline styles, so
// the fixed companion stylesheet stays untouched whether or not
// highlighting is enabled.
type chromaHighlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// Compile-time interface check.
var _ codeHighlighter = (*chromaHighlighter)(nil)

func newChromaHighlighter() *chromaHighlighter {
	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	return &chromaHighlighter{
		formatter: chromahtml.New(),
		style:     style,
	}
}

// Highlight writes the highlighted HTML for source to w. The fence
// label selects the lexer; unknown labels fall back to the plain-text
// lexer rather than failing.
func (h *chromaHighlighter) Highlight(w io.Writer, source, lang string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	if err := h.formatter.Format(w, h.style, it); err != nil {
		return fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return nil
}
