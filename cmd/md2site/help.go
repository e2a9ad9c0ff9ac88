package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2site/internal/assets"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site -m <input.md> -o <output.html> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown document into a standalone HTML page with a")
	fmt.Fprintln(w, "generated table of contents. Writes the page plus styles.css and")
	fmt.Fprintln(w, "script.js into the output directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -m, --markdown <path>     Input Markdown file (required)")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (required; parent dirs created)")
	fmt.Fprintln(w, "  -c, --config <path>       YAML config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Appearance:")
	fmt.Fprintf(w, "      --style <s>           Theme name (%s) or a CSS file path\n", strings.Join(assets.StyleNames(), ", "))
	fmt.Fprintln(w, "      --toc-title <s>       Table of contents heading")
	fmt.Fprintln(w, "      --highlight           Syntax-highlight fenced code blocks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Also render a PDF next to the HTML output")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show runtime details")
	fmt.Fprintln(w, "  -h, --help                Show this help message")
	fmt.Fprintln(w, "      --version             Show version information")
}
