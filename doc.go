// Package md2site converts a Markdown document into a standalone HTML
// page with a generated table of contents, plus a fixed stylesheet and
// navigation script.
//
// # Quick Start
//
// Create a service, convert a document, and write the three outputs:
//
//	svc := md2site.New()
//	defer svc.Close()
//
//	res, err := svc.Convert(context.Background(), md2site.Input{
//		Markdown: "# Hello\n\nSome **bold** text.",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	// res.HTML is the page, res.CSS and res.JS are the companion
//	// assets (write them as styles.css and script.js next to it).
//
// # Markdown Dialect
//
// The converter is deliberately not a CommonMark implementation. It is
// a single-pass, line-oriented scanner recognizing ATX headings,
// horizontal rules, fenced code blocks, pipe tables, and paragraphs
// with bold/italic/inline-code/link substitutions. Nested lists,
// blockquotes, and inline HTML are out of scope.
//
// # Options
//
// Use functional options to customize behavior:
//
//	svc := md2site.New(
//		md2site.WithTOCTitle("Contents"),
//		md2site.WithHighlighting(),
//	)
//
// ConvertPDF renders the same document to PDF using headless Chrome;
// the browser is launched lazily on first use and released by Close.
package md2site
