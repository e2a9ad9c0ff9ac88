package md2site

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2site/internal/assets"
)

// Service orchestrates the markdown-to-page pipeline: scan, build TOC,
// assemble. Conversion is synchronous and single-threaded; the context
// is only checked between stages.
type Service struct {
	cfg         serviceConfig
	highlighter codeHighlighter
	pdf         pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTOCTitle).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			stylesheet: assets.DefaultStyle(),
			script:     assets.Script(),
			tocTitle:   DefaultTOCTitle,
			timeout:    defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.highlight && s.highlighter == nil {
		s.highlighter = newChromaHighlighter()
	}

	return s
}

// Convert runs the pipeline and returns the page plus its companion
// assets. Each call scans with fresh state, so duplicate-heading
// counters never leak between documents.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, headings := newDocumentScanner(s.highlighter).Scan(input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tocHTML := buildTOC(headings, s.cfg.tocTitle)
	title := documentTitle(headings, input.Title)

	return &Result{
		HTML:     assemblePage(title, tocHTML, body),
		CSS:      s.cfg.stylesheet,
		JS:       s.cfg.script,
		Title:    title,
		Headings: headings,
	}, nil
}

// ConvertPDF renders the document to PDF bytes via headless Chrome,
// using the self-contained page variant with the stylesheet inlined.
// The browser is launched lazily on the first call.
func (s *Service) ConvertPDF(ctx context.Context, input Input) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, headings := newDocumentScanner(s.highlighter).Scan(input.Markdown)
	tocHTML := buildTOC(headings, s.cfg.tocTitle)
	title := documentTitle(headings, input.Title)
	page := assemblePortablePage(title, s.cfg.stylesheet, tocHTML, body)

	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}

	pdfBytes, err := s.pdf.ToPDF(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser, if one was
// launched).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}
