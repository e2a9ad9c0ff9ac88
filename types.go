package md2site

import "time"

// Companion asset filenames, fixed relative to the HTML output.
const (
	StylesheetFilename = "styles.css"
	ScriptFilename     = "script.js"
)

// DefaultTOCTitle is the heading shown above the table of contents.
const DefaultTOCTitle = "Table of Contents"

// FallbackTitle is used when the document has no headings.
const FallbackTitle = "Document"

// defaultTimeout bounds PDF generation when no timeout is specified.
const defaultTimeout = 30 * time.Second

// Heading records one heading in document order.
type Heading struct {
	Level int    // 1..6
	Text  string // heading text with ** markers stripped
	ID    string // unique, URL-safe anchor id
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content
	Title    string // Page title override (optional, "" = first heading)
}

// Result holds the generated page and its companion assets. CSS and JS
// are fixed for a given service configuration and do not depend on the
// input document.
type Result struct {
	HTML     string
	CSS      string
	JS       string
	Title    string
	Headings []Heading
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	stylesheet string
	script     string
	tocTitle   string
	highlight  bool
	timeout    time.Duration
}

// WithStylesheet replaces the default embedded stylesheet. The content
// is emitted verbatim as styles.css.
func WithStylesheet(css string) Option {
	return func(s *Service) {
		s.cfg.stylesheet = css
	}
}

// WithTOCTitle sets the heading above the table of contents.
// An empty string keeps the default.
func WithTOCTitle(title string) Option {
	return func(s *Service) {
		if title != "" {
			s.cfg.tocTitle = title
		}
	}
}

// WithHighlighting enables syntax highlighting of fenced code blocks.
// Without it, code block content passes through verbatim.
func WithHighlighting() Option {
	return func(s *Service) {
		s.cfg.highlight = true
	}
}

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2site: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
