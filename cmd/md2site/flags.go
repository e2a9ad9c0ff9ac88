package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag validation.
var (
	ErrNoInput  = errors.New("no input file specified (use -m/--markdown)")
	ErrNoOutput = errors.New("no output path specified (use -o/--output)")
)

// cliFlags holds all command line flags.
type cliFlags struct {
	markdown string
	output   string
	config   string
	style    string
	tocTitle string
	timeout  string

	highlight bool
	pdf       bool
	quiet     bool
	verbose   bool
	help      bool
	version   bool
}

// parseFlags parses the argument list. Validation of required flags is
// separate so -h/--help and --version work on their own.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	fs.StringVarP(&f.markdown, "markdown", "m", "", "input Markdown file")
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVar(&f.style, "style", "", "stylesheet: embedded theme name or CSS file path")
	fs.StringVar(&f.tocTitle, "toc-title", "", "table of contents heading")
	fs.BoolVar(&f.highlight, "highlight", false, "syntax-highlight fenced code blocks")
	fs.BoolVar(&f.pdf, "pdf", false, "also render a PDF next to the HTML output")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show runtime details")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help message")
	fs.BoolVar(&f.version, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// validateFlags checks required flags after help/version handling.
func validateFlags(f *cliFlags) error {
	if f.markdown == "" {
		return ErrNoInput
	}
	if f.output == "" {
		return ErrNoOutput
	}
	return nil
}
