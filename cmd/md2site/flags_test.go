package main

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantMarkdown  string
		wantOutput    string
		wantConfig    string
		wantStyle     string
		wantTOCTitle  string
		wantTimeout   string
		wantHighlight bool
		wantPDF       bool
		wantQuiet     bool
		wantVerbose   bool
		wantHelp      bool
		wantVersion   bool
		wantErr       bool
	}{
		{
			name: "no args",
			args: []string{},
		},
		{
			name:         "short input and output",
			args:         []string{"-m", "doc.md", "-o", "doc.html"},
			wantMarkdown: "doc.md",
			wantOutput:   "doc.html",
		},
		{
			name:         "long input and output",
			args:         []string{"--markdown", "doc.md", "--output", "out/doc.html"},
			wantMarkdown: "doc.md",
			wantOutput:   "out/doc.html",
		},
		{
			name:       "config flag",
			args:       []string{"-c", "site.yaml"},
			wantConfig: "site.yaml",
		},
		{
			name:      "style flag",
			args:      []string{"--style", "dark"},
			wantStyle: "dark",
		},
		{
			name:         "toc title flag",
			args:         []string{"--toc-title", "Contents"},
			wantTOCTitle: "Contents",
		},
		{
			name:          "highlight flag",
			args:          []string{"--highlight"},
			wantHighlight: true,
		},
		{
			name:    "pdf flag",
			args:    []string{"--pdf"},
			wantPDF: true,
		},
		{
			name:        "timeout flag",
			args:        []string{"-t", "45s"},
			wantTimeout: "45s",
		},
		{
			name:      "quiet flag",
			args:      []string{"-q"},
			wantQuiet: true,
		},
		{
			name:        "verbose flag",
			args:        []string{"-v"},
			wantVerbose: true,
		},
		{
			name:     "help flag",
			args:     []string{"-h"},
			wantHelp: true,
		},
		{
			name:        "version flag",
			args:        []string{"--version"},
			wantVersion: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags failed: %v", err)
			}

			if flags.markdown != tt.wantMarkdown {
				t.Errorf("markdown = %q, want %q", flags.markdown, tt.wantMarkdown)
			}
			if flags.output != tt.wantOutput {
				t.Errorf("output = %q, want %q", flags.output, tt.wantOutput)
			}
			if flags.config != tt.wantConfig {
				t.Errorf("config = %q, want %q", flags.config, tt.wantConfig)
			}
			if flags.style != tt.wantStyle {
				t.Errorf("style = %q, want %q", flags.style, tt.wantStyle)
			}
			if flags.tocTitle != tt.wantTOCTitle {
				t.Errorf("tocTitle = %q, want %q", flags.tocTitle, tt.wantTOCTitle)
			}
			if flags.timeout != tt.wantTimeout {
				t.Errorf("timeout = %q, want %q", flags.timeout, tt.wantTimeout)
			}
			if flags.highlight != tt.wantHighlight {
				t.Errorf("highlight = %v, want %v", flags.highlight, tt.wantHighlight)
			}
			if flags.pdf != tt.wantPDF {
				t.Errorf("pdf = %v, want %v", flags.pdf, tt.wantPDF)
			}
			if flags.quiet != tt.wantQuiet {
				t.Errorf("quiet = %v, want %v", flags.quiet, tt.wantQuiet)
			}
			if flags.verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", flags.verbose, tt.wantVerbose)
			}
			if flags.help != tt.wantHelp {
				t.Errorf("help = %v, want %v", flags.help, tt.wantHelp)
			}
			if flags.version != tt.wantVersion {
				t.Errorf("version = %v, want %v", flags.version, tt.wantVersion)
			}
		})
	}
}

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   *cliFlags
		wantErr error
	}{
		{
			name:  "both present",
			flags: &cliFlags{markdown: "a.md", output: "a.html"},
		},
		{
			name:    "missing input",
			flags:   &cliFlags{output: "a.html"},
			wantErr: ErrNoInput,
		},
		{
			name:    "missing output",
			flags:   &cliFlags{markdown: "a.md"},
			wantErr: ErrNoOutput,
		},
		{
			name:    "missing both reports input first",
			flags:   &cliFlags{},
			wantErr: ErrNoInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFlags(tt.flags)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateFlags() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
