package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInputNotFound  = errors.New("input file not found")
	ErrReadMarkdown   = errors.New("failed to read markdown file")
	ErrReadStyle      = errors.New("failed to read CSS file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// run executes one conversion: read the document, generate the page,
// and write the page plus its companion assets (and optionally a PDF).
func run(ctx context.Context, flags *cliFlags, stdout io.Writer) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	if !fileutil.FileExists(flags.markdown) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, flags.markdown)
	}
	mdContent, err := os.ReadFile(flags.markdown) // #nosec G304 -- path comes from the user's own flag
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	outputPath := resolveOutputPath(flags.output, cfg)
	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}
	svc := md2site.New(opts...)
	defer func() { _ = svc.Close() }()

	input := md2site.Input{Markdown: string(mdContent)}
	res, err := svc.Convert(ctx, input)
	if err != nil {
		return err
	}

	cssPath := filepath.Join(outputDir, md2site.StylesheetFilename)
	jsPath := filepath.Join(outputDir, md2site.ScriptFilename)

	outputs := []struct {
		path    string
		content string
	}{
		{outputPath, res.HTML},
		{cssPath, res.CSS},
		{jsPath, res.JS},
	}
	for _, out := range outputs {
		if err := os.WriteFile(out.path, []byte(out.content), filePermissions); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteOutput, out.path, err)
		}
	}

	var pdfPath string
	if cfg.PDF.Enabled {
		pdfBytes, err := svc.ConvertPDF(ctx, input)
		if err != nil {
			return err
		}
		pdfPath = strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".pdf"
		if err := os.WriteFile(pdfPath, pdfBytes, filePermissions); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteOutput, pdfPath, err)
		}
	}

	if !flags.quiet {
		fmt.Fprintln(stdout, "Successfully generated:")
		fmt.Fprintf(stdout, "  HTML: %s\n", outputPath)
		fmt.Fprintf(stdout, "  CSS: %s\n", cssPath)
		fmt.Fprintf(stdout, "  JS: %s\n", jsPath)
		if pdfPath != "" {
			fmt.Fprintf(stdout, "  PDF: %s\n", pdfPath)
		}
	}
	return nil
}

// loadConfig loads the config file when given, else defaults.
func loadConfig(flags *cliFlags) (*config.Config, error) {
	if flags.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags overlays CLI flags onto the config (CLI wins).
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.style != "" {
		cfg.Style.Name = flags.style
	}
	if flags.tocTitle != "" {
		cfg.TOC.Title = flags.tocTitle
	}
	if flags.highlight {
		cfg.Highlight.Enabled = true
	}
	if flags.pdf {
		cfg.PDF.Enabled = true
	}
	if flags.timeout != "" {
		cfg.PDF.Timeout = flags.timeout
	}
}

// resolveOutputPath joins a relative output path onto the configured
// default directory, if any.
func resolveOutputPath(output string, cfg *config.Config) string {
	if cfg.Output.DefaultDir == "" || filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(cfg.Output.DefaultDir, output)
}

// buildOptions translates config into service options.
func buildOptions(cfg *config.Config) ([]md2site.Option, error) {
	css, err := resolveStylesheet(cfg.Style.Name)
	if err != nil {
		return nil, err
	}

	opts := []md2site.Option{md2site.WithStylesheet(css)}
	if cfg.TOC.Title != "" {
		opts = append(opts, md2site.WithTOCTitle(cfg.TOC.Title))
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, md2site.WithHighlighting())
	}
	if cfg.PDF.Timeout != "" {
		d, err := time.ParseDuration(cfg.PDF.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, cfg.PDF.Timeout)
		}
		opts = append(opts, md2site.WithTimeout(d))
	}
	return opts, nil
}

// resolveStylesheet loads the CSS for a theme name or a file path.
func resolveStylesheet(name string) (string, error) {
	if name == "" {
		name = assets.DefaultStyleName
	}
	if fileutil.IsFilePath(name) {
		content, err := os.ReadFile(name) // #nosec G304 -- path comes from the user's own flag
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadStyle, err)
		}
		return string(content), nil
	}
	return assets.LoadStyle(name)
}
