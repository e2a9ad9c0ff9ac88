package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteTempFile - Creates temp files with content and cleanup
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	t.Run("writes content and cleans up", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := fileutil.WriteTempFile("<html></html>", "html")
		if err != nil {
			t.Fatalf("WriteTempFile failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading temp file: %v", err)
		}
		if string(data) != "<html></html>" {
			t.Errorf("content = %q, want %q", data, "<html></html>")
		}
		if !strings.HasSuffix(path, ".html") {
			t.Errorf("path = %q, want .html suffix", path)
		}
		if !strings.Contains(filepath.Base(path), "md2site-") {
			t.Errorf("path = %q, want md2site- prefix", path)
		}

		cleanup()
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("cleanup did not remove the temp file")
		}
	})

	t.Run("empty extension rejected", func(t *testing.T) {
		t.Parallel()

		_, _, err := fileutil.WriteTempFile("x", "")
		if !errors.Is(err, fileutil.ErrExtensionEmpty) {
			t.Errorf("error = %v, want ErrExtensionEmpty", err)
		}
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		t.Parallel()

		_, _, err := fileutil.WriteTempFile("x", "html/../../etc")
		if !errors.Is(err, fileutil.ErrExtensionPathTraversal) {
			t.Errorf("error = %v, want ErrExtensionPathTraversal", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateExtension - Rejects unsafe extensions
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "html", extension: "html"},
		{name: "pdf", extension: "pdf"},
		{name: "empty", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "forward slash", extension: "a/b", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash", extension: "a\\b", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte", extension: "a\x00b", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - Distinguishes files from directories and absences
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.md")
	if err := os.WriteFile(file, []byte("# hi"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(existing file) = false, want true")
	}
	if fileutil.FileExists(filepath.Join(dir, "absent.md")) {
		t.Error("FileExists(missing file) = true, want false")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(directory) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Separates asset names from filesystem paths
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "default", want: false},
		{input: "dark", want: false},
		{input: "my-style", want: false},
		{input: "style.css", want: true},
		{input: "./custom.css", want: true},
		{input: "themes/custom.css", want: true},
		{input: `C:\styles\x.css`, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
