package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css
var styleFS embed.FS

//go:embed script.js
var scriptFS embed.FS

// DefaultStyleName is the theme used when none is requested.
const DefaultStyleName = "default"

// LoadStyle returns the CSS for a named embedded theme. The name
// should not include the .css extension.
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styleFS.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// DefaultStyle returns the default theme.
func DefaultStyle() string {
	content, err := styleFS.ReadFile("styles/" + DefaultStyleName + ".css")
	if err != nil {
		// The default theme is embedded; a read failure means a broken
		// build, not a runtime condition callers can handle.
		panic("assets: embedded default style missing: " + err.Error())
	}
	return string(content)
}

// Script returns the navigation script emitted as script.js.
func Script() string {
	content, err := scriptFS.ReadFile("script.js")
	if err != nil {
		panic("assets: embedded script missing: " + err.Error())
	}
	return string(content)
}

// StyleNames lists the embedded theme names, sorted.
func StyleNames() []string {
	entries, err := fs.ReadDir(styleFS, "styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	sort.Strings(names)
	return names
}
