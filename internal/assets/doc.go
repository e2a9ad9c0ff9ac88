// Package assets holds the fixed companion assets emitted next to the
// generated page: the navigation script and the named stylesheets.
// Everything is embedded at build time, so output bytes are identical
// on every run for a given style.
package assets
