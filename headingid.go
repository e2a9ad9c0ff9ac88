package md2site

import (
	"strconv"
	"strings"
)

// idRegistry assigns unique anchor ids for one document. The first
// occurrence of a base id is returned bare; each repeat appends -N
// with a 1-based counter. A literal heading that happens to sanitize
// to "base-1" can still collide with a deduplicated repeat of "base";
// that risk is accepted.
type idRegistry struct {
	counts map[string]int
}

func newIDRegistry() *idRegistry {
	return &idRegistry{counts: make(map[string]int)}
}

// assign returns a unique id for the given heading text, recording the
// base id so later duplicates pick up a suffix.
func (r *idRegistry) assign(text string) string {
	base := sanitizeID(text)
	if n, ok := r.counts[base]; ok {
		n++
		r.counts[base] = n
		return base + "-" + strconv.Itoa(n)
	}
	r.counts[base] = 0
	return base
}

// sanitizeID lowercases the text, turns spaces into hyphens, and drops
// every byte that is not ASCII alphanumeric, hyphen, or underscore.
// Spaces are replaced before the character filter runs, so hyphens
// produced from spaces survive alongside literal hyphens/underscores.
func sanitizeID(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range strings.ToLower(text) {
		switch {
		case c == ' ':
			b.WriteByte('-')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteRune(c)
		}
	}
	return b.String()
}
