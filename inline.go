package md2site

import "regexp"

// Inline span patterns. All are bounded character-class matches, so a
// single left-to-right ReplaceAllString pass per pattern is equivalent
// to a non-greedy scan: no nesting, no re-scanning of substituted
// output.
var (
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
)

// inlineRule pairs a span pattern with its HTML replacement.
type inlineRule struct {
	re   *regexp.Regexp
	repl string
}

// paragraphRules apply to paragraph lines: links are substituted first
// so their label/URL text is still raw when the other patterns run.
var paragraphRules = []inlineRule{
	{linkRe, `<a href="$2">$1</a>`},
	{boldRe, `<strong>$1</strong>`},
	{italicRe, `<em>$1</em>`},
	{inlineCodeRe, `<code>$1</code>`},
}

// tableCellRules apply to table cells: links are substituted last.
// Both orders are part of the dialect and are kept as-is; bold must
// run before italic in each, or a ** pair would be misread as empty
// emphasis.
var tableCellRules = []inlineRule{
	{boldRe, `<strong>$1</strong>`},
	{italicRe, `<em>$1</em>`},
	{inlineCodeRe, `<code>$1</code>`},
	{linkRe, `<a href="$2">$1</a>`},
}

// applyInline runs each rule once over s, in order.
func applyInline(s string, rules []inlineRule) string {
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
