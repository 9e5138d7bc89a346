// Package extract finds stream links inside HTML pages.
package extract

import (
	"regexp"
	"sort"

	"github.com/samber/lo"
)

// linkChar is any character that may appear inside a link: not a quote and
// not whitespace. RE2's \s is ASCII-only, so Unicode separators (NBSP, em
// space, NEL, the \x1c-\x1f separators) and \v are listed explicitly.
const linkChar = `[^\s\x0b\p{Z}\x{85}\x{1c}-\x{1f}'"]`

// StreamPatterns are the two link shapes recognized as streams: anything
// ending in .m3u8 (query string allowed), and URLs with a /stream or /live
// path segment. Only absolute http(s) URLs can match.
var StreamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://` + linkChar + `+\.m3u8` + linkChar + `*`),
	regexp.MustCompile(`(?i)https?://` + linkChar + `+/(?:stream|live)` + linkChar + `*`),
}

// Extractor turns an HTML page into a deduplicated, sorted list of absolute
// stream URLs.
type Extractor interface {
	Links(html string) []string
}

// Func adapts a site-specific function to the Extractor interface. Its output
// is normalized, so the function itself may return duplicates in any order.
type Func func(html string) []string

func (f Func) Links(html string) []string {
	return Normalize(f(html))
}

// Regexp matches a fixed set of patterns against the raw page and against its
// plain-text rendering.
type Regexp struct {
	patterns []*regexp.Regexp
}

// New returns an extractor over the given patterns.
func New(patterns ...*regexp.Regexp) *Regexp {
	return &Regexp{patterns: patterns}
}

// Default returns the extractor over StreamPatterns.
func Default() *Regexp {
	return New(StreamPatterns...)
}

// Links implements Extractor.
func (r *Regexp) Links(html string) []string {
	candidates := []string{html, PlainText(html)}

	var matches []string
	for _, text := range candidates {
		for _, pattern := range r.patterns {
			matches = append(matches, pattern.FindAllString(text, -1)...)
		}
	}

	return Normalize(matches)
}

// Normalize removes duplicates and sorts links by byte order.
// It never returns nil.
func Normalize(links []string) []string {
	unique := lo.Uniq(links)
	sort.Strings(unique)
	return unique
}
