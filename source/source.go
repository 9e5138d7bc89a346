// Package source defines the streaming sites m3ugen scrapes.
package source

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/m3ugen/m3ugen/extract"
)

var (
	ErrEmptyName = errors.New("source name is empty")
	ErrBadURL    = errors.New("source url must be an absolute http or https url")
)

// Source is a named page to scrape. Values are never mutated after
// construction; duplicates in a registry are kept as-is.
type Source struct {
	Name string
	URL  string

	// Extractor overrides link extraction for this site. Nil means the
	// builder's default extractor is used.
	Extractor extract.Extractor
}

// New validates name and rawURL and returns a Source using the default extractor.
func New(name, rawURL string) (Source, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Source{}, ErrEmptyName
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Source{}, fmt.Errorf("%w: %q", ErrBadURL, rawURL)
	}

	return Source{Name: name, URL: u.String()}, nil
}

// Parse reads a "Name=URL" definition as found in the sources.custom setting.
func Parse(def string) (Source, error) {
	name, rawURL, ok := strings.Cut(def, "=")
	if !ok {
		return Source{}, fmt.Errorf("source %q: expected Name=URL", def)
	}
	return New(name, rawURL)
}

// WithExtractor returns a copy of s that extracts links with ex.
func (s Source) WithExtractor(ex extract.Extractor) Source {
	s.Extractor = ex
	return s
}

// ExtractorOr returns the source's own extractor, or fallback if it has none.
func (s Source) ExtractorOr(fallback extract.Extractor) extract.Extractor {
	if s.Extractor != nil {
		return s.Extractor
	}
	return fallback
}

// String returns the display name.
func (s Source) String() string {
	return s.Name
}
