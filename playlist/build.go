package playlist

import (
	"fmt"

	"github.com/m3ugen/m3ugen/extract"
	"github.com/m3ugen/m3ugen/log"
	"github.com/m3ugen/m3ugen/network"
	"github.com/m3ugen/m3ugen/source"
	"github.com/samber/mo"
)

// SourceError reports which source stopped a build.
type SourceError struct {
	Source source.Source
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s (%s): %v", e.Source.Name, e.Source.URL, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Build fetches every source in order and returns the playlist lines,
// starting with Header. Links of a source are numbered from 1 in the order
// its extractor returns them; fallback is used for sources without their own
// extractor.
//
// The first fetch error ends the build. The result then carries only the
// error; entries gathered from earlier sources are discarded.
func Build(sources []source.Source, fetcher network.Fetcher, fallback extract.Extractor) mo.Result[[]string] {
	entries := []string{Header}

	for _, s := range sources {
		logger := log.Source(s.Name)

		logger.Debugf("fetching %s", s.URL)
		page, err := fetcher.Fetch(s.URL)
		if err != nil {
			logger.Errorf("fetch failed: %v", err)
			return mo.Err[[]string](&SourceError{Source: s, Err: err})
		}

		links := s.ExtractorOr(fallback).Links(page)
		logger.Infof("found %d links", len(links))

		for i, link := range links {
			entries = append(entries, FormatEntry(fmt.Sprintf("%s %d", s.Name, i+1), link))
		}
	}

	return mo.Ok(entries)
}
