package playlist

import (
	"github.com/m3ugen/m3ugen/extract"
	"github.com/m3ugen/m3ugen/log"
	"github.com/m3ugen/m3ugen/network"
	"github.com/m3ugen/m3ugen/source"
)

// Generate runs a full cycle: build, then write to path only if the build
// succeeded. It returns the number of entries written, header excluded.
func Generate(sources []source.Source, fetcher network.Fetcher, fallback extract.Extractor, path string) (int, error) {
	entries, err := Build(sources, fetcher, fallback).Get()
	if err != nil {
		return 0, err
	}

	if err := Write(entries, path); err != nil {
		return 0, err
	}

	log.Infof("wrote %d entries to %s", len(entries)-1, path)
	return len(entries) - 1, nil
}
