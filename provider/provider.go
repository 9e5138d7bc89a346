// Package provider holds the ordered registry of sources to scrape.
package provider

import (
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/m3ugen/m3ugen/key"
	"github.com/m3ugen/m3ugen/log"
	"github.com/m3ugen/m3ugen/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Builtins returns the compiled-in sources in scrape order.
// The Bongo entry is a placeholder until a real endpoint is known.
func Builtins() []source.Source {
	return []source.Source{
		{Name: "Toffee", URL: "https://toffeelive.com/en/live"},
		{Name: "Bongo", URL: "https://example.com/bongo"},
	}
}

// Customs returns the sources defined by the sources.custom setting.
// Malformed definitions are logged and skipped.
func Customs() []source.Source {
	var sources []source.Source
	for _, def := range viper.GetStringSlice(key.SourcesCustom) {
		s, err := source.Parse(def)
		if err != nil {
			log.Warn(err)
			continue
		}
		sources = append(sources, s)
	}
	return sources
}

// All returns builtins followed by custom sources.
func All() []source.Source {
	return append(Builtins(), Customs()...)
}

// Get finds the first registered source with the given name.
func Get(name string) (source.Source, bool) {
	return lo.Find(All(), func(s source.Source) bool {
		return s.Name == name
	})
}

// Select narrows the registry to the named sources, keeping registry order.
// An empty names list selects everything. Every name registered more than
// once contributes all of its entries.
func Select(names []string) ([]source.Source, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}

	for _, name := range names {
		if _, ok := Get(name); !ok {
			return nil, errUnknownSource(name, all)
		}
	}

	return lo.Filter(all, func(s source.Source, _ int) bool {
		return lo.Contains(names, s.Name)
	}), nil
}

func errUnknownSource(name string, all []source.Source) error {
	if len(all) == 0 {
		return fmt.Errorf("unknown source %q", name)
	}

	closest := lo.MinBy(all, func(a, b source.Source) bool {
		return levenshtein.Distance(name, a.Name) < levenshtein.Distance(name, b.Name)
	})
	return fmt.Errorf("unknown source %q, did you mean %q?", name, closest.Name)
}
