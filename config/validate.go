package config

import (
	"fmt"

	"github.com/m3ugen/m3ugen/key"
	"github.com/m3ugen/m3ugen/source"
)

// Validate checks a value before it is persisted under k.
func Validate(k string, v any) error {
	switch k {
	case key.SourcesCustom:
		defs, ok := v.([]string)
		if !ok {
			return fmt.Errorf("%s: expected a list of Name=URL entries", k)
		}
		for _, def := range defs {
			if _, err := source.Parse(def); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
	case key.FetchTimeout:
		if n, ok := v.(int); !ok || n <= 0 {
			return fmt.Errorf("%s: must be a positive number of seconds", k)
		}
	}
	return nil
}
