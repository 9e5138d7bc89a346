// Package config wires viper to the m3ugen.toml file, M3UGEN_* environment
// variables and the factory defaults in Default.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m3ugen/m3ugen/constant"
	"github.com/m3ugen/m3ugen/filesystem"
	"github.com/m3ugen/m3ugen/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state. A missing config file
// is not an error; an invalid value in one is.
func Setup() error {
	viper.SetConfigName(constant.M3ugen)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.M3ugen)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	for name := range Default {
		if err := Validate(name, viper.Get(name)); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	return nil
}
