package config

import (
	"testing"

	"github.com/m3ugen/m3ugen/constant"
	"github.com/m3ugen/m3ugen/filesystem"
	"github.com/m3ugen/m3ugen/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetInt(key.FetchTimeout), ShouldEqual, constant.DefaultTimeoutSeconds)
			So(viper.GetString(key.PlaylistPath), ShouldEqual, constant.DefaultPlaylist)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("fetch.tls_fingerprint"), ShouldEqual, "fetch_tls_fingerprint")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the timeout field", t, func() {
		field := Default[key.FetchTimeout]

		Convey("Env should be prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "M3UGEN_FETCH_TIMEOUT")
		})

		Convey("Type should report int", func() {
			So(field.Type(), ShouldEqual, "int")
		})

		Convey("MarshalJSON should include the default", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"key":"fetch.timeout"`)
			So(string(data), ShouldContainSubstring, `"default":20`)
		})
	})

	Convey("Given the custom sources field", t, func() {
		field := Default[key.SourcesCustom]
		So(field.Type(), ShouldEqual, "[]string")
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		Convey("Accepts well-formed custom sources", func() {
			So(Validate(key.SourcesCustom, []string{"A=https://a.example/live"}), ShouldBeNil)
		})

		Convey("Rejects malformed custom sources", func() {
			So(Validate(key.SourcesCustom, []string{"A https://a.example"}), ShouldNotBeNil)
			So(Validate(key.SourcesCustom, []string{"A=/relative"}), ShouldNotBeNil)
		})

		Convey("Rejects a non-positive timeout", func() {
			So(Validate(key.FetchTimeout, 0), ShouldNotBeNil)
			So(Validate(key.FetchTimeout, 5), ShouldBeNil)
		})

		Convey("Ignores keys without rules", func() {
			So(Validate(key.LogsLevel, "debug"), ShouldBeNil)
		})
	})
}

func TestSetupRejectsInvalidFile(t *testing.T) {
	Convey("Given a config file with a malformed custom source", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv("M3UGEN_CONFIG_PATH", "/cfg")
		So(filesystem.API().MkdirAll("/cfg", 0o755), ShouldBeNil)
		So(filesystem.API().WriteFile("/cfg/m3ugen.toml", []byte("[sources]\ncustom = [\"no separator\"]\n"), 0o644), ShouldBeNil)

		Convey("Setup fails", func() {
			So(Setup(), ShouldNotBeNil)
		})

		Reset(func() {
			viper.Reset()
			filesystem.SetMemMapFs()
		})
	})
}
