package cmd

import (
	"testing"

	"github.com/m3ugen/m3ugen/config"
	"github.com/m3ugen/m3ugen/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseValue(t *testing.T) {
	Convey("parseValue follows the default's type", t, func() {
		Convey("int", func() {
			v, err := parseValue(config.Default[key.FetchTimeout], []string{"30"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 30)

			_, err = parseValue(config.Default[key.FetchTimeout], []string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("bool", func() {
			v, err := parseValue(config.Default[key.FetchTLSFingerprint], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("string", func() {
			v, err := parseValue(config.Default[key.PlaylistPath], []string{"tv.m3u"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "tv.m3u")
		})

		Convey("string list", func() {
			v, err := parseValue(config.Default[key.SourcesCustom], []string{"A=https://a", "B=https://b"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"A=https://a", "B=https://b"})
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("errUnknownKey suggests the nearest key", t, func() {
		So(errUnknownKey("fetch.timout").Error(), ShouldContainSubstring, "fetch.timeout")
	})
}
