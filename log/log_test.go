package log

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/m3ugen/m3ugen/filesystem"
	"github.com/m3ugen/m3ugen/key"
	"github.com/m3ugen/m3ugen/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/m3ugen")

		Convey("When logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("Then no log file is created", func() {
				So(lo.Must(filesystem.API().Exists(todayLog())), ShouldBeFalse)
			})
		})

		Convey("When logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)

			Convey("Then the daily file exists and the level is applied", func() {
				So(lo.Must(filesystem.API().Exists(todayLog())), ShouldBeTrue)
				So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
			})

			Convey("Then an unknown level falls back to info", func() {
				viper.Set(key.LogsLevel, "chatty")
				So(Setup(), ShouldBeNil)
				So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
			})
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			enabled = false
		})
	})
}

func todayLog() string {
	return filepath.Join("/m3ugen", "logs", time.Now().Format("2006-01-02")+".log")
}

func TestSourceEntry(t *testing.T) {
	Convey("Given logging enabled into a buffer", t, func() {
		var buf bytes.Buffer
		logrus.SetOutput(&buf)
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
		logrus.SetLevel(logrus.InfoLevel)
		enabled = true

		Reset(func() {
			enabled = false
		})

		Convey("Source entries carry the source field", func() {
			Source("Toffee").Infof("found %d links", 3)
			So(buf.String(), ShouldContainSubstring, "source=Toffee")
			So(buf.String(), ShouldContainSubstring, "found 3 links")
		})

		Convey("Messages below the level are dropped", func() {
			Source("Toffee").Debugf("hidden")
			So(buf.String(), ShouldBeEmpty)
		})

		Convey("Nothing is written when disabled", func() {
			enabled = false
			Source("Toffee").Errorf("boom")
			So(buf.String(), ShouldBeEmpty)
		})
	})
}
