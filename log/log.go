// Package log writes leveled diagnostics to a daily file under the config directory.
//
// Logging is off unless logs.write is set; every helper is then a no-op.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/m3ugen/m3ugen/filesystem"
	"github.com/m3ugen/m3ugen/key"
	"github.com/m3ugen/m3ugen/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

// Setup opens today's log file and applies the configured format and level.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		enabled = false
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// Source returns an entry tagged with the source being scraped.
func Source(name string) *Entry {
	return &Entry{fields: logrus.Fields{"source": name}}
}

// Entry carries fields into the helpers below.
type Entry struct {
	fields logrus.Fields
}

func (e *Entry) Debugf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Debugf(format, args...)
	}
}

func (e *Entry) Infof(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Infof(format, args...)
	}
}

func (e *Entry) Errorf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Errorf(format, args...)
	}
}

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
