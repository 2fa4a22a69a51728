// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application logger. It is usable before Init, writing text
// at info level to stderr.
var Log = logrus.New()

// Options configures Init.
type Options struct {
	Level  string    // logrus level name; "info" when empty or invalid
	Format string    // "json" or "text"
	Output io.Writer // nil discards all output
}

// Init configures Log. Call once from main before the game starts.
func Init(opts Options) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if opts.Output == nil {
		Log.SetOutput(io.Discard)
	} else {
		Log.SetOutput(opts.Output)
	}
}
