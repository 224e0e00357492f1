package zerolog_config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var appPrefix string
var setAppPrefixOnce *sync.Once = &sync.Once{}
var startupLoggerOnce *sync.Once = &sync.Once{}

// ConsoleLevelWriter for CLI output with pretty formatting
type ConsoleLevelWriter struct {
	Writer io.Writer
}

func (clw ConsoleLevelWriter) Write(p []byte) (n int, err error) {
	return clw.Writer.Write(p)
}

func startupLogger(level string, logFile string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	// Diagnostics go to stderr so rendered page output on stdout stays clean.
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile == "" {
		log.Logger = zerolog.New(consoleWriter).With().Str("app", appPrefix).
			Timestamp().Logger()
		return
	}

	// Session activity is only ever logged locally, never shipped anywhere.
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Logger = zerolog.New(consoleWriter).With().Str("app", appPrefix).
			Timestamp().Logger()
		log.Warn().Err(err).Str("file", logFile).Msg("Failed to open log file, console only")
		return
	}

	multi := zerolog.MultiLevelWriter(
		f,
		consoleWriter,
	)

	log.Logger = zerolog.New(multi).With().Str("app", appPrefix).
		Timestamp().Logger()
}

// SetAppPrefix sets the app prefix
func SetAppPrefix(subAddress string) {
	setAppPrefixOnce.Do(func() {
		appPrefix = subAddress
	})
}

// Startup sets up the logger with the given level and optional local log file.
// It returns an error if the app prefix has not been set.
// Run SetAppPrefix before Startup.
func Startup(level string, logFile string) error {
	if appPrefix == "" {
		return fmt.Errorf("app prefix is required")
	}
	startupLoggerOnce.Do(func() {
		startupLogger(level, logFile)
	})
	return nil
}
