package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects the log level and an optional log file.
type Config struct {
	Level string `mapstructure:"level" json:"level" toml:"level"`
	File  string `mapstructure:"file" json:"file" toml:"file"`
}

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// ParseLevel matches a level name case-insensitively. Unknown names
// fall back to info.
func ParseLevel(level string) (zerolog.Level, bool) {
	l, ok := logLevelMatches[strings.ToUpper(level)]
	if !ok {
		return zerolog.InfoLevel, false
	}
	return l, true
}

func isTerminalAttached(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}

func consoleOutput(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// Setup configures the global logger. Logs go to stderr so stdout stays
// free for reports; a console writer is used when stderr is a terminal.
// The returned func closes the log file, if one was opened.
func Setup(cfg Config) (func(), error) {
	level, ok := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		warnUnknownLevel(cfg.Level, ok)
		return func() { _ = f.Close() }, nil
	}

	var out io.Writer = os.Stderr
	if isTerminalAttached(os.Stderr) {
		out = consoleOutput(os.Stderr)
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	warnUnknownLevel(cfg.Level, ok)
	return func() {}, nil
}

func warnUnknownLevel(level string, ok bool) {
	if !ok && level != "" {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
}
