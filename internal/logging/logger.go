// Package logging wraps zerolog with the fields this tool logs on every line.
package logging

import (
    "io"
    "os"
    "strings"
    "time"

    "github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
    Level   string
    Format  string // console or json
    Output  io.Writer
    Service string
}

// Logger is a structured logger. The zero value is not usable; use New or Nop.
type Logger struct {
    zl zerolog.Logger
}

// New builds a logger. Output defaults to stderr since stdout carries the
// host protocol in serve mode.
func New(cfg Config) *Logger {
    out := cfg.Output
    if out == nil {
        out = os.Stderr
    }
    if strings.EqualFold(cfg.Format, "console") {
        out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
    }
    service := cfg.Service
    if service == "" {
        service = "docx-extract"
    }
    zl := zerolog.New(out).
        Level(ParseLevel(cfg.Level)).
        With().
        Timestamp().
        Str("service", service).
        Logger()
    return &Logger{zl: zl}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
    return &Logger{zl: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
    switch strings.ToLower(strings.TrimSpace(level)) {
    case "trace":
        return zerolog.TraceLevel
    case "debug":
        return zerolog.DebugLevel
    case "warn", "warning":
        return zerolog.WarnLevel
    case "error":
        return zerolog.ErrorLevel
    case "disabled", "off":
        return zerolog.Disabled
    default:
        return zerolog.InfoLevel
    }
}

// With returns a child logger carrying an extra string field.
func (l *Logger) With(key, val string) *Logger {
    return &Logger{zl: l.zl.With().Str(key, val).Logger()}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
