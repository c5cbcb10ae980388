// Package logger provides the small colored prefix logger the services
// and main wiring depend on.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger is the minimal leveled logging surface the rest of the
// application depends on.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}

// Log tags every line with a colored [PREFIX] [LEVEL] marker.
type Log struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Log writing to w, tagging lines with prefix in the given
// ANSI color.
func New(prefix, color string, w io.Writer) (*Log, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}
	return &Log{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Log) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a warning message.
func (l *Log) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs an error message.
func (l *Log) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Log) print(level, msg string) {
	l.out.Printf("%s[%s] [%s]%s %s", l.color, l.prefix, level, colorReset, msg)
}
