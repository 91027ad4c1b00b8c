// Package log hands out the named go-logging loggers shared by the
// renderer packages. Output goes to stderr so render progress never mixes
// with image or table output; verbosity starts at notice and the CLI
// raises it per run.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Logger is the leveled printf surface the renderer packages log through.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// Level is a verbosity threshold for SetLevel. Messages below the
// threshold are dropped across every module at once.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = [...]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} %{module}%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// New returns the logger registered under name, creating it on first use.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all logger output to sink and resets verbosity to the
// notice default.
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	logging.SetBackend(backend)
	SetLevel(Notice)
}

// SetLevel applies a verbosity threshold to every module.
func SetLevel(level Level) {
	backend.SetLevel(backendLevels[level], "")
}

func init() {
	SetSink(os.Stderr)
}
