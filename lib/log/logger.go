package log

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type LogLevel int

const (
	TRACE LogLevel = 5
	DEBUG LogLevel = 10
	INFO  LogLevel = 20
	WARN  LogLevel = 30
	ERROR LogLevel = 40
)

func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "trace"
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

var (
	trace    *log.Logger
	dbg      *log.Logger
	info     *log.Logger
	warn     *log.Logger
	err      *log.Logger
	minLevel LogLevel = TRACE

	// file we opened ourselves and must close on re-init
	owned io.Closer
)

// Init directs all loggers to w. A nil writer disables logging. When closer
// is non-nil it is closed on the next Init call.
func Init(w io.Writer, closer io.Closer, level LogLevel) error {
	trace = nil
	dbg = nil
	info = nil
	warn = nil
	err = nil

	if owned != nil {
		e := owned.Close()
		owned = nil
		if e != nil {
			return e
		}
	}

	minLevel = level
	flags := log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile
	if w != nil {
		owned = closer
		trace = log.New(w, "TRACE ", flags)
		dbg = log.New(w, "DEBUG ", flags)
		info = log.New(w, "INFO  ", flags)
		warn = log.New(w, "WARN  ", flags)
		err = log.New(w, "ERROR ", flags)
	}

	return nil
}

func ParseLevel(value string) (LogLevel, error) {
	switch strings.ToLower(value) {
	case "trace":
		return TRACE, nil
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "err", "error":
		return ERROR, nil
	}
	return 0, fmt.Errorf("%s: invalid log level", value)
}

// Enabled reports whether messages at level would be written.
func Enabled(level LogLevel) bool {
	return minLevel <= level && info != nil
}

type Logger interface {
	Tracef(string, ...any)
	Debugf(string, ...any)
	Infof(string, ...any)
	Warnf(string, ...any)
	Errorf(string, ...any)
}

type logger struct {
	name      string
	calldepth int
}

// NewLogger returns a logger prefixing every message with [name].
func NewLogger(name string, calldepth int) Logger {
	return &logger{name: name, calldepth: calldepth}
}

func (l *logger) format(message string, args ...any) string {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	if l.name != "" {
		message = fmt.Sprintf("[%s] %s", l.name, message)
	}
	return message
}

func (l *logger) output(dst *log.Logger, level LogLevel, message string, args ...any) {
	if dst == nil || minLevel > level {
		return
	}
	message = l.format(message, args...)
	dst.Output(l.calldepth, message) //nolint:errcheck // we can't do anything with what we log
}

func (l *logger) Tracef(message string, args ...any) {
	l.output(trace, TRACE, message, args...)
}

func (l *logger) Debugf(message string, args ...any) {
	l.output(dbg, DEBUG, message, args...)
}

func (l *logger) Infof(message string, args ...any) {
	l.output(info, INFO, message, args...)
}

func (l *logger) Warnf(message string, args ...any) {
	l.output(warn, WARN, message, args...)
}

func (l *logger) Errorf(message string, args ...any) {
	l.output(err, ERROR, message, args...)
}

var root = logger{calldepth: 4}

func Tracef(message string, args ...any) {
	root.Tracef(message, args...)
}

func Debugf(message string, args ...any) {
	root.Debugf(message, args...)
}

func Infof(message string, args ...any) {
	root.Infof(message, args...)
}

func Warnf(message string, args ...any) {
	root.Warnf(message, args...)
}

func Errorf(message string, args ...any) {
	root.Errorf(message, args...)
}
