// The logger package defines a simple logger with INFO, WARN and ERROR prints.
package logger

import (
	"io"
	"log"
)

type Aggregate struct {
	info *log.Logger
	warn *log.Logger
	err  *log.Logger
}

// New returns an Aggregate that writes every level to out.
func New(out io.Writer) *Aggregate {
	return &Aggregate{
		info: log.New(out, "INFO: ", log.LstdFlags),
		warn: log.New(out, "WARN: ", log.LstdFlags),
		err:  log.New(out, "ERROR: ", log.LstdFlags),
	}
}

// Info prints an INFO log
func (l *Aggregate) Info(s string, v ...interface{}) {
	l.info.Printf(s, v...)
}

// Warn prints a WARN log
func (l *Aggregate) Warn(s string, v ...interface{}) {
	l.warn.Printf(s, v...)
}

// Error prints an ERROR log
func (l *Aggregate) Error(s string, v ...interface{}) {
	l.err.Printf(s, v...)
}
