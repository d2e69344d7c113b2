// Package logging defines the small logger seam used by the core packages
// that need to report a recoverable condition (a warn-mode MIC mismatch, a
// tolerated duplicate TLV) without forcing a concrete logging library on
// every caller. The default is silent; callers that want the diagnostics
// wire in [FromLogrus] or their own [Logger].
package logging

import "github.com/sirupsen/logrus"

// Logger is the minimal structured-logging surface the core depends on.
type Logger interface {
	Warnf(format string, args ...any)
}

// noop discards everything. It is the package-level default so that core
// operations never panic or print to stderr when no logger was configured.
type noop struct{}

func (noop) Warnf(string, ...any) {}

// Default is used wherever a caller hasn't supplied a [Logger] of its own.
var Default Logger = noop{}

// FromLogrus adapts a *logrus.Logger (or the package-level logrus.StandardLogger)
// to [Logger].
func FromLogrus(l *logrus.Logger) Logger {
	return logrusLogger{l}
}

type logrusLogger struct {
	l *logrus.Logger
}

func (a logrusLogger) Warnf(format string, args ...any) {
	a.l.Warnf(format, args...)
}
