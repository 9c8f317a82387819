package log

import (
	syslog "log"
	"log/slog"
)

// Logger is satisfied by *zap.SugaredLogger
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)
}

type logger struct{}

// Default 默认实例
var Default Logger

func init() {
	syslog.SetFlags(syslog.Ltime | syslog.Lshortfile)
	Default = &logger{}
}

func Set(logger Logger) {
	if logger != nil {
		Default = logger
	}
}

func Get() Logger {
	return Default
}

func (z *logger) Debugw(msg string, keysAndValues ...any) {
	slog.Debug(msg, keysAndValues...)
}

func (z *logger) Infow(msg string, keysAndValues ...any) {
	slog.Info(msg, keysAndValues...)
}

func (z *logger) Warnw(msg string, keysAndValues ...any) {
	slog.Warn(msg, keysAndValues...)
}

func (z *logger) Errorw(msg string, keysAndValues ...any) {
	slog.Error(msg, keysAndValues...)
}

func (z *logger) Fatalw(msg string, keysAndValues ...any) {
	syslog.Fatal(append([]any{msg}, keysAndValues...)...)
}

// With returns a Logger that prepends keysAndValues to every record
func With(l Logger, keysAndValues ...any) Logger {
	if len(keysAndValues) == 0 {
		return l
	}
	return &withLogger{l: l, kv: keysAndValues}
}

type withLogger struct {
	l  Logger
	kv []any
}

func (w *withLogger) merge(keysAndValues []any) []any {
	out := make([]any, 0, len(w.kv)+len(keysAndValues))
	out = append(out, w.kv...)
	return append(out, keysAndValues...)
}

func (w *withLogger) Debugw(msg string, keysAndValues ...any) {
	w.l.Debugw(msg, w.merge(keysAndValues)...)
}

func (w *withLogger) Infow(msg string, keysAndValues ...any) {
	w.l.Infow(msg, w.merge(keysAndValues)...)
}

func (w *withLogger) Warnw(msg string, keysAndValues ...any) {
	w.l.Warnw(msg, w.merge(keysAndValues)...)
}

func (w *withLogger) Errorw(msg string, keysAndValues ...any) {
	w.l.Errorw(msg, w.merge(keysAndValues)...)
}

func (w *withLogger) Fatalw(msg string, keysAndValues ...any) {
	w.l.Fatalw(msg, w.merge(keysAndValues)...)
}

func Debugw(msg string, keysAndValues ...any) {
	Default.Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	Default.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	Default.Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	Default.Errorw(msg, keysAndValues...)
}

func Fatalw(msg string, keysAndValues ...any) {
	Default.Fatalw(msg, keysAndValues...)
}
