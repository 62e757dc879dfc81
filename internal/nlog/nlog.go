package nlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the narrow logging surface the rest of the module depends on.
// Solve logs at Debug level, for contradictions and failed solution
// submits; nothing in the module calls Trace.
type Logger interface {
	Debug(msg string, kv ...interface{})
	Trace(msg string, kv ...interface{})
}

// nop is the zero-value Logger: every call is a no-op. It is the default
// used throughout the module so the core stays quiet unless a caller opts
// in.
type nop struct{}

func (nop) Debug(string, ...interface{}) {}
func (nop) Trace(string, ...interface{}) {}

// Nop returns the no-op Logger.
func Nop() Logger { return nop{} }

// zlog adapts a zerolog.Logger to the Logger interface. kv pairs are
// applied as zerolog string/any fields: kv must alternate (key string,
// value interface{}); a pair whose key is not a string is skipped, and an
// unpaired trailing element is ignored, rather than panicking.
type zlog struct {
	l zerolog.Logger
}

// New builds a Logger backed by zerolog, writing level >= lvl to w.
// Passing zerolog.Disabled for lvl yields a Logger that is effectively
// Nop() but still routes through zerolog's level machinery, useful when a
// caller wants to flip verbosity at runtime without swapping
// implementations.
func New(w io.Writer, lvl zerolog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}

	return zlog{l: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

func (z zlog) event(e *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}

func (z zlog) Debug(msg string, kv ...interface{}) {
	z.event(z.l.Debug(), msg, kv)
}

func (z zlog) Trace(msg string, kv ...interface{}) {
	z.event(z.l.Trace(), msg, kv)
}
