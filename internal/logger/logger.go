// Package logger provides the plugin's debug diagnostics. Munin captures a
// plugin's stdout, so diagnostics share the protocol stream; debug lines are
// prefixed with "# " which munin ignores, keeping program outputs unchanged.
package logger

import (
	"fmt"
	"io"
	"os"
)

// DebugEnv enables verbose diagnostics when set to exactly "1".
const DebugEnv = "MUNIN_DEBUG"

// Logger is the interface plugin components log through.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// FromEnv returns a logger writing to w when MUNIN_DEBUG=1, a no-op
// logger otherwise.
func FromEnv(w io.Writer) Logger {
	if os.Getenv(DebugEnv) == "1" {
		return &writerLogger{w: w}
	}
	return Noop()
}

type writerLogger struct {
	w io.Writer
}

func (l *writerLogger) Debugf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "# "+format+"\n", args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debugf(format string, args ...interface{}) {}

// Buffer captures messages for test assertions.
type Buffer struct {
	Messages []string
}

func (b *Buffer) Debugf(format string, args ...interface{}) {
	b.Messages = append(b.Messages, fmt.Sprintf(format, args...))
}
