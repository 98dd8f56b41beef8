package holocard

import (
	"fmt"
	"io"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger redirects engine log lines. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

func logf(format string, args ...any) {
	logger.Printf(format, args...)
}

// SetDebugMode enables or disables debug mode. When enabled, source
// transitions are logged and calls on a disposed engine panic instead of
// being ignored.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// debugf logs only in debug mode.
func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	logf("[holocard] %s: "+format, append([]any{e.label()}, args...)...)
}

// checkAlive reports whether the engine still accepts calls. Calling into a
// disposed engine is a programming error: it panics in debug mode and is
// ignored otherwise.
func (e *Engine) checkAlive(op string) bool {
	if !e.disposed {
		return true
	}
	if e.debug {
		panic(fmt.Sprintf("holocard debug: %s on disposed engine %s", op, e.label()))
	}
	return false
}

func (e *Engine) label() string {
	if e.Name == "" {
		return "engine"
	}
	return fmt.Sprintf("engine %q", e.Name)
}
