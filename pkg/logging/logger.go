// Package logging provides the small leveled-logger interface shared by
// world's save/load path and facade's mesh scheduler. It is adapted from
// Gekko3D's gekko.Logger (logging.go): the same Debugf/Infof/Warnf/Errorf
// plus DebugEnabled/SetDebug surface, backed here by the standard log
// package instead of gekko's App resource system, since this module has no
// app/resource container to install into.
package logging

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger is the leveled logging interface used by world and facade.
// Packages below facade (grid/voxel/csg/mesher/network/clipmap) never log:
// they are called from deterministic hot paths and must stay side-effect
// free.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes to stdout/stderr through the standard library's
// log.Logger, prefixed by an optional component name.
type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

// NewDefaultLogger returns a DefaultLogger with the given component prefix.
func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(os.Stdout, "", flags),
		err:    log.New(os.Stderr, "", flags),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) prefixf(level, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Print(l.prefixf("DEBUG", format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print(l.prefixf("INFO", format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print(l.prefixf("WARN", format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.prefixf("ERROR", format, args...))
}

type nopLogger struct{}

// NewNopLogger returns a Logger whose methods are all no-ops, for callers
// that don't want logging.
func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) DebugEnabled() bool                { return false }
func (nopLogger) SetDebug(enabled bool)             {}
func (nopLogger) Debugf(format string, args ...any) {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Warnf(format string, args ...any)  {}
func (nopLogger) Errorf(format string, args ...any) {}
