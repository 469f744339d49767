// A lightweight, levelled console logging package with inline markup.
// Message text may carry <tag>content</> spans that compile to ANSI escape
// sequences, every line gets a colored level badge and a UTC timestamp,
// and a per-process threshold filters what is written.
package taglog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger is the central state holder: the output sink, the alias registry
// with its markup compiler, the fixed threshold and the buffer reused
// while composing lines.
type Logger struct {
	sync struct {
		outMtx sync.Mutex // guards composing and writing (one line at a time)
	}
	aliases *AliasRegistry
	markup  *Compiler
	output  io.Writer
	msgbuf  *bytes.Buffer // buffer reused while building formatted output
	level   LogLevel      // threshold: minimal level accepted by the logger
	curLvl  LogLevel      // current level used by Write / fmt.Fprintf helpers
	colors  bool
}

// Short form of Init creates a logger writing to [os.Stdout] with the
// process threshold resolved by Threshold() (.env file first, then the
// environment, then DEFAULT_LOG_LEVEL).
//
// Preferred usage example:
//
//	func main() {
//	    logger := taglog.Init()
//	    logger.Info("service <green>online</>")
//	    ...
//	}
func Init() *Logger {
	return InitWithParams(Threshold(), os.Stdout)
}

// InitWithParams constructs a logger instance with explicit initial
// settings. The level is normalized; a nil output is replaced by
// [io.Discard] to silently drop lines.
func InitWithParams(level LogLevel, output io.Writer) *Logger {
	l := new(Logger)
	l.aliases = NewAliasRegistry()
	l.markup = NewCompiler(l.aliases)
	l.msgbuf = bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF))
	l.level = normLevel(level)
	l.curLvl = DEFAULT_LOG_LEVEL
	l.colors = true
	l.SetOutput(output)
	return l
}

// Sets the output sink, io.Discard is used instead of nil to silently
// drop lines without touching the threshold.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetOutput(output io.Writer) *Logger {
	l.sync.outMtx.Lock()
	defer l.sync.outMtx.Unlock()
	if output != nil {
		l.output = output
	} else {
		l.output = io.Discard
	}
	return l
}

// Toggles colored output. With colors off lines are composed without any
// escape sequence and markup spans are stripped to their bare content
// (useful when the sink is a file or a non-ANSI terminal, see WantColor).
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetColors(enabled bool) *Logger {
	l.sync.outMtx.Lock()
	defer l.sync.outMtx.Unlock()
	l.colors = enabled
	return l
}

// Alias registers a markup alias on the logger's registry: after
//
//	l.Alias("alert", "bold,red")
//
// the span <alert>...</> styles exactly like <bold,red>...</>. Aliases can
// be re-registered at any time (last writer wins) and are matched
// case-sensitively against raw tag bodies.
func (l *Logger) Alias(name, tokens string) *Logger {
	l.aliases.Register(name, tokens)
	return l
}

// ClearAliases drops all registered markup aliases.
func (l *Logger) ClearAliases() *Logger {
	l.aliases.Clear()
	return l
}

// Aliases returns the logger's alias registry, e.g. to bulk-load a
// palette file:
//
//	l.Aliases().LoadPaletteFile(path)
func (l *Logger) Aliases() *AliasRegistry {
	return l.aliases
}

// Level returns the logger's threshold (fixed at construction).
func (l *Logger) Level() LogLevel {
	return l.level
}

// Enabled reports whether messages at the given level would be written:
// the level must be a printable severity (below LVL_NONE) at or above the
// logger threshold. A LVL_NONE threshold silences everything.
func (l *Logger) Enabled(level LogLevel) bool {
	return level < LVL_NONE && level >= l.level
}

/////////////////////////////////////////////////////////////////////////////////////////

// Log writes one decorated line at the given level: colored badge, UTC
// timestamp, markup-compiled message text. The call is synchronous - when
// it returns the line has been handed to the sink. Messages below the
// threshold are discarded before any formatting work happens.
//
// Write errors are swallowed and sink panics are contained: logging is
// best-effort by contract and the logger stays usable whatever the sink
// does.
func (l *Logger) Log(level LogLevel, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.sync.outMtx.Lock()
	defer l.sync.outMtx.Unlock()
	buildLine(l.msgbuf, l.markup, level, StampUTC(time.Now()), msg, l.colors)
	l.flush()
}

// flush hands the composed buffer to the sink. The deferred recover keeps
// a panicking sink from unwinding through the logging call, so the write
// mutex is released normally and the logger stays usable.
//
// Must be called with outMtx held.
func (l *Logger) flush() {
	defer func() {
		recover() // a panicking sink counts as a failed write
	}()
	l.msgbuf.WriteTo(l.output) // best effort, write errors intentionally dropped
}

// Logf is Log with fmt.Sprintf formatting. The threshold check runs before
// the arguments are formatted, so disabled calls cost neither allocations
// nor Stringer side effects.
func (l *Logger) Logf(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.Log(level, fmt.Sprintf(format, args...))
}

// NewLine writes a bare line break to the sink, undecorated and not
// subject to the threshold. Useful to visually separate log sections.
// Goes through the same guarded flush as Log.
func (l *Logger) NewLine() {
	l.sync.outMtx.Lock()
	defer l.sync.outMtx.Unlock()
	l.msgbuf.Reset()
	l.msgbuf.WriteByte('\n')
	l.flush()
}

/////////////////////////////////////////////////////////////////////////////////////////
/*
Convenience level-specific helpers for common log levels. These are thin
wrappers around Log/Logf that provide inline hints in editors and
documentation tools. All of them share the Log guarantees: synchronous,
best-effort, filtered before formatting.
*/

// Logs a textual message at DEBUG level.
//
// Intended for developer-focused diagnostic output; written only when the
// threshold is LVL_DEBUG.
func (l *Logger) Debug(msg string) {
	l.Log(LVL_DEBUG, msg)
}

// Debugf logs a formatted message at DEBUG level. Arguments are not
// evaluated when the level is filtered out.
func (l *Logger) Debugf(format string, args ...any) {
	l.Logf(LVL_DEBUG, format, args...)
}

// Logs an informational message at INFO level (badge label "LOG").
//
// Use for normal operational messages.
func (l *Logger) Info(msg string) {
	l.Log(LVL_INFO, msg)
}

// Infof logs a formatted message at INFO level. Arguments are not
// evaluated when the level is filtered out.
func (l *Logger) Infof(format string, args ...any) {
	l.Logf(LVL_INFO, format, args...)
}

// Logs a warning message at WARN level.
//
// Use for recoverable or noteworthy conditions that deserve attention.
func (l *Logger) Warn(msg string) {
	l.Log(LVL_WARN, msg)
}

// Warnf logs a formatted message at WARN level. Arguments are not
// evaluated when the level is filtered out.
func (l *Logger) Warnf(format string, args ...any) {
	l.Logf(LVL_WARN, format, args...)
}

// Logs an error-level message.
//
// Use this when you have a formatted or constructed string that represents
// an error condition. Use
//
//	Err(e error)
//
// to log an error value instead of a string.
func (l *Logger) Error(msg string) {
	l.Log(LVL_ERROR, msg)
}

// Errorf logs a formatted message at ERROR level. Arguments are not
// evaluated when the level is filtered out.
func (l *Logger) Errorf(format string, args ...any) {
	l.Logf(LVL_ERROR, format, args...)
}

// Err logs an error value at ERROR level. Semantically equivalent to
// calling
//
//	Error(e.Error())
//
// but clearer at call sites when you already have an error object.
// Nil errors are ignored.
func (l *Logger) Err(e error) {
	if e != nil {
		l.Log(LVL_ERROR, e.Error())
	}
}
