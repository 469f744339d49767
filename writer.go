package taglog

/*********************************************************************************
io.Writer interface implementation

The Logger implements io.Writer so it can be used with fmt.Fprintf, the
standard log package and other io-based helpers. The semantics are:
 - Lvl(level) sets the current level used by subsequent Write calls.
 - Write(p) logs the bytes as one message at the currently set curLvl and
   reports len(p) even when the threshold filters the message out (the
   logger consumes like io.Discard in that case).

This allows patterns like:

	fmt.Fprintf(logger.Lvl(LVL_WARN), "disk low: %d%%", percent)
	log.SetOutput(logger.Lvl(LVL_INFO))

But remember that Lvl mutates the logger, so pick one level per logger
when feeding concurrent writers.
*********************************************************************************/

// Lvl sets the logger's current level (used by Write/fmt.Fprintf) and
// returns the same logger for convenient chaining.
func (l *Logger) Lvl(level LogLevel) *Logger {
	l.curLvl = normLevel(level)
	return l
}

// Write implements io.Writer. It forwards the provided bytes as one log
// message at the logger's curLvl. One trailing line break is trimmed so
// Fprintln-style callers don't produce blank lines (every logged line
// breaks on its own). A nil payload is a zero-length write with no error.
func (l *Logger) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	l.Log(l.curLvl, msg)
	return len(p), nil
}
