package taglog

/*
Line composition: converts one accepted message into the final decorated
byte sequence. Responsible for:
 - the colored level badge (background block with the three-letter label)
 - the bracketed UTC timestamp in the level's accent color
 - compiling message markup with the level text color as restore sequence
 - the plain (colorless) variant for non-terminal sinks
*/

import "bytes"

// _ANSI_LABEL_FG is the truecolor black foreground used inside the badge
// so the label stays readable on every badge background.
const _ANSI_LABEL_FG = "38;2;0;0;0"

// buildLine appends one finished log line for the given level into
// outBuffer (reset first) and returns the same buffer. The stamp is
// rendered by the caller so tests can pin it.
//
// Colored shape:
//
//	ESC[0;<bg>;38;2;0;0;0m <label> ESC[0m ESC[<date>m[<stamp>] ESC[<text>m<message> ESC[0m\n
//
// where <message> is the markup-compiled text and the level text color
// doubles as the restore sequence after every markup span. The plain shape
// drops every escape and strips markup instead of compiling it:
//
//	<label> [<stamp>] <message>\n
func buildLine(outBuffer *bytes.Buffer, markup *Compiler, level LogLevel, stamp, msg string, colors bool) *bytes.Buffer {
	outBuffer.Reset()
	if markup == nil {
		markup = &Compiler{} // zero value compiles without aliases
	}
	level = normLevel(level)
	if !colors {
		outBuffer.WriteString(LevelLabels[level])
		outBuffer.WriteString(" [")
		outBuffer.WriteString(stamp)
		outBuffer.WriteString("] ")
		outBuffer.WriteString(markup.Strip(msg))
		outBuffer.WriteByte('\n')
		return outBuffer
	}
	restore := ""
	if LevelTextColors[level] != "" {
		restore = ANSI_COL_PRFX + LevelTextColors[level] + ANSI_COL_SUFX
	}
	// level badge
	outBuffer.WriteString(ANSI_COL_PRFX)
	outBuffer.WriteString("0;")
	outBuffer.WriteString(LevelBackColors[level])
	outBuffer.WriteByte(';')
	outBuffer.WriteString(_ANSI_LABEL_FG)
	outBuffer.WriteString(ANSI_COL_SUFX)
	outBuffer.WriteByte(' ')
	outBuffer.WriteString(LevelLabels[level])
	outBuffer.WriteByte(' ')
	outBuffer.WriteString(ANSI_COL_RESET)
	outBuffer.WriteByte(' ')
	// timestamp
	if LevelDateColors[level] != "" {
		outBuffer.WriteString(ANSI_COL_PRFX)
		outBuffer.WriteString(LevelDateColors[level])
		outBuffer.WriteString(ANSI_COL_SUFX)
	}
	outBuffer.WriteByte('[')
	outBuffer.WriteString(stamp)
	outBuffer.WriteString("] ")
	// message text
	outBuffer.WriteString(restore)
	outBuffer.WriteString(markup.Compile(msg, restore))
	outBuffer.WriteByte(' ')
	outBuffer.WriteString(ANSI_COL_RESET)
	outBuffer.WriteByte('\n')
	return outBuffer
}
