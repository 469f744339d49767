package taglog

/*
Console capability glue. The logger itself only emits ANSI bytes; these
host-side helpers make those bytes render: enabling virtual terminal
processing on legacy Windows consoles and deciding whether a sink wants
colored lines at all.
*/

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// EnableConsole switches the console behind f into ANSI (virtual terminal)
// mode where the platform requires it. The returned restore function
// undoes the change; on platforms that need no setup it is a non-nil
// no-op. Call once per process for each console sink:
//
//	restore, err := taglog.EnableConsole(os.Stdout)
//	if err == nil {
//	    defer restore()
//	}
func EnableConsole(f *os.File) (restore func() error, err error) {
	return termenv.EnableVirtualTerminalProcessing(termenv.NewOutput(f))
}

// Profile reports the color capability of the current terminal, preferring
// explicit environment hints (COLORTERM, then TERM) over termenv's own
// detection.
func Profile() termenv.Profile {
	return detectProfile(os.Getenv)
}

// detectProfile is Profile with the environment injected for tests.
func detectProfile(getenv func(string) string) termenv.Profile {
	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	}
	termName := strings.ToLower(getenv("TERM"))
	switch {
	case strings.Contains(termName, "256color"):
		return termenv.ANSI256
	case termName == "dumb":
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// WantColor reports whether colored lines make sense for f: it must be a
// terminal and the detected profile must support styling. Typical wiring:
//
//	logger := taglog.Init().SetColors(taglog.WantColor(os.Stdout))
func WantColor(f *os.File) bool {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return Profile() != termenv.Ascii
}
