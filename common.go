package taglog

/*
Core data types, package-wide constants and shared helpers:
  - basetype and the LogLevel enum with normalization helpers
  - per-level string tables (labels, badge/timestamp/text colors) used by
    the line composer
  - ANSI escape building blocks
  - level name parsing
*/

import "strings"

type basetype byte // underlying byte-sized representation used for enums

type LogLevel basetype // Logger severity (alias for byte)

// LevelMap is a fixed-size array with one entry per log level. Used for
// level names, labels and color fragments.
type LevelMap [_LVL_MAX_for_checks_only]string

/////////////////////////////////////////////////////////////////////////////////////////

const (
	// Log level values. The trailing _LVL_MAX_for_checks_only is used as an
	// exclusive upper bound for normalization checks.
	LVL_DEBUG LogLevel = iota
	LVL_INFO
	LVL_WARN
	LVL_ERROR
	LVL_NONE
	_LVL_MAX_for_checks_only
)

const (
	// Default values for short init forms
	DEFAULT_LOG_LEVEL = LVL_DEBUG
	DEFAULT_OUT_BUFF  = 256 // initial buffer size for composed line text
	DEFAULT_ENV_KEY   = "LOG_LEVEL"
	DEFAULT_ENV_FILE  = ".env"
)

const (
	// ANSI colored text fragment prefix/suffix. For a colored piece of text
	// the sequence will be:
	// ANSI_COL_PRFX + colorSpec + ANSI_COL_SUFX + text + ANSI_COL_RESET
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
)

/////////////////////////////////////////////////////////////////////////////////////////

// Full level names, also accepted by ParseLevel (case-insensitively).
var LevelNames = &LevelMap{
	"DEBUG", //LVL_DEBUG
	"INFO",  //LVL_INFO
	"WARN",  //LVL_WARN
	"ERROR", //LVL_ERROR
	"NONE",  //LVL_NONE
}

// Three-letter labels shown in the colored level badge.
var LevelLabels = &LevelMap{
	"DBG", //LVL_DEBUG
	"LOG", //LVL_INFO
	"WRN", //LVL_WARN
	"ERR", //LVL_ERROR
	"",    //LVL_NONE
}

// Badge background SGR codes per level.
var LevelBackColors = &LevelMap{
	"100", //LVL_DEBUG
	"44",  //LVL_INFO
	"43",  //LVL_WARN
	"41",  //LVL_ERROR
	"0",   //LVL_NONE
}

// Timestamp foreground SGR codes per level (empty = no timestamp coloring).
var LevelDateColors = &LevelMap{
	"90", //LVL_DEBUG
	"34", //LVL_INFO
	"33", //LVL_WARN
	"31", //LVL_ERROR
	"",   //LVL_NONE
}

// Message text foreground SGR codes per level (empty = terminal default).
var LevelTextColors = &LevelMap{
	"30", //LVL_DEBUG
	"37", //LVL_INFO
	"33", //LVL_WARN
	"31", //LVL_ERROR
	"",   //LVL_NONE
}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided LogLevel is within the valid range
func normLevel(level LogLevel) LogLevel {
	return norm_byte(level, _LVL_MAX_for_checks_only, DEFAULT_LOG_LEVEL)
}

// String returns the full level name ("DEBUG".."NONE").
func (level LogLevel) String() string {
	return LevelNames[normLevel(level)]
}

// ParseLevel maps a level name to its LogLevel value. Matching is
// case-insensitive and ignores surrounding whitespace; anything
// unrecognized (including an empty string) falls back to DEFAULT_LOG_LEVEL.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LVL_DEBUG
	case "info":
		return LVL_INFO
	case "warn":
		return LVL_WARN
	case "error":
		return LVL_ERROR
	case "none":
		return LVL_NONE
	}
	return DEFAULT_LOG_LEVEL
}
