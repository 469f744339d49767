package taglog

/*
Style token classification. A tag body is a comma-separated list of style
tokens; parseTokens reduces it to a styleSet and sequence() renders the set
as an SGR parameter list.
*/

import "strings"

const (
	// SGR parameter fragments for the supported text modifiers.
	SGR_BOLD      = "1"
	SGR_ITALIC    = "3"
	SGR_UNDERLINE = "4"
)

// Foreground SGR codes for the supported color names. Alternate names map
// to the same code ("orange" renders as yellow, "purple" as magenta).
var colorCodes = map[string]string{
	"black":   "30",
	"red":     "31",
	"green":   "32",
	"yellow":  "33",
	"orange":  "33",
	"blue":    "34",
	"magenta": "35",
	"purple":  "35",
	"cyan":    "36",
	"white":   "37",
	"gray":    "90",
}

// styleSet is the reduced state of one parsed tag.
type styleSet struct {
	bold      bool
	italic    bool
	underline bool
	color     string // foreground SGR code, empty when no color token matched
}

// parseTokens splits a token list on commas and classifies each piece
// case-insensitively. Modifiers accumulate (duplicates are idempotent),
// the first recognized color wins, unknown tokens and empty pieces are
// silently ignored.
func parseTokens(list string) (set styleSet) {
	for tok := range strings.SplitSeq(list, ",") {
		switch tok = strings.ToLower(strings.TrimSpace(tok)); tok {
		case "":
			// skip empties ("bold,,red" etc.)
		case "bold", "b":
			set.bold = true
		case "italic", "i":
			set.italic = true
		case "underline", "u":
			set.underline = true
		default:
			if set.color == "" {
				if code, found := colorCodes[tok]; found {
					set.color = code
				}
			}
		}
	}
	return set
}

// sequence renders the SGR parameter list for the set. Parts are emitted
// in fixed order (bold, italic, underline, color) regardless of the token
// order in the tag. Returns "" for the empty set.
func (set styleSet) sequence() string {
	seq := ""
	if set.bold {
		seq += ";" + SGR_BOLD
	}
	if set.italic {
		seq += ";" + SGR_ITALIC
	}
	if set.underline {
		seq += ";" + SGR_UNDERLINE
	}
	if set.color != "" {
		seq += ";" + set.color
	}
	if seq == "" {
		return ""
	}
	return seq[1:] // cut the leading separator
}
