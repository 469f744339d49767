package taglog

/*
The markup compiler: rewrites <tag>content</> spans into ANSI SGR escape
sequences in a single pass over the input.

A tag body is either the name of a registered alias (matched exactly, no
trimming) or an inline comma-separated token list. The computed sequence
wraps the span content; after the closing reset a caller-supplied restore
sequence is re-emitted so the surrounding text keeps its own styling.

Anything that is not a complete <tag>content</> span is not markup and is
copied through byte-identically: a '<' with no '>' after it, a tag with no
terminator, raw bytes that are not valid UTF-8. Compile and Strip are
total functions over arbitrary byte strings - no errors, no panics.
*/

import (
	"strings"
	"unicode/utf8"
)

// MARKUP_TERMINATOR closes every styled span. There is no nesting and no
// escaping: span content is raw text up to the first terminator.
const MARKUP_TERMINATOR = "</>"

// AliasSource resolves a tag body to a registered token list. Implemented
// by *AliasRegistry; nil means no aliases resolve.
type AliasSource interface {
	Lookup(name string) (string, bool)
}

// Compiler rewrites markup spans. The zero value works without aliases;
// NewCompiler binds an alias source.
type Compiler struct {
	aliases AliasSource
}

// NewCompiler returns a Compiler resolving tag bodies through the given
// alias source (may be nil).
func NewCompiler(aliases AliasSource) *Compiler {
	return &Compiler{aliases: aliases}
}

// Compile rewrites every complete <tag>content</> span of the input into
// ANSI-wrapped content and passes everything else through unchanged. The
// restore sequence (may be empty) is appended after each span's closing
// reset so the text that follows regains the caller's base styling.
//
// Tags reducing to no recognized style contribute their content with no
// escapes at all (the span markers are still consumed).
func (c *Compiler) Compile(input, restore string) string {
	return c.rewrite(input, restore, true)
}

// Strip is Compile without the escapes: recognized spans are replaced by
// their bare content, malformed markup passes through byte-identically.
// Used for plain (colorless) sinks.
func (c *Compiler) Strip(input string) string {
	return c.rewrite(input, "", false)
}

// rewrite is the single-pass scanner shared by Compile and Strip.
func (c *Compiler) rewrite(input, restore string, styled bool) string {
	if strings.IndexByte(input, '<') < 0 {
		return input // fast path: nothing that could open a span
	}
	var out strings.Builder
	out.Grow(len(input) + len(ANSI_COL_RESET))
	i := 0
	for i < len(input) {
		if input[i] == '<' {
			if gt := strings.IndexByte(input[i+1:], '>'); gt >= 0 {
				tag := input[i+1 : i+1+gt]
				rest := input[i+gt+2:]
				if end := strings.Index(rest, MARKUP_TERMINATOR); end >= 0 {
					content := rest[:end]
					seq := ""
					if styled {
						seq = c.resolveTag(tag).sequence()
					}
					if seq == "" {
						out.WriteString(content)
					} else {
						out.WriteString(ANSI_COL_PRFX)
						out.WriteString(seq)
						out.WriteString(ANSI_COL_SUFX)
						out.WriteString(content)
						out.WriteString(ANSI_COL_RESET)
						out.WriteString(restore)
					}
					i += gt + 2 + end + len(MARKUP_TERMINATOR)
					continue
				}
			}
		}
		// Not a complete span: copy one code point verbatim and rescan right
		// after it, so a later well-formed span on the same line still compiles.
		_, size := utf8.DecodeRuneInString(input[i:])
		out.WriteString(input[i : i+size])
		i += size
	}
	return out.String()
}

// resolveTag expands the raw tag body through the alias source (exact,
// case-sensitive match) and classifies the resulting token list.
func (c *Compiler) resolveTag(tag string) styleSet {
	tokens := tag
	if c.aliases != nil {
		if expansion, found := c.aliases.Lookup(tag); found {
			tokens = expansion
		}
	}
	return parseTokens(tokens)
}
