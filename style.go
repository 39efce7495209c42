package clr

/*
style.go

The style-function factory and the stripping helper.

A Style invoked with no arguments yields its bare escape code so styles can
be stacked by plain concatenation:

	warn := clr.Stack(clr.Bold, clr.Yellow)
	warn("careful")   // bold+yellow code, text, single reset

Nesting styles the function-call way (Bold(Red("x"))) also works but each
layer adds its own trailing reset; Stack keeps a single reset that closes
all active codes simultaneously.
*/

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// makeStyle wraps a raw escape code into a Style: f() == code,
// f(text) == code + text + ANSI_COL_RESET.
func makeStyle(code string) Style {
	return func(text ...string) string {
		if len(text) == 0 {
			return code
		}
		return code + strings.Join(text, "") + ANSI_COL_RESET
	}
}

// Compose builds a Style from an arbitrary text->text composition. The
// zero-argument form returns the composer applied to an empty string, so a
// composed style interpolated bare renders its empty-text form (kept for
// uniformity with the bare-code convention of plain styles).
func Compose(apply func(string) string) Style {
	return func(text ...string) string {
		return apply(strings.Join(text, ""))
	}
}

// Stack concatenates the bare codes of the given styles into one named
// style. The result wraps text with all codes up front and a single
// trailing reset.
func Stack(styles ...Style) Style {
	codes := ""
	for _, s := range styles {
		if s != nil {
			codes += s()
		}
	}
	return makeStyle(codes)
}

// rotating builds the multi-character rainbow styles: each rune gets the
// next palette entry, one reset closes the whole run. prefix is the SGR
// parameter prefix put before each palette entry ("38;5;" for the 256
// palette, empty for base-color specs).
//
// The input bytes are emitted as-is (the rune is decoded only to know how
// many bytes one color covers), so styling stays byte-preserving even on
// invalid UTF-8 and Strip recovers the exact input.
func rotating(palette []string, prefix string) Style {
	return func(text ...string) string {
		s := strings.Join(text, "")
		if len(s) == 0 {
			return ""
		}
		var b strings.Builder
		n := 0
		for i := 0; i < len(s); {
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(ANSI_COL_PRFX + prefix + palette[n%len(palette)] + ANSI_COL_SUFX)
			b.WriteString(s[i : i+size])
			i += size
			n++
		}
		b.WriteString(ANSI_COL_RESET)
		return b.String()
	}
}

// stripPattern removes ANSI CSI sequences and OSC-8 hyperlink sequences
// (including their BEL or ST terminators).
var stripPattern = regexp.MustCompile("\x1b\\[[0-9;?]*[@-~]|\x1b\\]8;[^\x07\x1b]*(?:\x07|\x1b\\\\)")

// Strip returns s with all escape sequences removed. On text containing no
// escape sequences Strip is the identity.
func Strip(s string) string {
	return stripPattern.ReplaceAllString(s, "")
}
