package clr

/*
codes.go

The static escape-code table: every built-in style is a Style created once at
package load over a fixed SGR fragment. Nothing here is mutable after init.

Naming follows the usual terminal convention: plain names are the 8 base
foreground colors, Bright* the high-intensity set, Bg* the background
variants. Attribute styles (Bold, Italic, ...) stack with any color.
*/

import "strconv"

// sgr builds a Style over a raw SGR parameter fragment (the part between
// ANSI_COL_PRFX and ANSI_COL_SUFX, e.g. "1;31").
func sgr(spec string) Style {
	return makeStyle(ANSI_COL_PRFX + spec + ANSI_COL_SUFX)
}

// Text attributes.
var (
	Reset     = makeStyle(ANSI_COL_RESET)
	Bold      = sgr("1")
	Dim       = sgr("2")
	Italic    = sgr("3")
	Underline = sgr("4")
	Blink     = sgr("5")
	Inverse   = sgr("7")
	Hidden    = sgr("8")
	Strike    = sgr("9")
)

// Foreground colors.
var (
	Black   = sgr("30")
	Red     = sgr("31")
	Green   = sgr("32")
	Yellow  = sgr("33")
	Blue    = sgr("34")
	Magenta = sgr("35")
	Cyan    = sgr("36")
	White   = sgr("37")

	Gray          = sgr("90") // a.k.a. bright black
	BrightRed     = sgr("91")
	BrightGreen   = sgr("92")
	BrightYellow  = sgr("93")
	BrightBlue    = sgr("94")
	BrightMagenta = sgr("95")
	BrightCyan    = sgr("96")
	BrightWhite   = sgr("97")
)

// Background colors.
var (
	BgBlack   = sgr("40")
	BgRed     = sgr("41")
	BgGreen   = sgr("42")
	BgYellow  = sgr("43")
	BgBlue    = sgr("44")
	BgMagenta = sgr("45")
	BgCyan    = sgr("46")
	BgWhite   = sgr("47")

	BgGray          = sgr("100")
	BgBrightRed     = sgr("101")
	BgBrightGreen   = sgr("102")
	BgBrightYellow  = sgr("103")
	BgBrightBlue    = sgr("104")
	BgBrightMagenta = sgr("105")
	BgBrightCyan    = sgr("106")
	BgBrightWhite   = sgr("107")
)

// Color256 returns a Style selecting one of the 256 xterm palette colors for
// the foreground. The uint8 parameter makes out-of-range values
// unrepresentable, so no runtime clamping is needed.
func Color256(n uint8) Style {
	return sgr("38;5;" + strconv.Itoa(int(n)))
}

// BgColor256 is the background variant of Color256.
func BgColor256(n uint8) Style {
	return sgr("48;5;" + strconv.Itoa(int(n)))
}

// RGB returns a Style selecting a 24-bit truecolor foreground.
func RGB(r, g, b uint8) Style {
	return sgr("38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)))
}

// BgRGB is the background variant of RGB.
func BgRGB(r, g, b uint8) Style {
	return sgr("48;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)))
}

// Palettes for the rotating multi-character styles. rainbow256 walks the
// xterm cube for smoother hues, rainbow16 sticks to the base colors for
// terminals without 256-color support.
var (
	rainbow256 = []string{"196", "208", "226", "46", "51", "21", "129"}
	rainbow16  = []string{"31", "33", "32", "36", "34", "35"}
)

// Rainbow maps each rune of the input to a rotating 256-palette color and
// appends exactly one trailing reset at the end (not per rune). With no
// arguments it returns an empty string: there is no single bare code to
// compose with.
var Rainbow = rotating(rainbow256, "38;5;")

// Rainbow16 is Rainbow restricted to the 16-color base palette.
var Rainbow16 = rotating(rainbow16, "")
