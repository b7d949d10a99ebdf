package renderer

import "fmt"

// Color identifies one of the 16 standard terminal palette colors, or
// the terminal's own default color. The default color deliberately has
// no SGR code of its own: a cell whose color is default simply emits no
// color sequence, letting the attribute reset fall through to whatever
// the terminal considers its default foreground or background.
type Color struct {
	index uint8 // palette index 0-15
	def   bool  // terminal default; index is ignored
}

// ColorDefault is the terminal's own default color. Use it for both
// foreground and background to inherit the terminal scheme.
var ColorDefault = Color{def: true}

// The standard palette: the dark and bright tiers of the 8 ANSI colors.
var (
	ColorBlack   = Color{index: 0}
	ColorRed     = Color{index: 1}
	ColorGreen   = Color{index: 2}
	ColorYellow  = Color{index: 3}
	ColorBlue    = Color{index: 4}
	ColorMagenta = Color{index: 5}
	ColorCyan    = Color{index: 6}
	ColorWhite   = Color{index: 7}

	ColorBrightBlack   = Color{index: 8}
	ColorBrightRed     = Color{index: 9}
	ColorBrightGreen   = Color{index: 10}
	ColorBrightYellow  = Color{index: 11}
	ColorBrightBlue    = Color{index: 12}
	ColorBrightMagenta = Color{index: 13}
	ColorBrightCyan    = Color{index: 14}
	ColorBrightWhite   = Color{index: 15}
)

// Palette returns the 16 concrete colors in index order.
func Palette() [16]Color {
	var p [16]Color
	for i := range p {
		p[i] = Color{index: uint8(i)}
	}
	return p
}

// IsDefault reports whether this is the terminal default color.
func (c Color) IsDefault() bool {
	return c.def
}

// Index returns the palette index (0-15) of a concrete color.
// Calling Index on the default color is a caller bug.
func (c Color) Index() uint8 {
	if c.def {
		panic("renderer: Index called on default color")
	}
	return c.index
}

// fgCode returns the SGR parameter selecting this color as foreground:
// 30-37 for the dark tier, 90-97 for the bright tier.
// The default color has no code; asking for one is a caller bug, since
// default colors must be expressed as the absence of a color sequence.
func (c Color) fgCode() int {
	if c.def {
		panic("renderer: fgCode called on default color")
	}
	if c.index < 8 {
		return 30 + int(c.index)
	}
	return 90 + int(c.index-8)
}

// bgCode returns the SGR parameter selecting this color as background:
// 40-47 for the dark tier, 100-107 for the bright tier.
func (c Color) bgCode() int {
	if c.def {
		panic("renderer: bgCode called on default color")
	}
	if c.index < 8 {
		return 40 + int(c.index)
	}
	return 100 + int(c.index-8)
}

// String returns a human-readable color name, for logs and errors.
func (c Color) String() string {
	if c.def {
		return "default"
	}
	names := [...]string{
		"black", "red", "green", "yellow",
		"blue", "magenta", "cyan", "white",
	}
	if c.index < 8 {
		return names[c.index]
	}
	if c.index < 16 {
		return "bright-" + names[c.index-8]
	}
	return fmt.Sprintf("color(%d)", c.index)
}
