package renderer

// Attribute is a bitset of text attributes (bold, dim, etc.).
type Attribute uint8

// Text attribute flags.
const (
	AttrNone       Attribute = 0
	AttrBold       Attribute = 1 << iota // Bold/bright text
	AttrDim                              // Faint/dim text
	AttrUnderlined                       // Underlined text
	AttrReverse                          // Reverse video (swap fg/bg)
	AttrHidden                           // Hidden/invisible text
)

// Has reports whether the attribute set contains every flag of attr.
// It is a subset test, not an equality test: AttrBold|AttrUnderlined
// has AttrBold, but AttrBold does not have AttrBold|AttrUnderlined.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr == attr
}

// With returns a new attribute set with the given flags added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given flags removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Style is the visual appearance of one cell: attributes plus
// foreground and background colors. Styles compare by value.
type Style struct {
	Attr Attribute
	Fg   Color
	Bg   Color
}

// DefaultStyle returns the terminal's own style: no attributes,
// default foreground, default background.
func DefaultStyle() Style {
	return Style{
		Attr: AttrNone,
		Fg:   ColorDefault,
		Bg:   ColorDefault,
	}
}

// WithAttr returns a copy of the style with the given attributes added.
func (s Style) WithAttr(attr Attribute) Style {
	s.Attr |= attr
	return s
}

// WithFg returns a copy of the style with the given foreground color.
func (s Style) WithFg(fg Color) Style {
	s.Fg = fg
	return s
}

// WithBg returns a copy of the style with the given background color.
func (s Style) WithBg(bg Color) Style {
	s.Bg = bg
	return s
}

// Reverse returns a copy of the style with reverse video added.
func (s Style) Reverse() Style {
	s.Attr |= AttrReverse
	return s
}

// IsDefault reports whether this is the default style.
func (s Style) IsDefault() bool {
	return s == DefaultStyle()
}
