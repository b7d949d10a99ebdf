package renderer

import "github.com/mattn/go-runewidth"

// Cell is one grid position: a character plus its style.
// Cells compare by value; the diff pass relies on that.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// NewCell creates a cell with the given rune and default style.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// Width returns the display width of the cell's rune in terminal
// columns: 0 for control characters, 2 for wide (CJK) characters,
// 1 otherwise.
func (c Cell) Width() int {
	return runewidth.RuneWidth(c.Rune)
}
