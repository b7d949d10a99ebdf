// Package view draws the file-manager surfaces: the directory listing
// and the status bar. Views only mutate the screen's logical grid; the
// renderer decides what actually reaches the terminal.
package view

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/trawlfm/trawl/internal/renderer"
)

// drawText writes text starting at (x, y) in the given style, stopping
// at maxX. It walks grapheme clusters so combining sequences stay
// together and wide characters claim the two columns they render in.
// Each cluster is folded to its precomposed form, since a cell carries
// a single rune ("e" + U+0301 becomes "é"). It returns the column after
// the last cell written.
func drawText(s *renderer.Screen, x, y, maxX int, text string, style renderer.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := norm.NFC.String(g.Str())
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetCellStyle(x, y, []rune(cluster)[0], style)
		// A wide character owns its neighbor column; pad it so stale
		// content underneath cannot show through.
		for i := 1; i < w; i++ {
			s.SetCellStyle(x+i, y, ' ', style)
		}
		x += w
	}
	return x
}

// fillLine writes style-colored spaces from x up to maxX.
func fillLine(s *renderer.Screen, x, y, maxX int, style renderer.Style) {
	for ; x < maxX; x++ {
		s.SetCellStyle(x, y, ' ', style)
	}
}
