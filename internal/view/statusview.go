package view

import (
	"fmt"

	"github.com/trawlfm/trawl/internal/config"
	"github.com/trawlfm/trawl/internal/renderer"
)

// StatusView draws the bottom status bar: metadata of the selected
// entry on the left, list position on the right.
type StatusView struct {
	Left  string // selected entry metadata (fileinfo.Info.StatusLine)
	theme config.Theme

	// Position within the listing, shown as "index/total".
	Index int
	Total int
}

// NewStatusView creates a status bar drawing with theme colors.
func NewStatusView(theme config.Theme) *StatusView {
	return &StatusView{theme: theme}
}

// Render writes the status bar into the bottom row of the grid.
func (v *StatusView) Render(s *renderer.Screen) {
	width, height := s.Size()
	if height < 2 {
		return
	}
	y := height - 1
	style := renderer.DefaultStyle().
		WithFg(v.theme.StatusFg).
		WithBg(v.theme.StatusBg)

	right := fmt.Sprintf("%d/%d", v.Index, v.Total)

	x := drawText(s, 0, y, width, v.Left, style)
	fillLine(s, x, y, width, style)

	start := width - len(right)
	if start > x {
		drawText(s, start, y, width, right, style)
	}
}
