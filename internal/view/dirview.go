package view

import (
	"github.com/trawlfm/trawl/internal/config"
	"github.com/trawlfm/trawl/internal/renderer"
)

// Entry is one already-sorted directory entry ready to display.
type Entry struct {
	Name    string
	Dir     bool
	Symlink bool
}

// DirView draws the entry listing with a reverse-video selection bar.
// The listing occupies the rows [0, height-1); the last row belongs to
// the status view.
type DirView struct {
	Entries  []Entry
	Selected int
	theme    config.Theme

	// offset is the index of the first visible entry; it follows the
	// selection so the bar stays on screen.
	offset int
}

// NewDirView creates a listing view drawing with theme colors.
func NewDirView(theme config.Theme) *DirView {
	return &DirView{theme: theme}
}

// rows returns how many listing rows fit on the screen.
func rows(s *renderer.Screen) int {
	_, h := s.Size()
	if h <= 1 {
		return h
	}
	return h - 1 // bottom row is the status bar
}

// ClampSelection keeps the selection inside the entry list after the
// entries change (directory switch, hidden toggle).
func (v *DirView) ClampSelection() {
	if v.Selected >= len(v.Entries) {
		v.Selected = len(v.Entries) - 1
	}
	if v.Selected < 0 {
		v.Selected = 0
	}
}

// MoveSelection moves the selection by delta, clamped to the list.
func (v *DirView) MoveSelection(delta int) {
	v.Selected += delta
	v.ClampSelection()
}

// Render writes the visible slice of entries into the screen's grid.
func (v *DirView) Render(s *renderer.Screen) {
	width, _ := s.Size()
	visible := rows(s)
	if visible <= 0 {
		return
	}

	// Scroll the window to keep the selection visible.
	if v.Selected < v.offset {
		v.offset = v.Selected
	}
	if v.Selected >= v.offset+visible {
		v.offset = v.Selected - visible + 1
	}

	for row := 0; row < visible; row++ {
		i := v.offset + row
		if i >= len(v.Entries) {
			fillLine(s, 0, row, width, renderer.DefaultStyle())
			continue
		}
		style := v.entryStyle(v.Entries[i], i == v.Selected)

		name := v.Entries[i].Name
		if v.Entries[i].Dir {
			name += "/"
		}
		x := drawText(s, 0, row, width, name, style)
		fillLine(s, x, row, width, style)
	}
}

// entryStyle picks the display style for one entry.
func (v *DirView) entryStyle(e Entry, selected bool) renderer.Style {
	style := renderer.DefaultStyle()
	switch {
	case e.Dir:
		style = style.WithFg(v.theme.Directory).WithAttr(renderer.AttrBold)
	case e.Symlink:
		style = style.WithFg(v.theme.Symlink)
	}
	if selected {
		style = style.Reverse()
	}
	return style
}
