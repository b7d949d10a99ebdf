package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrAlreadyActive is returned by Activate when the screen already owns
// the terminal. Activation and deactivation bracket a session exactly
// once each.
var ErrAlreadyActive = errors.New("screen already active")

// Screen is the double-buffered renderer. The current grid holds the
// logical scene the caller is building; the previous grid mirrors what
// the terminal physically shows. Render diffs the two, emits escape
// sequences only for cells that changed, and resynchronizes previous to
// current once the frame has actually reached the terminal.
//
// A Screen is single-owner: it provides no internal locking and must be
// driven from one goroutine.
type Screen struct {
	out    io.Writer
	inFd   int // -1 when not attached to a terminal
	raw    *term.State
	active bool

	current  *Grid
	previous *Grid
	buf      bytes.Buffer // queued frame bytes, reused across renders

	cursorVisible bool
	cursorX       int
	cursorY       int

	// lastStyle is the style most recently sent to the terminal. It
	// survives across render passes so runs of same-styled cells cost
	// one SGR sequence even when they span frames.
	lastStyle Style
}

// New creates a Screen reading keys from in and drawing to out. The
// terminal dimensions are queried from out exactly once; the grids keep
// that size for the Screen's lifetime. After a terminal resize the
// caller builds a fresh Screen.
func New(in, out *os.File) (*Screen, error) {
	width, height, err := term.GetSize(int(out.Fd()))
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	s := newScreen(out, width, height)
	s.inFd = int(in.Fd())
	return s, nil
}

// NewWithSize creates a Screen of explicit dimensions writing to an
// arbitrary sink. It is not attached to a terminal, so Activate skips
// raw input mode. Intended for tests and non-interactive output.
func NewWithSize(out io.Writer, width, height int) *Screen {
	return newScreen(out, width, height)
}

func newScreen(out io.Writer, width, height int) *Screen {
	return &Screen{
		out:       out,
		inFd:      -1,
		current:   NewGrid(width, height),
		previous:  NewGrid(width, height),
		lastStyle: DefaultStyle(),
	}
}

// Size returns the fixed grid dimensions established at construction.
func (s *Screen) Size() (width, height int) {
	return s.current.Size()
}

// Activate acquires the terminal: raw input mode (no line buffering or
// echo) and the alternate screen buffer, with the cursor hidden. It
// must be balanced by Deactivate before the process exits.
func (s *Screen) Activate() error {
	if s.active {
		return ErrAlreadyActive
	}
	if s.inFd >= 0 {
		state, err := term.MakeRaw(s.inFd)
		if err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
		s.raw = state
	}
	s.buf.Write(altScreenEnter)
	s.buf.Write(cursorHide)
	_, err := s.out.Write(s.buf.Bytes())
	s.buf.Reset()
	if err != nil {
		s.restoreRaw()
		return err
	}
	s.active = true
	return nil
}

// Deactivate releases the terminal: attributes reset, cursor shown,
// alternate screen left, raw mode restored. It is idempotent so cleanup
// paths (defer, signal handlers, panic recovery) can all call it.
func (s *Screen) Deactivate() error {
	if !s.active {
		return nil
	}
	s.active = false
	s.buf.Write(sgrReset)
	s.buf.Write(cursorShow)
	s.buf.Write(altScreenLeave)
	_, err := s.out.Write(s.buf.Bytes())
	s.buf.Reset()
	s.restoreRaw()
	return err
}

func (s *Screen) restoreRaw() {
	if s.raw != nil {
		term.Restore(s.inFd, s.raw)
		s.raw = nil
	}
}

// SetCell overwrites one cell of the current grid with r in the default
// style. No output occurs until the next Render; only the final value
// before a render matters.
func (s *Screen) SetCell(x, y int, r rune) {
	s.current.Set(x, y, NewCell(r))
}

// SetCellStyle overwrites one cell of the current grid with r in the
// given style.
func (s *Screen) SetCellStyle(x, y int, r rune, style Style) {
	s.current.Set(x, y, Cell{Rune: r, Style: style})
}

// CellAt returns the logical content of one cell of the current grid.
func (s *Screen) CellAt(x, y int) Cell {
	return s.current.Get(x, y)
}

// ShowCursor requests a visible cursor at (x, y), applied at the next
// Render. It does not move the physical cursor by itself.
func (s *Screen) ShowCursor(x, y int) {
	s.cursorVisible = true
	s.cursorX = x
	s.cursorY = y
}

// HideCursor requests a hidden cursor, applied at the next Render.
func (s *Screen) HideCursor() {
	s.cursorVisible = false
}

// Clear resets every cell of the current grid to the empty cell. Like
// the cell mutators it produces no output until the next Render.
func (s *Screen) Clear() {
	s.current.Fill(EmptyCell())
}

// Render is the diff-and-paint pass. It walks both grids in row-major
// order, queues output only where the current cell differs from the
// previous one, appends exactly one cursor command, and flushes the
// whole frame with a single write.
//
// The previous grid and the remembered terminal style are committed
// only after the frame has been written successfully. On a write error
// the frame's bytes are discarded and nothing is resynchronized, so the
// next Render repaints the cells the terminal never received.
func (s *Screen) Render() error {
	width, height := s.current.Size()
	last := s.lastStyle

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			cell := s.current.cells[row+x]
			if cell == s.previous.cells[row+x] {
				continue
			}
			if cell.Style != last {
				s.writeStyle(cell.Style)
				last = cell.Style
			}
			writeCursorPos(&s.buf, x, y)
			s.buf.WriteRune(cell.Rune)
		}
	}

	if s.cursorVisible {
		writeCursorPos(&s.buf, s.cursorX, s.cursorY)
		s.buf.Write(cursorShow)
	} else {
		s.buf.Write(cursorHide)
	}

	_, err := s.out.Write(s.buf.Bytes())
	s.buf.Reset()
	if err != nil {
		return err
	}

	s.previous.copyFrom(s.current)
	s.lastStyle = last
	return nil
}

// writeStyle queues the sequences switching the terminal to style:
// a full attribute reset, the style's attributes, then at most one
// color sequence. Default colors emit nothing; the reset already put
// the terminal at its own defaults.
func (s *Screen) writeStyle(style Style) {
	s.buf.Write(sgrReset)
	if style.Attr.Has(AttrBold) {
		s.buf.Write(sgrBold)
	}
	if style.Attr.Has(AttrDim) {
		s.buf.Write(sgrDim)
	}
	if style.Attr.Has(AttrUnderlined) {
		s.buf.Write(sgrUnderlined)
	}
	if style.Attr.Has(AttrReverse) {
		s.buf.Write(sgrReverse)
	}
	if style.Attr.Has(AttrHidden) {
		s.buf.Write(sgrHidden)
	}

	fgSet := !style.Fg.IsDefault()
	bgSet := !style.Bg.IsDefault()
	switch {
	case fgSet && bgSet:
		writeFgBg(&s.buf, style.Fg, style.Bg)
	case fgSet:
		writeFg(&s.buf, style.Fg)
	case bgSet:
		writeBg(&s.buf, style.Bg)
	}
}
