package renderer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// render runs one pass and returns the exact bytes written to the sink.
func render(t *testing.T, s *Screen, out *bytes.Buffer) string {
	t.Helper()
	out.Reset()
	if err := s.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return out.String()
}

func TestRenderSingleCell(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 4, 5)

	s.SetCell(0, 0, 'a')
	got := render(t, s, &out)

	// Default style matches the last-emitted style, so the frame is a
	// bare cursor move, the character, and the final cursor command.
	want := "\x1b[1;1Ha\x1b[?25l"
	if got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestRenderNoChangesEmitsOnlyCursorCommand(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 10, 4)

	s.SetCell(3, 2, 'x')
	render(t, s, &out)

	got := render(t, s, &out)
	if got != "\x1b[?25l" {
		t.Errorf("unchanged frame = %q, want only the cursor command", got)
	}
}

func TestRenderFinalStateOnlyDiffing(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 6, 3)

	// Mutate and restore before rendering: the diff sees no change.
	s.SetCell(1, 1, 'q')
	s.SetCell(1, 1, ' ')
	got := render(t, s, &out)
	if got != "\x1b[?25l" {
		t.Errorf("restored cell still painted: %q", got)
	}
}

func TestRenderStyleCoalescing(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 6, 4)

	bold := DefaultStyle().WithAttr(AttrBold).WithFg(ColorRed)
	s.SetCellStyle(0, 2, 'A', bold)
	s.SetCellStyle(1, 2, 'B', bold)
	got := render(t, s, &out)

	// One attribute-reset + bold + foreground sequence for the first
	// cell; the adjacent cell reuses the emitted style.
	want := "\x1b[0m\x1b[1m\x1b[31m\x1b[3;1HA\x1b[3;2HB\x1b[?25l"
	if got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestRenderStylePersistsAcrossPasses(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 6, 2)

	st := DefaultStyle().WithFg(ColorGreen)
	s.SetCellStyle(0, 0, 'A', st)
	render(t, s, &out)

	// Same style in the next frame: no SGR sequence is re-sent.
	s.SetCellStyle(1, 0, 'B', st)
	got := render(t, s, &out)
	want := "\x1b[1;2HB\x1b[?25l"
	if got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestRenderRepeatedIdenticalPaint(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 6, 2)

	bold := DefaultStyle().WithAttr(AttrBold).WithFg(ColorRed)
	s.SetCellStyle(2, 1, 'R', bold)
	first := render(t, s, &out)
	if !strings.Contains(first, "\x1b[0m\x1b[1m\x1b[31m") {
		t.Fatalf("first paint missing style emission: %q", first)
	}

	// Painting the identical cell again must emit nothing further.
	s.SetCellStyle(2, 1, 'R', bold)
	got := render(t, s, &out)
	if got != "\x1b[?25l" {
		t.Errorf("repeated identical paint emitted %q", got)
	}
}

func TestRenderColorSequences(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string // expected SGR prefix before the cursor move
	}{
		{
			"fg and bg combined",
			DefaultStyle().WithFg(ColorRed).WithBg(ColorBlue),
			"\x1b[0m\x1b[31;44m",
		},
		{
			"fg only",
			DefaultStyle().WithFg(ColorBrightCyan),
			"\x1b[0m\x1b[96m",
		},
		{
			"bg only",
			DefaultStyle().WithBg(ColorBrightWhite),
			"\x1b[0m\x1b[107m",
		},
		{
			"attributes with default colors emit no color sequence",
			DefaultStyle().WithAttr(AttrReverse | AttrDim),
			"\x1b[0m\x1b[2m\x1b[7m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := NewWithSize(&out, 4, 2)
			s.SetCellStyle(0, 0, 'x', tt.style)
			got := render(t, s, &out)
			want := tt.want + "\x1b[1;1Hx\x1b[?25l"
			if got != want {
				t.Errorf("frame = %q, want %q", got, want)
			}
		})
	}
}

func TestRenderCursorCommand(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 8, 4)

	s.ShowCursor(2, 1)
	got := render(t, s, &out)
	want := "\x1b[2;3H\x1b[?25h"
	if got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}

	s.HideCursor()
	got = render(t, s, &out)
	if got != "\x1b[?25l" {
		t.Errorf("frame after HideCursor = %q", got)
	}
}

func TestClearRepaintsPreviouslyDrawnCells(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 4, 2)

	s.SetCell(1, 0, 'x')
	s.SetCell(2, 0, 'y')
	render(t, s, &out)

	s.Clear()
	got := render(t, s, &out)
	want := "\x1b[1;2H \x1b[1;3H \x1b[?25l"
	if got != want {
		t.Errorf("frame after Clear = %q, want %q", got, want)
	}
}

func TestRenderRowMajorOrder(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 3, 2)

	s.SetCell(2, 0, 'a')
	s.SetCell(0, 1, 'b')
	got := render(t, s, &out)

	// (2,0) scans before (0,1).
	want := "\x1b[1;3Ha\x1b[2;1Hb\x1b[?25l"
	if got != want {
		t.Errorf("frame = %q, want %q", got, want)
	}
}

func TestSize(t *testing.T) {
	s := NewWithSize(&bytes.Buffer{}, 13, 7)
	w, h := s.Size()
	if w != 13 || h != 7 {
		t.Errorf("Size = %dx%d, want 13x7", w, h)
	}
}

func TestActivateDeactivateSequences(t *testing.T) {
	var out bytes.Buffer
	s := NewWithSize(&out, 4, 2)

	if err := s.Activate(); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if got := out.String(); got != "\x1b[?1049h\x1b[?25l" {
		t.Errorf("activate bytes = %q", got)
	}

	if err := s.Activate(); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("second Activate = %v, want ErrAlreadyActive", err)
	}

	out.Reset()
	if err := s.Deactivate(); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if got := out.String(); got != "\x1b[0m\x1b[?25h\x1b[?1049l" {
		t.Errorf("deactivate bytes = %q", got)
	}

	// Idempotent: cleanup paths may all call it.
	out.Reset()
	if err := s.Deactivate(); err != nil {
		t.Fatalf("repeated Deactivate: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("repeated Deactivate wrote %q", out.String())
	}
}

// failingWriter errors until unblocked, then passes writes through.
type failingWriter struct {
	out  bytes.Buffer
	fail bool
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.fail {
		return 0, errors.New("sink closed")
	}
	return w.out.Write(p)
}

func TestRenderFailureLeavesFrameUnsynced(t *testing.T) {
	w := &failingWriter{fail: true}
	s := NewWithSize(w, 4, 2)

	s.SetCell(0, 0, 'a')
	if err := s.Render(); err == nil {
		t.Fatal("Render should propagate the write error")
	}

	// The failed frame is discarded and nothing is marked clean: the
	// next successful render queues the paint again, and the sink sees
	// it exactly once.
	w.fail = false
	if err := s.Render(); err != nil {
		t.Fatalf("Render after recovery: %v", err)
	}
	if n := strings.Count(w.out.String(), "\x1b[1;1Ha"); n != 1 {
		t.Errorf("lost cell painted %d times in %q, want 1", n, w.out.String())
	}
}

func TestRenderFailureDoesNotCommitStyle(t *testing.T) {
	w := &failingWriter{fail: true}
	s := NewWithSize(w, 4, 2)

	bold := DefaultStyle().WithAttr(AttrBold).WithFg(ColorRed)
	s.SetCellStyle(0, 0, 'a', bold)
	if err := s.Render(); err == nil {
		t.Fatal("Render should propagate the write error")
	}

	// The terminal never saw the SGR sequence, so the remembered style
	// must not advance; the repaint re-emits it.
	w.fail = false
	if err := s.Render(); err != nil {
		t.Fatalf("Render after recovery: %v", err)
	}
	want := "\x1b[0m\x1b[1m\x1b[31m\x1b[1;1Ha\x1b[?25l"
	if got := w.out.String(); got != want {
		t.Errorf("recovered frame = %q, want %q", got, want)
	}
}

func TestRenderRecoversAcrossRepeatedFailures(t *testing.T) {
	w := &failingWriter{fail: true}
	s := NewWithSize(w, 4, 2)

	s.SetCell(1, 1, 'z')
	for i := 0; i < 3; i++ {
		if err := s.Render(); err == nil {
			t.Fatalf("Render %d should propagate the write error", i)
		}
	}

	w.fail = false
	if err := s.Render(); err != nil {
		t.Fatalf("Render after recovery: %v", err)
	}
	if n := strings.Count(w.out.String(), "\x1b[2;2Hz"); n != 1 {
		t.Errorf("lost cell painted %d times in %q, want 1", n, w.out.String())
	}
}

func TestSetCellStyleOutOfRangePanics(t *testing.T) {
	s := NewWithSize(&bytes.Buffer{}, 4, 2)
	mustPanic(t, "SetCell out of range", func() { s.SetCell(4, 0, 'x') })
	mustPanic(t, "SetCellStyle out of range", func() {
		s.SetCellStyle(0, 2, 'x', DefaultStyle())
	})
	mustPanic(t, "CellAt out of range", func() { s.CellAt(-1, 0) })
}
