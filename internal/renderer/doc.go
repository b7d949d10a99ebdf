// Package renderer provides the display layer for the trawl file manager.
//
// The renderer is responsible for:
//   - Maintaining a logical grid of styled cells for the caller to draw into
//   - Diffing the logical grid against what the terminal currently shows
//   - Emitting a minimal batch of ANSI control sequences per frame
//   - Owning the terminal session resources (raw mode, alternate screen)
//
// Architecture:
//
// A Screen owns two same-sized Grids. Callers mutate the current grid with
// SetCell/SetCellStyle (no I/O), then call Render, which walks both grids in
// row-major order, queues escape sequences only for cells that changed, and
// flushes the whole frame with one write. Style sequences are coalesced: the
// last style physically sent to the terminal is remembered across frames, so
// runs of same-styled cells cost one SGR sequence.
//
// Usage:
//
//	scr, _ := renderer.New(os.Stdin, os.Stdout)
//	if err := scr.Activate(); err != nil { ... }
//	defer scr.Deactivate()
//	scr.SetCell(0, 0, 'h')
//	scr.Render()
package renderer
