package renderer

import "bytes"

// Pre-built ANSI sequence fragments. Keeping them as byte slices avoids
// per-cell formatting work inside the render loop.
var (
	csi = []byte("\x1b[")

	sgrReset      = []byte("\x1b[0m")
	sgrBold       = []byte("\x1b[1m")
	sgrDim        = []byte("\x1b[2m")
	sgrUnderlined = []byte("\x1b[4m")
	sgrReverse    = []byte("\x1b[7m")
	sgrHidden     = []byte("\x1b[8m")

	cursorShow = []byte("\x1b[?25h")
	cursorHide = []byte("\x1b[?25l")

	altScreenEnter = []byte("\x1b[?1049h")
	altScreenLeave = []byte("\x1b[?1049l")
)

// writeInt appends a non-negative decimal integer without allocating.
// Terminal coordinates and SGR parameters stay well under 1000.
func writeInt(b *bytes.Buffer, n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n < 10:
		b.WriteByte(byte(n) + '0')
	case n < 100:
		b.WriteByte(byte(n/10) + '0')
		b.WriteByte(byte(n%10) + '0')
	case n < 1000:
		b.WriteByte(byte(n/100) + '0')
		b.WriteByte(byte(n/10%10) + '0')
		b.WriteByte(byte(n%10) + '0')
	default:
		var buf [8]byte
		i := len(buf)
		for n > 0 {
			i--
			buf[i] = byte(n%10) + '0'
			n /= 10
		}
		b.Write(buf[i:])
	}
}

// writeCursorPos appends an absolute cursor move. Input coordinates use
// the grid's 0-indexed system; the wire format is 1-indexed row;column.
func writeCursorPos(b *bytes.Buffer, x, y int) {
	b.Write(csi)
	writeInt(b, y+1)
	b.WriteByte(';')
	writeInt(b, x+1)
	b.WriteByte('H')
}

// writeFg appends a foreground color sequence for a concrete color.
func writeFg(b *bytes.Buffer, c Color) {
	b.Write(csi)
	writeInt(b, c.fgCode())
	b.WriteByte('m')
}

// writeBg appends a background color sequence for a concrete color.
func writeBg(b *bytes.Buffer, c Color) {
	b.Write(csi)
	writeInt(b, c.bgCode())
	b.WriteByte('m')
}

// writeFgBg appends one combined sequence setting both colors.
func writeFgBg(b *bytes.Buffer, fg, bg Color) {
	b.Write(csi)
	writeInt(b, fg.fgCode())
	b.WriteByte(';')
	writeInt(b, bg.bgCode())
	b.WriteByte('m')
}
