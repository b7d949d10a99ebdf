package imagemeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// tiffWithOrientation builds a minimal TIFF stream: header, one-entry
// IFD0 carrying the orientation tag.
func tiffWithOrientation(order binary.ByteOrder, orientation uint16) []byte {
	var buf bytes.Buffer

	if order == binary.LittleEndian {
		buf.WriteString("II")
	} else {
		buf.WriteString("MM")
	}
	binary.Write(&buf, order, uint16(42))
	binary.Write(&buf, order, uint32(8)) // IFD0 directly after header

	binary.Write(&buf, order, uint16(1)) // one entry
	binary.Write(&buf, order, uint16(tagOrientation))
	binary.Write(&buf, order, uint16(typeShort))
	binary.Write(&buf, order, uint32(1))
	binary.Write(&buf, order, orientation)
	binary.Write(&buf, order, uint16(0)) // value padding
	binary.Write(&buf, order, uint32(0)) // next IFD offset

	return buf.Bytes()
}

func jpegWrapping(tiff []byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8}) // SOI

	payload := append([]byte("Exif\x00\x00"), tiff...)
	buf.Write([]byte{0xFF, 0xE1})
	binary.Write(&buf, binary.BigEndian, uint16(len(payload)+2))
	buf.Write(payload)

	buf.Write([]byte{0xFF, 0xD9}) // EOI
	return buf.Bytes()
}

func TestOrientationLittleEndian(t *testing.T) {
	got, err := Orientation(bytes.NewReader(tiffWithOrientation(binary.LittleEndian, 6)))
	if err != nil {
		t.Fatalf("Orientation: %v", err)
	}
	if got != 6 {
		t.Errorf("orientation = %d, want 6", got)
	}
}

func TestOrientationBigEndian(t *testing.T) {
	got, err := Orientation(bytes.NewReader(tiffWithOrientation(binary.BigEndian, 8)))
	if err != nil {
		t.Fatalf("Orientation: %v", err)
	}
	if got != 8 {
		t.Errorf("orientation = %d, want 8", got)
	}
}

func TestOrientationFromJPEG(t *testing.T) {
	data := jpegWrapping(tiffWithOrientation(binary.BigEndian, 3))
	got, err := Orientation(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Orientation: %v", err)
	}
	if got != 3 {
		t.Errorf("orientation = %d, want 3", got)
	}
}

func TestOrientationMissingTagDefaults(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("II")
	binary.Write(&buf, binary.LittleEndian, uint16(42))
	binary.Write(&buf, binary.LittleEndian, uint32(8))
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // empty IFD
	binary.Write(&buf, binary.LittleEndian, uint32(0))

	got, err := Orientation(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Orientation: %v", err)
	}
	if got != OrientationTopLeft {
		t.Errorf("orientation = %d, want default %d", got, OrientationTopLeft)
	}
}

func TestOrientationRejectsGarbage(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("not an image at all"),
		[]byte("II\x2a\x00"),                         // truncated header
		{0xFF, 0xD8, 0xFF, 0xE1, 0x00, 0x01},         // truncated JPEG segment
		tiffWithOrientation(binary.LittleEndian, 6)[:12], // truncated IFD
	}
	for i, in := range inputs {
		if _, err := Orientation(bytes.NewReader(in)); err == nil {
			t.Errorf("input %d: expected an error", i)
		}
	}
}

func TestOrientationOutOfRange(t *testing.T) {
	_, err := Orientation(bytes.NewReader(tiffWithOrientation(binary.BigEndian, 9)))
	if err == nil {
		t.Fatal("orientation 9 should be rejected")
	}
	if errors.Is(err, ErrNotTIFF) {
		t.Error("out-of-range value is not a header problem")
	}
}
