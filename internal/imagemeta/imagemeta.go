// Package imagemeta extracts the EXIF orientation of an image so a
// preview can be rotated correctly before it is drawn. Only the TIFF
// header and IFD0 are read; everything else in the file is ignored.
package imagemeta

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Orientation values follow the EXIF specification: 1 is upright, 3 is
// rotated 180, 6 and 8 are the two 90-degree rotations, the rest mirror.
const (
	OrientationTopLeft = 1
	orientationMax     = 8
)

// ErrNotTIFF indicates the input is neither a TIFF stream nor a JPEG
// carrying an EXIF segment.
var ErrNotTIFF = errors.New("imagemeta: no TIFF header found")

const (
	tagOrientation = 0x0112
	typeShort      = 3

	// EXIF blocks live near the start of the file; reading more than
	// this means the input is not worth scanning.
	readLimit = 64 << 10
)

// Orientation reads r far enough to find the EXIF orientation tag and
// returns its value (1-8). JPEG input is unwrapped to its APP1 "Exif"
// segment; TIFF input is parsed directly. A well-formed file without
// an orientation tag reports OrientationTopLeft.
func Orientation(r io.Reader) (int, error) {
	data, err := io.ReadAll(io.LimitReader(r, readLimit))
	if err != nil {
		return 0, err
	}

	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8 {
		tiff, err := exifSegment(data)
		if err != nil {
			return 0, err
		}
		data = tiff
	}
	return parseTIFF(data)
}

// OrientationFile is Orientation over a file path.
func OrientationFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Orientation(f)
}

// exifSegment walks JPEG segments looking for APP1 with an Exif
// envelope and returns the embedded TIFF stream.
func exifSegment(data []byte) ([]byte, error) {
	pos := 2 // past SOI
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return nil, fmt.Errorf("imagemeta: bad JPEG marker at %d", pos)
		}
		marker := data[pos+1]
		if marker == 0xD9 || marker == 0xDA { // EOI / start of scan
			break
		}
		length := int(binary.BigEndian.Uint16(data[pos+2:]))
		if length < 2 || pos+2+length > len(data) {
			return nil, errors.New("imagemeta: truncated JPEG segment")
		}
		payload := data[pos+4 : pos+2+length]
		if marker == 0xE1 && len(payload) > 6 && string(payload[:6]) == "Exif\x00\x00" {
			return payload[6:], nil
		}
		pos += 2 + length
	}
	return nil, ErrNotTIFF
}

// parseTIFF reads the byte-order mark, checks the magic number and
// scans IFD0 for the orientation tag.
func parseTIFF(data []byte) (int, error) {
	if len(data) < 8 {
		return 0, ErrNotTIFF
	}

	var order binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I':
		order = binary.LittleEndian
	case data[0] == 'M' && data[1] == 'M':
		order = binary.BigEndian
	default:
		return 0, ErrNotTIFF
	}

	if order.Uint16(data[2:]) != 42 {
		return 0, ErrNotTIFF
	}

	ifd := int(order.Uint32(data[4:]))
	if ifd < 8 || ifd+2 > len(data) {
		return 0, errors.New("imagemeta: IFD offset out of range")
	}

	count := int(order.Uint16(data[ifd:]))
	entries := data[ifd+2:]
	if count*12 > len(entries) {
		return 0, errors.New("imagemeta: truncated IFD")
	}

	for i := 0; i < count; i++ {
		entry := entries[i*12 : i*12+12]
		if order.Uint16(entry) != tagOrientation {
			continue
		}
		if order.Uint16(entry[2:]) != typeShort || order.Uint32(entry[4:]) != 1 {
			return 0, errors.New("imagemeta: malformed orientation entry")
		}
		// A single SHORT is stored inline in the value field.
		v := int(order.Uint16(entry[8:]))
		if v < OrientationTopLeft || v > orientationMax {
			return 0, fmt.Errorf("imagemeta: orientation %d out of range", v)
		}
		return v, nil
	}

	return OrientationTopLeft, nil
}
