/*
Package bmptest builds minimal BMP files for tests.
*/
package bmptest

import (
	"encoding/binary"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// PixelOffset is where Build places the pixel data, directly after
	// the headers with no palette
	PixelOffset = fileHeaderSize + infoHeaderSize
)

// Image describes the file that Build produces. Pix holds one byte per pixel
// in top-down order; Build stores the rows bottom-up as a BMP would.
type Image struct {
	Width       int32
	Height      int32
	BitCount    uint16
	Compression uint32
	Pix         []byte
}

// Build returns a BMP file for m. A zero BitCount defaults to 8.
func Build(m Image) []byte {
	if m.BitCount == 0 {
		m.BitCount = 8
	}

	b := make([]byte, PixelOffset, PixelOffset+len(m.Pix))
	b[0], b[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(b[0x02:], uint32(PixelOffset+len(m.Pix)))
	binary.LittleEndian.PutUint32(b[0x0a:], PixelOffset)
	binary.LittleEndian.PutUint32(b[0x0e:], infoHeaderSize)
	binary.LittleEndian.PutUint32(b[0x12:], uint32(m.Width))
	binary.LittleEndian.PutUint32(b[0x16:], uint32(m.Height))
	binary.LittleEndian.PutUint16(b[0x1a:], 1)
	binary.LittleEndian.PutUint16(b[0x1c:], m.BitCount)
	binary.LittleEndian.PutUint32(b[0x1e:], m.Compression)
	binary.LittleEndian.PutUint32(b[0x22:], uint32(len(m.Pix)))

	if m.Width <= 0 || len(m.Pix)%int(m.Width) != 0 {
		return append(b, m.Pix...)
	}

	w := int(m.Width)
	for i := len(m.Pix) - w; i >= 0; i -= w {
		b = append(b, m.Pix[i:i+w]...)
	}

	return b
}

// Pattern returns width*height pixels where each pixel is (x + y) & 3.
func Pattern(width, height int) []byte {
	pix := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pix[y*width+x] = byte(x+y) & 3
		}
	}
	return pix
}
