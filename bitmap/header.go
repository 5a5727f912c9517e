package bitmap

import (
	"encoding/binary"
)

// Header is a read-only view of the interesting BMP header fields.
type Header struct {
	PixelOffset uint32
	Width       int32
	Height      int32
	BitCount    uint16
	Compression uint32
}

// Parse reads the header fields from a complete BMP file held in b.
func Parse(b []byte) (*Header, error) {
	if len(b) < len(signature) {
		return nil, ErrTruncatedHeader
	}
	if b[0] != signature[0] || b[1] != signature[1] {
		return nil, ErrInvalidFormat
	}
	if len(b) < HeaderSize {
		return nil, ErrTruncatedHeader
	}

	return &Header{
		PixelOffset: binary.LittleEndian.Uint32(b[offsetPixelData:]),
		Width:       int32(binary.LittleEndian.Uint32(b[offsetWidth:])),
		Height:      int32(binary.LittleEndian.Uint32(b[offsetHeight:])),
		BitCount:    binary.LittleEndian.Uint16(b[offsetBitCount:]),
		Compression: binary.LittleEndian.Uint32(b[offsetCompression:]),
	}, nil
}

// Rows returns the number of pixel rows regardless of whether the image is
// stored bottom-up or top-down.
func (h *Header) Rows() int {
	if h.Height < 0 {
		return -int(h.Height)
	}
	return int(h.Height)
}

// PixelData returns the slice of b holding the pixel rows. The data must be
// exactly one byte per pixel for every row the header declares.
func (h *Header) PixelData(b []byte) ([]byte, error) {
	if h.Width <= 0 || uint64(h.PixelOffset) > uint64(len(b)) {
		return nil, ErrMalformedPixelData
	}
	data := b[h.PixelOffset:]
	if uint64(len(data)) != uint64(h.Rows())*uint64(h.Width) {
		return nil, ErrMalformedPixelData
	}
	return data, nil
}
