package bitmap

import "fmt"

// Constraints describe the images the converter accepts.
type Constraints struct {
	Width           int
	TileSize        int
	MaxBitsPerPixel int
}

// DefaultConstraints matches a 128 pixel wide pattern table of 8 by 8 tiles.
var DefaultConstraints = Constraints{
	Width:           128,
	TileSize:        8,
	MaxBitsPerPixel: 8,
}

// Validate checks h against c, returning a *ValidationError for the first
// rule that fails.
func (c Constraints) Validate(h *Header) error {
	if int(h.Width) != c.Width {
		return &ValidationError{
			Kind:   UnsupportedWidth,
			Value:  int64(h.Width),
			Reason: fmt.Sprintf("must be exactly %d", c.Width),
		}
	}
	if rows := h.Rows(); rows == 0 || c.TileSize <= 0 || rows%c.TileSize != 0 {
		return &ValidationError{
			Kind:   UnsupportedHeight,
			Value:  int64(h.Height),
			Reason: fmt.Sprintf("must be a non-zero multiple of %d", c.TileSize),
		}
	}
	if h.BitCount == 0 || int(h.BitCount) > c.MaxBitsPerPixel {
		return &ValidationError{
			Kind:   UnsupportedColorDepth,
			Value:  int64(h.BitCount),
			Reason: fmt.Sprintf("must be indexed with at most %d bits per pixel", c.MaxBitsPerPixel),
		}
	}
	if h.Compression != compressionNone {
		return &ValidationError{
			Kind:   UnsupportedCompression,
			Value:  int64(h.Compression),
			Reason: "must be uncompressed",
		}
	}
	return nil
}

// CheckIndices returns a *ValidationError if any pixel in pix uses more than
// the low bits bits of its index.
func CheckIndices(pix []byte, bits uint) error {
	limit := 1<<bits - 1
	for i, p := range pix {
		if int(p) > limit {
			return &ValidationError{
				Kind:   UnsupportedPixelValue,
				Value:  int64(p),
				Reason: fmt.Sprintf("at offset %d exceeds %d", i, limit),
			}
		}
	}
	return nil
}
