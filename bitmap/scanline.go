package bitmap

// Normalize returns a copy of pix with the order of its rowWidth byte rows
// reversed, turning bottom-up storage into top-down order.
func Normalize(pix []byte, rowWidth int) ([]byte, error) {
	if rowWidth <= 0 || len(pix)%rowWidth != 0 {
		return nil, ErrMalformedPixelData
	}

	out := make([]byte, 0, len(pix))
	for i := len(pix) - rowWidth; i >= 0; i -= rowWidth {
		out = append(out, pix[i:i+rowWidth]...)
	}

	return out, nil
}
