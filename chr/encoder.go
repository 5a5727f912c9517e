package chr

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

// Planes returns the low and high bitplanes of t, one byte per row with the
// leftmost pixel in bit 7. Only the low two bits of each index are used.
func (t *Tile) Planes() (lo, hi [TileSize]byte) {
	for y := 0; y < TileSize; y++ {
		for x, p := range t[y*TileSize : (y+1)*TileSize] {
			lo[y] |= (p & 0x01) << (7 - x)
			hi[y] |= (p >> 1 & 0x01) << (7 - x)
		}
	}
	return
}

// MarshalBinary returns the 16 byte encoding of t.
func (t *Tile) MarshalBinary() ([]byte, error) {
	lo, hi := t.Planes()
	return append(lo[:], hi[:]...), nil
}

// EncodeTiles packs each tile into BlockSize bytes and concatenates them in
// order.
func EncodeTiles(tiles []Tile) []byte {
	b := make([]byte, 0, len(tiles)*BlockSize)
	for i := range tiles {
		lo, hi := tiles[i].Planes()
		b = append(b, lo[:]...)
		b = append(b, hi[:]...)
	}
	return b
}

// Pad returns b extended with zeroes to a multiple of bank bytes. A bank of
// zero or less returns b unchanged.
func Pad(b []byte, bank int) []byte {
	if bank <= 0 {
		return b
	}
	if mod := len(b) % bank; mod > 0 {
		b = append(b, make([]byte, bank-mod)...)
	}
	return b
}

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(m *image.Paletted) error {
	b := m.Bounds()

	pix := make([]byte, 0, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		pix = append(pix, m.Pix[y*m.Stride:y*m.Stride+b.Dx()]...)
	}

	tiles, err := Partition(pix, b.Dx())
	if err != nil {
		return err
	}

	_, err = e.w.Write(EncodeTiles(tiles))
	return err
}

// Encode writes the Image m to w in CHR format. Both dimensions of m must be
// a multiple of TileSize. Paletted images with no more than four colors keep
// their color indices, any other image is first reduced to four colors.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || b.Dx()%TileSize != 0 || b.Dy()%TileSize != 0 {
		return ErrInvalidDimensions
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok {
			pm = image.NewPaletted(b, cp)
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					pm.Set(x, y, cp.Convert(m.At(x, y)))
				}
			}
		}
	}
	if pm == nil || len(pm.Palette) > colors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	e := encoder{w: w}

	return e.encode(pm)
}
