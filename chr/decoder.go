package chr

import (
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

var errNotEnough = errors.New("chr: not enough tile data")

// Palette is the four level grayscale palette used for decoded images.
var Palette = color.Palette{
	color.Gray{0x00},
	color.Gray{0x55},
	color.Gray{0xaa},
	color.Gray{0xff},
}

// DecodeTile reverses the encoding of a single tile. b must hold at least
// BlockSize bytes.
func DecodeTile(b []byte) Tile {
	var t Tile
	lo, hi := b[:TileSize], b[TileSize:BlockSize]
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			t[y*TileSize+x] = lo[y]>>(7-x)&0x01 | (hi[y]>>(7-x)&0x01)<<1
		}
	}
	return t
}

// UnmarshalBinary decodes a single tile from b.
func (t *Tile) UnmarshalBinary(b []byte) error {
	if len(b) != BlockSize {
		return errNotEnough
	}
	*t = DecodeTile(b)
	return nil
}

type decoder struct {
	r           io.Reader
	tilesPerRow int

	tiles int
	data  []byte
	image *image.Paletted
}

func (d *decoder) decode(r io.Reader, tilesPerRow int, configOnly bool) error {
	if tilesPerRow <= 0 {
		return ErrInvalidDimensions
	}
	d.r, d.tilesPerRow = r, tilesPerRow

	var err error
	if d.data, err = ioutil.ReadAll(d.r); err != nil {
		return err
	}

	if len(d.data) == 0 || len(d.data)%BlockSize != 0 {
		return errNotEnough
	}

	d.tiles = len(d.data) / BlockSize
	if d.tiles%d.tilesPerRow != 0 {
		return errNotEnough
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, d.tilesPerRow*TileSize, d.tiles/d.tilesPerRow*TileSize), Palette)

	for i := 0; i < d.tiles; i++ {
		t := DecodeTile(d.data[i*BlockSize:])
		tx, ty := i%d.tilesPerRow, i/d.tilesPerRow
		for y := 0; y < TileSize; y++ {
			copy(d.image.Pix[d.image.PixOffset(tx*TileSize, ty*TileSize+y):], t[y*TileSize:(y+1)*TileSize])
		}
	}

	return nil
}

// Decode reads CHR tiles from r and returns them as an image.Image laid out
// tilesPerRow tiles wide.
func Decode(r io.Reader, tilesPerRow int) (image.Image, error) {
	var d decoder
	if err := d.decode(r, tilesPerRow, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of the image Decode
// would return without decoding any tiles.
func DecodeConfig(r io.Reader, tilesPerRow int) (image.Config, error) {
	var d decoder
	if err := d.decode(r, tilesPerRow, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Palette,
		Width:      d.tilesPerRow * TileSize,
		Height:     d.tiles / d.tilesPerRow * TileSize,
	}, nil
}
