package chr

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(v byte) Tile {
	var t Tile
	for i := range t {
		t[i] = v
	}
	return t
}

func TestPlanes(t *testing.T) {
	tables := map[string]struct {
		tile   Tile
		lo, hi byte
	}{
		"zero":              {fill(0), 0x00, 0x00},
		"one":               {fill(1), 0xff, 0x00},
		"two":               {fill(2), 0x00, 0xff},
		"three":             {fill(3), 0xff, 0xff},
		"high bits ignored": {fill(0xfd), 0xff, 0x00},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			lo, hi := table.tile.Planes()
			for y := 0; y < TileSize; y++ {
				assert.Equal(t, table.lo, lo[y])
				assert.Equal(t, table.hi, hi[y])
			}
		})
	}
}

func TestPlanesBitOrder(t *testing.T) {
	var tile Tile
	// Row 0: only the leftmost pixel set to 1
	tile[0] = 1
	// Row 1: 0 1 2 3 0 1 2 3
	for x := 0; x < TileSize; x++ {
		tile[TileSize+x] = byte(x & 3)
	}
	// Row 7: only the rightmost pixel set to 2
	tile[tilePixels-1] = 2

	lo, hi := tile.Planes()
	assert.Equal(t, [TileSize]byte{0x80, 0x55, 0, 0, 0, 0, 0, 0x00}, lo)
	assert.Equal(t, [TileSize]byte{0x00, 0x33, 0, 0, 0, 0, 0, 0x01}, hi)

	b, err := tile.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x80, 0x55, 0, 0, 0, 0, 0, 0x00,
		0x00, 0x33, 0, 0, 0, 0, 0, 0x01,
	}, b)
}

func TestEncodeTiles(t *testing.T) {
	b := EncodeTiles([]Tile{fill(1), fill(2)})
	assert.Equal(t, append(bytes.Repeat([]byte{0xff}, 8), bytes.Repeat([]byte{0x00}, 16)...), b[:24])
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 8), b[24:])

	assert.Empty(t, EncodeTiles(nil))
}

func TestRoundTrip(t *testing.T) {
	var tile Tile
	for i := range tile {
		tile[i] = byte(i*7) & 0xff
	}

	b, err := tile.MarshalBinary()
	require.NoError(t, err)

	var got Tile
	require.NoError(t, got.UnmarshalBinary(b))
	for i := range tile {
		assert.Equal(t, tile[i]&3, got[i], "pixel %d", i)
	}

	assert.Error(t, got.UnmarshalBinary(b[:15]))
}

func TestPartition(t *testing.T) {
	const width = 16
	pix := make([]byte, width*16)
	for y := 0; y < 16; y++ {
		for x := 0; x < width; x++ {
			pix[y*width+x] = byte(y<<4 | x)
		}
	}

	tiles, err := Partition(pix, width)
	require.NoError(t, err)
	require.Len(t, tiles, 4)

	for i, tile := range tiles {
		tx, ty := i%2, i/2
		for y := 0; y < TileSize; y++ {
			for x := 0; x < TileSize; x++ {
				assert.Equal(t, byte((ty*TileSize+y)<<4|(tx*TileSize+x)), tile[y*TileSize+x])
			}
		}
	}
}

func TestPartitionErrors(t *testing.T) {
	tables := map[string]struct {
		pix   []byte
		width int
	}{
		"zero width":     {make([]byte, 64), 0},
		"width":          {make([]byte, 12*8), 12},
		"partial row":    {make([]byte, 16*8+1), 16},
		"partial band":   {make([]byte, 16*4), 16},
		"negative width": {make([]byte, 64), -8},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			_, err := Partition(table.pix, table.width)
			assert.Equal(t, ErrInvalidDimensions, err)
		})
	}
}

func TestPad(t *testing.T) {
	assert.Len(t, Pad(make([]byte, 16), BankSize), BankSize)
	assert.Len(t, Pad(make([]byte, BankSize), BankSize), BankSize)
	assert.Len(t, Pad(make([]byte, BankSize+16), BankSize), BankSize*2)
	assert.Len(t, Pad(make([]byte, 16), 0), 16)

	b := Pad([]byte{0xff}, 4)
	assert.Equal(t, []byte{0xff, 0, 0, 0}, b)
}

func TestDecode(t *testing.T) {
	var b []byte
	for i := 0; i < 4; i++ {
		b = append(b, EncodeTiles([]Tile{fill(byte(i))})...)
	}

	m, err := Decode(bytes.NewReader(b), 2)
	require.NoError(t, err)

	pm, ok := m.(*image.Paletted)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 16, 16), pm.Bounds())
	assert.Equal(t, uint8(0), pm.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(1), pm.ColorIndexAt(15, 0))
	assert.Equal(t, uint8(2), pm.ColorIndexAt(0, 15))
	assert.Equal(t, uint8(3), pm.ColorIndexAt(15, 15))

	c, err := DecodeConfig(bytes.NewReader(b), 4)
	require.NoError(t, err)
	assert.Equal(t, 32, c.Width)
	assert.Equal(t, 8, c.Height)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil), 16)
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(make([]byte, 17)), 1)
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(make([]byte, 48)), 2)
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(make([]byte, 16)), 0)
	assert.Equal(t, ErrInvalidDimensions, err)
}

func TestEncodePaletted(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 16, 8), Palette)
	for x := 0; x < 16; x++ {
		for y := 0; y < 8; y++ {
			m.SetColorIndex(x, y, uint8(x/8*3))
		}
	}

	var b bytes.Buffer
	require.NoError(t, Encode(&b, m))
	assert.Equal(t, EncodeTiles([]Tile{fill(0), fill(3)}), b.Bytes())
}

func TestEncodeSubImage(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 24, 16), Palette)
	for y := 8; y < 16; y++ {
		for x := 8; x < 16; x++ {
			m.SetColorIndex(x, y, 2)
		}
	}

	var b bytes.Buffer
	require.NoError(t, Encode(&b, m.SubImage(image.Rect(8, 8, 16, 16))))
	assert.Equal(t, EncodeTiles([]Tile{fill(2)}), b.Bytes())
}

func TestEncodeQuantized(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if x < 8 {
				m.Set(x, y, color.RGBA{0xff, 0x00, 0x00, 0xff})
			} else {
				m.Set(x, y, color.RGBA{0x00, 0x00, 0xff, 0xff})
			}
		}
	}

	var b bytes.Buffer
	require.NoError(t, Encode(&b, m))
	require.Len(t, b.Bytes(), 4*BlockSize)

	// Each tile is a single flat color so every row repeats the first
	for i := 0; i < 4; i++ {
		tile := DecodeTile(b.Bytes()[i*BlockSize:])
		for _, p := range tile {
			assert.Equal(t, tile[0], p)
		}
	}

	// Left and right halves differ
	left := DecodeTile(b.Bytes()[0:])
	right := DecodeTile(b.Bytes()[BlockSize:])
	assert.NotEqual(t, left[0], right[0])
}

func TestEncodeLargePalette(t *testing.T) {
	palette := make(color.Palette, 256)
	for i := range palette {
		palette[i] = color.Gray{uint8(i)}
	}

	// Both indices share their low two bits so masking would merge them
	m := image.NewPaletted(image.Rect(0, 0, 16, 8), palette)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if x < 8 {
				m.SetColorIndex(x, y, 0x04)
			} else {
				m.SetColorIndex(x, y, 0xfc)
			}
		}
	}

	var b bytes.Buffer
	require.NoError(t, Encode(&b, m))
	require.Len(t, b.Bytes(), 2*BlockSize)

	left := DecodeTile(b.Bytes()[0:])
	right := DecodeTile(b.Bytes()[BlockSize:])
	assert.NotEqual(t, left[0], right[0])
	for i := range left {
		assert.Equal(t, left[0], left[i])
		assert.Equal(t, right[0], right[i])
	}
}

func TestEncodeWrongSize(t *testing.T) {
	var b bytes.Buffer
	assert.Equal(t, ErrInvalidDimensions, Encode(&b, image.NewPaletted(image.Rect(0, 0, 12, 8), Palette)))
	assert.Equal(t, ErrInvalidDimensions, Encode(&b, image.NewGray(image.Rect(0, 0, 0, 0))))
	assert.Zero(t, b.Len())
}
