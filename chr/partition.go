package chr

import "errors"

// ErrInvalidDimensions is returned when the pixels can't be evenly divided
// into tiles.
var ErrInvalidDimensions = errors.New("chr: invalid dimensions")

// Partition splits top-down, row-major pixel indices that are rowWidth pixels
// wide into tiles. Tiles are returned left to right across each band of
// TileSize rows, then band by band down the image.
func Partition(pix []byte, rowWidth int) ([]Tile, error) {
	if rowWidth <= 0 || rowWidth%TileSize != 0 || len(pix)%rowWidth != 0 {
		return nil, ErrInvalidDimensions
	}

	rows := len(pix) / rowWidth
	if rows%TileSize != 0 {
		return nil, ErrInvalidDimensions
	}

	tileX, tileY := rowWidth/TileSize, rows/TileSize
	tiles := make([]Tile, 0, tileX*tileY)

	for ty := 0; ty < tileY; ty++ {
		for tx := 0; tx < tileX; tx++ {
			var t Tile
			for y := 0; y < TileSize; y++ {
				i := (ty*TileSize+y)*rowWidth + tx*TileSize
				copy(t[y*TileSize:(y+1)*TileSize], pix[i:i+TileSize])
			}
			tiles = append(tiles, t)
		}
	}

	return tiles, nil
}
