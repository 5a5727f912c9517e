/*
Package chr implements an encoder and decoder for the planar 2 bits per pixel
tile format used by 8-bit tile based graphics hardware, commonly called CHR.

Each 8 by 8 tile is stored as 16 bytes; eight bytes holding bit 0 of every
pixel followed by eight bytes holding bit 1, one byte per row with the
leftmost pixel in the most significant bit. Tiles follow each other in
row-major order across the source image.
*/
package chr

const (
	// TileSize is the width and height of a tile in pixels
	TileSize   = 8
	tilePixels = TileSize * TileSize

	// BlockSize is the number of bytes used to encode one tile
	BlockSize = TileSize * 2

	// BankSize is the size of a single CHR-ROM bank, enough for 512 tiles
	BankSize = 8192

	colors = 4
)

// Tile holds the 64 pixel indices of one tile in row-major order.
type Tile [tilePixels]byte
