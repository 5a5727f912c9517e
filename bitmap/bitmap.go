/*
Package bitmap implements the subset of the Windows BMP format needed to pull
indexed pixel data out of an uncompressed bitmap file.

Only the fixed fields of the file and info headers are interpreted. Pixel rows
are assumed to be one byte per pixel with no stride padding beyond the row
width, which holds for 8-bit images whose width is a multiple of four.
*/
package bitmap

const (
	offsetPixelData   = 0x0a
	offsetWidth       = 0x12
	offsetHeight      = 0x16
	offsetBitCount    = 0x1c
	offsetCompression = 0x1e

	// HeaderSize is the minimum number of bytes needed to read every
	// header field
	HeaderSize = offsetCompression + 4

	compressionNone = 0
)

var signature = [2]byte{'B', 'M'}
