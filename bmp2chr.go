/*
Package bmp2chr converts uncompressed indexed-color BMP files into the planar
2 bits per pixel CHR tile format.
*/
package bmp2chr

import (
	"fmt"
	"io/ioutil"
	"log"

	"github.com/bodgit/bmp2chr/bitmap"
	"github.com/bodgit/bmp2chr/chr"
)

const bitsPerPixel = 2

type Converter struct {
	opts        Options
	lib         *Library
	logger      *log.Logger
	constraints bitmap.Constraints
}

// New returns a Converter. lib and logger may be nil, and any zero valued
// option is replaced by its default.
func New(opts Options, lib *Library, logger *log.Logger) *Converter {
	opts = opts.withDefaults()
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Converter{
		opts:   opts,
		lib:    lib,
		logger: logger,
		constraints: bitmap.Constraints{
			Width:           opts.Width,
			TileSize:        chr.TileSize,
			MaxBitsPerPixel: bitmap.DefaultConstraints.MaxBitsPerPixel,
		},
	}
}

// Convert converts a complete BMP file into a CHR tile stream.
func (c *Converter) Convert(b []byte) ([]byte, error) {
	h, err := bitmap.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}

	if err := c.constraints.Validate(h); err != nil {
		return nil, fmt.Errorf("validating header: %w", err)
	}

	data, err := h.PixelData(b)
	if err != nil {
		return nil, fmt.Errorf("extracting pixel data: %w", err)
	}

	pix, err := bitmap.Normalize(data, int(h.Width))
	if err != nil {
		return nil, fmt.Errorf("normalizing scanlines: %w", err)
	}

	if c.opts.Strict {
		if err := bitmap.CheckIndices(pix, bitsPerPixel); err != nil {
			return nil, fmt.Errorf("checking pixel indices: %w", err)
		}
	}

	tiles, err := chr.Partition(pix, int(h.Width))
	if err != nil {
		return nil, fmt.Errorf("partitioning tiles: %w", err)
	}

	return chr.Pad(chr.EncodeTiles(tiles), c.opts.Bank), nil
}

// Convert converts a complete BMP file into a CHR tile stream using the
// default options.
func Convert(b []byte) ([]byte, error) {
	return New(DefaultOptions(), nil, nil).Convert(b)
}
