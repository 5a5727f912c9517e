package bmp2chr

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/bodgit/bmp2chr/bitmap"
	"github.com/bodgit/bmp2chr/chr"
)

const sourceExtension = ".bmp"

var errSameFile = errors.New("output would overwrite input")

// OutputName returns the name of the file written for src, replacing a
// trailing ".bmp" with ext or appending ext if there isn't one. An empty ext
// means ".chr".
func OutputName(src, ext string) string {
	if ext == "" {
		ext = defaultExtension
	}
	if strings.EqualFold(filepath.Ext(src), sourceExtension) {
		return strings.TrimSuffix(src, filepath.Ext(src)) + ext
	}
	return src + ext
}

func (c *Converter) key(b []byte) string {
	h := sha1.New()
	h.Write(b)
	fmt.Fprintf(h, "width=%d strict=%t bank=%d", c.opts.Width, c.opts.Strict, c.opts.Bank)
	return fmt.Sprintf("%X", h.Sum(nil))
}

func (c *Converter) convertCached(b []byte) ([]byte, error) {
	if c.lib == nil {
		return c.Convert(b)
	}

	key := c.key(b)
	out, err := c.lib.Lookup(key)
	if err != nil {
		return nil, err
	}
	if out != nil {
		c.logger.Printf("Using cached tiles for %s\n", key)
		return out, nil
	}

	if out, err = c.Convert(b); err != nil {
		return nil, err
	}

	// Convert succeeded so the header is known to parse
	h, _ := bitmap.Parse(b)
	if err := c.lib.Store(key, h, out); err != nil {
		return nil, err
	}

	return out, nil
}

// ConvertFile converts the BMP file src and writes the result alongside it,
// returning the name of the file written. Nothing is written if the
// conversion fails.
func (c *Converter) ConvertFile(src string) (string, error) {
	dst := OutputName(src, c.opts.Extension)
	if filepath.Clean(dst) == filepath.Clean(src) {
		return "", fmt.Errorf("%s: %w", src, errSameFile)
	}

	b, err := ioutil.ReadFile(src)
	if err != nil {
		return "", err
	}

	c.logger.Printf("Converting \"%s\"\n", src)

	out, err := c.convertCached(b)
	if err != nil {
		return "", fmt.Errorf("%s: %w", src, err)
	}

	if err := ioutil.WriteFile(dst, out, 0644); err != nil {
		return "", err
	}

	c.logger.Printf("Wrote %d tiles to \"%s\"\n", len(out)/chr.BlockSize, dst)

	return dst, nil
}
