package bmp2chr

import (
	"fmt"
	"io/ioutil"

	"github.com/bodgit/bmp2chr/bitmap"
	"gopkg.in/yaml.v2"
)

const (
	defaultExtension = ".chr"
	defaultWorkers   = 4
)

// Options control how images are converted.
type Options struct {
	// Width is the exact width in pixels an input image must have
	Width int `yaml:"width"`
	// Strict rejects pixels using more than two bits of their index
	Strict bool `yaml:"strict"`
	// Bank pads the output to a multiple of this many bytes, zero
	// disables padding
	Bank int `yaml:"bank"`
	// Extension replaces ".bmp" when naming output files
	Extension string `yaml:"extension"`
	// Workers is the number of files converted concurrently by Scan
	Workers int `yaml:"workers"`
}

// DefaultOptions returns the options for a 128 pixel wide pattern table.
func DefaultOptions() Options {
	return Options{
		Width:     bitmap.DefaultConstraints.Width,
		Extension: defaultExtension,
		Workers:   defaultWorkers,
	}
}

// LoadOptions reads YAML encoded options from file on top of the defaults.
func LoadOptions(file string) (Options, error) {
	opts := DefaultOptions()

	b, err := ioutil.ReadFile(file)
	if err != nil {
		return opts, err
	}

	if err := yaml.UnmarshalStrict(b, &opts); err != nil {
		return opts, fmt.Errorf("parsing %s: %w", file, err)
	}

	return opts, opts.Validate()
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Extension == "" {
		o.Extension = d.Extension
	}
	if o.Workers == 0 {
		o.Workers = d.Workers
	}
	return o
}

// Validate reports the first option that is out of range.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Width%8 != 0:
		return fmt.Errorf("width %d is not a positive multiple of 8", o.Width)
	case o.Bank < 0:
		return fmt.Errorf("bank %d is negative", o.Bank)
	case o.Workers < 1:
		return fmt.Errorf("workers %d is less than 1", o.Workers)
	case o.Extension == "":
		return fmt.Errorf("extension is empty")
	}
	return nil
}
