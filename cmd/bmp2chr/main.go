package main

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/bmp2chr"
	"github.com/bodgit/bmp2chr/chr"
	"github.com/urfave/cli/v2"
	"golang.org/x/image/bmp"
)

const defaultTilesPerRow = 16

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func options(c *cli.Context) (bmp2chr.Options, error) {
	opts := bmp2chr.DefaultOptions()
	if file := c.String("config"); file != "" {
		var err error
		if opts, err = bmp2chr.LoadOptions(file); err != nil {
			return opts, err
		}
	}

	if c.IsSet("width") {
		opts.Width = c.Int("width")
	}
	if c.IsSet("strict") {
		opts.Strict = c.Bool("strict")
	}
	if c.IsSet("bank") {
		opts.Bank = c.Int("bank")
	}
	if c.IsSet("workers") {
		opts.Workers = c.Int("workers")
	}

	return opts, opts.Validate()
}

func newConverter(c *cli.Context) (*bmp2chr.Converter, func() error, error) {
	opts, err := options(c)
	if err != nil {
		return nil, nil, err
	}

	var lib *bmp2chr.Library
	closer := func() error { return nil }
	if file := c.String("db"); file != "" {
		if lib, err = bmp2chr.NewLibrary(file); err != nil {
			return nil, nil, err
		}
		closer = lib.Close
	}

	return bmp2chr.New(opts, lib, newLogger(c)), closer, nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "bmp2chr"
	app.Usage = "Indexed BMP to CHR tile converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"BMP2CHR_CONFIG"},
			Usage:   "path to YAML configuration",
		},
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BMP2CHR_DB"},
			Usage:   "path to conversion cache database",
		},
		&cli.IntFlag{
			Name:  "width",
			Value: bmp2chr.DefaultOptions().Width,
			Usage: "required image width in pixels",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "reject pixels with a color index above 3",
		},
		&cli.IntFlag{
			Name:  "bank",
			Usage: "pad output to a multiple of this many bytes",
		},
		&cli.IntFlag{
			Name:  "workers",
			Value: bmp2chr.DefaultOptions().Workers,
			Usage: "number of files to convert concurrently when scanning",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert BMP files to CHR",
			Description: "",
			ArgsUsage:   "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				for _, file := range c.Args().Slice() {
					if _, err := conv.ConvertFile(file); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every BMP file beneath a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := conv.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "encode",
			Usage:       "Encode any image to CHR, reducing it to four colors if needed",
			Description: "",
			ArgsUsage:   "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				logger := newLogger(c)

				for _, file := range c.Args().Slice() {
					if err := encodeFile(file, opts, logger); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "decode",
			Usage:       "Render a CHR file as a BMP image",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "tiles-per-row",
					Value: defaultTilesPerRow,
					Usage: "number of tiles across the output image",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := decodeFile(c.Args().First(), c.Int("tiles-per-row"), newLogger(c)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func encodeFile(file string, opts bmp2chr.Options, logger *log.Logger) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if err := chr.Encode(b, m); err != nil {
		return err
	}

	dst := bmp2chr.OutputName(file, opts.Extension)
	logger.Printf("Encoding \"%s\" to \"%s\"\n", file, dst)

	return ioutil.WriteFile(dst, chr.Pad(b.Bytes(), opts.Bank), 0644)
}

func decodeFile(file string, tilesPerRow int, logger *log.Logger) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := chr.Decode(f, tilesPerRow)
	if err != nil {
		return err
	}

	dst := file + ".bmp"
	logger.Printf("Decoding \"%s\" to \"%s\"\n", file, dst)

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer w.Close()

	return bmp.Encode(w, m)
}
