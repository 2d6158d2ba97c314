// Command colorconv converts a color between encodings.
//
// Usage:
//
//	colorconv [flags] [components...]
//
// The color comes from exactly one of: positional components with -from,
// -hex, or -name (looked up in -palette when given, else in the SVG named
// colors). The result is printed in the -to encoding; on a terminal a
// swatch follows.
//
// Examples:
//
//	colorconv -from SrgbU8 255 128 0
//	colorconv -hex '#ff8000' -to Oklab
//	colorconv -from LinearSrgb -tonemap lottes -to SrgbU8 4 2 0.5
//
// Settings are read from -config (YAML), then COLORCONV_LOG_LEVEL,
// COLORCONV_LOG_FORMAT and COLORCONV_LOG_FILE, then flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gogpu/colorenc"
	"github.com/gogpu/colorenc/palette"
	"github.com/gogpu/colorenc/tonemap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "colorconv: %v\n", err)
		os.Exit(1)
	}
}

var errNoInput = errors.New("no color given: use components, -hex or -name")

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("colorconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "colorconv.yaml", "optional YAML config file")
		from       = fs.String("from", "", "encoding of positional components (default SrgbU8 or SrgbAU8 by count)")
		to         = fs.String("to", "", "output encoding (default LinearSrgbA)")
		hex        = fs.String("hex", "", "input as a hex color code")
		name       = fs.String("name", "", "input as a named color")
		pal        = fs.String("palette", "", "palette file (.yaml, .yml or .json) for -name")
		tm         = fs.String("tonemap", "", "tone curve applied before output: none, clamp or lottes")
		logLevel   = fs.String("log-level", "", "log level: debug, info, warn or error")
		logFormat  = fs.String("log-format", "", "log format: text or json")
		logFile    = fs.String("log-file", "", "also write logs to this rotated file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadOptional(*configPath)
	if err != nil {
		return err
	}
	cfg.applyEnv(os.Getenv)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "to":
			cfg.To = *to
		case "palette":
			cfg.Palette = *pal
		case "tonemap":
			cfg.Tonemap = *tm
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "log-file":
			cfg.Log.File = *logFile
		}
	})

	logger, closer, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	colorenc.SetLogger(logger)
	defer colorenc.SetLogger(nil)

	toEnc, err := colorenc.ParseEncoding(cfg.To)
	if err != nil {
		return err
	}

	src, err := readInput(cfg, *from, *hex, *name, fs.Args())
	if err != nil {
		return err
	}
	logger.Debug("colorconv: input", "color", src.String())

	if src, err = applyTonemap(cfg.Tonemap, src); err != nil {
		return err
	}

	out, err := src.Convert(toEnc)
	if err != nil {
		return err
	}
	logger.Debug("colorconv: converted", "from", src.Encoding(), "to", toEnc)

	if _, err := fmt.Fprintln(stdout, out.String()); err != nil {
		return err
	}
	if isTerminal(stdout) {
		return writeSwatch(stdout, colorenc.Convert[colorenc.SrgbU8](out))
	}
	return nil
}

func readInput(cfg Config, from, hex, name string, comps []string) (colorenc.Dynamic, error) {
	given := 0
	for _, set := range []bool{hex != "", name != "", len(comps) > 0} {
		if set {
			given++
		}
	}
	switch {
	case given == 0:
		return colorenc.Dynamic{}, errNoInput
	case given > 1:
		return colorenc.Dynamic{}, errors.New("use only one of components, -hex and -name")
	}

	switch {
	case hex != "":
		c, err := colorenc.ParseHex(hex)
		if err != nil {
			return colorenc.Dynamic{}, err
		}
		return colorenc.ToDynamic(c), nil
	case name != "":
		return lookupName(cfg.Palette, name)
	}

	vals := make([]float64, len(comps))
	for i, s := range comps {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return colorenc.Dynamic{}, fmt.Errorf("component %d: %w", i, err)
		}
		vals[i] = v
	}
	enc := colorenc.EncodingSrgbU8
	if len(vals) == 4 {
		enc = colorenc.EncodingSrgbAU8
	}
	if from != "" {
		var err error
		if enc, err = colorenc.ParseEncoding(from); err != nil {
			return colorenc.Dynamic{}, err
		}
	}
	return colorenc.NewDynamic(enc, vals...)
}

func lookupName(palettePath, name string) (colorenc.Dynamic, error) {
	if palettePath == "" {
		c, ok := colorenc.Named(name)
		if !ok {
			return colorenc.Dynamic{}, fmt.Errorf("unknown color name %q", name)
		}
		return colorenc.ToDynamic(c), nil
	}
	p, err := palette.Load(palettePath)
	if err != nil {
		return colorenc.Dynamic{}, err
	}
	d, ok := p.Lookup(name)
	if !ok {
		return colorenc.Dynamic{}, fmt.Errorf("%w: %q in %s", palette.ErrNotFound, name, palettePath)
	}
	return d, nil
}

// applyTonemap maps src through the named curve. Alpha is dropped when a
// curve is applied.
func applyTonemap(name string, src colorenc.Dynamic) (colorenc.Dynamic, error) {
	var tm tonemap.Tonemapper
	switch name {
	case "", "none":
		return src, nil
	case "clamp":
		tm = tonemap.Clamp{}
	case "lottes":
		tm = tonemap.NewLottes(tonemap.DefaultLottesParams())
	default:
		return colorenc.Dynamic{}, fmt.Errorf("unknown tonemap %q", name)
	}
	return colorenc.ToDynamic(tonemap.Display[colorenc.LinearSrgb](tm, src)), nil
}
