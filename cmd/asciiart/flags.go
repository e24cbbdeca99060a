package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/nebbyJammin/asciiweb/pkg/asciiart"
)

const (
	charsetUsage = "Glyph ramp, darkest first. Either a preset (block, standard, minimal, extended) or a literal string such as \"#+-. \"."
	invertUsage  = "Inverts the brightness mapping, for light text on a dark background."
	colorUsage   = "Keeps the color of every cell. Colored output is limited to 1,000,000 characters."
	aspectUsage  = "Glyph aspect correction. Terminal and browser cells are about twice as tall as wide, hence 0.55."
	widthUsage   = "Target width in characters. 0 derives it from the image (or the terminal in ansi format)."
	heightUsage  = "Target height in characters. Only used when no width is set."
	formatUsage  = "Output format: text, html, json, yaml or ansi. Defaults to ansi on a terminal and text otherwise."
	interpUsage  = "Re-sampling kernel: nearest, approx-bilinear, bilinear or catmull-rom."
	textUsage    = "Renders this text instead of reading images."
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	configPath string
	verbose    bool

	charset       string
	invert        bool
	color         bool
	aspectRatio   float64
	width         int
	height        int
	format        string
	interpolation string

	text       string
	font       string
	fontSize   float64
	fontWeight string
	fontStyle  string
	fg         string
	bg         string
	padding    int
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *cliFlags) {
	f := &cliFlags{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := asciiart.DefaultConfig()
	textDefaults := asciiart.DefaultTextOptions()

	fs.StringVar(&f.configPath, "config", "", "TOML config path (default <user config dir>/asciiart/config.toml)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Enables debug logging.")

	fs.StringVarP(&f.charset, "charset", "c", defaults.Charset, charsetUsage)
	fs.BoolVarP(&f.invert, "invert", "i", false, invertUsage)
	fs.BoolVarP(&f.color, "color", "C", false, colorUsage)
	fs.Float64VarP(&f.aspectRatio, "aspect-ratio", "a", defaults.AspectRatio, aspectUsage)
	fs.IntVarP(&f.width, "width", "w", 0, widthUsage)
	fs.IntVarP(&f.height, "height", "H", 0, heightUsage)
	fs.StringVarP(&f.format, "format", "f", "", formatUsage)
	fs.StringVar(&f.interpolation, "interpolation", asciiart.InterpolationBiLinear.String(), interpUsage)

	fs.StringVar(&f.text, "text", "", textUsage)
	fs.StringVar(&f.font, "font", textDefaults.Font, "Font family list for --text.")
	fs.Float64Var(&f.fontSize, "font-size", textDefaults.FontSize, "Font size in pixels for --text (1-1000).")
	fs.StringVar(&f.fontWeight, "font-weight", textDefaults.FontWeight, "Font weight for --text: normal, bold or 100-900.")
	fs.StringVar(&f.fontStyle, "font-style", textDefaults.FontStyle, "Font style for --text: normal, italic or oblique.")
	fs.StringVar(&f.fg, "fg", textDefaults.Color, "Text color for --text.")
	fs.StringVar(&f.bg, "bg", textDefaults.BackgroundColor, "Background color for --text.")
	fs.IntVar(&f.padding, "padding", textDefaults.Padding, "Padding in pixels around --text.")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] [path ...]\n\n", appName)
		fmt.Fprintf(stderr, "Converts images (files or directories) to ascii art. With no paths, reads one path per line from stdin.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, f
}

// apply overrides cfg with every flag set explicitly on the command line.
func (f *cliFlags) apply(fs *flag.FlagSet, cfg *fileConfig) {
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}

	set("charset", func() { cfg.Generator.Charset = f.charset })
	set("invert", func() { cfg.Generator.Inverted = f.invert })
	set("color", func() { cfg.Generator.Colored = f.color })
	set("aspect-ratio", func() { cfg.Generator.AspectRatio = f.aspectRatio })
	set("width", func() { cfg.Generator.Width = f.width })
	set("height", func() { cfg.Generator.Height = f.height })
	set("format", func() { cfg.Output.Format = f.format })
	set("interpolation", func() { cfg.Output.Interpolation = f.interpolation })

	set("font", func() { cfg.Text.Font = f.font })
	set("font-size", func() { cfg.Text.FontSize = f.fontSize })
	set("font-weight", func() { cfg.Text.FontWeight = f.fontWeight })
	set("font-style", func() { cfg.Text.FontStyle = f.fontStyle })
	set("fg", func() { cfg.Text.Color = f.fg })
	set("bg", func() { cfg.Text.BackgroundColor = f.bg })
	set("padding", func() { cfg.Text.Padding = f.padding })
}
