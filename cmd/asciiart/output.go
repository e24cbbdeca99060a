package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/nebbyJammin/asciiweb/pkg/asciiart"
)

type format string

const (
	formatText format = "text"
	formatHTML format = "html"
	formatJSON format = "json"
	formatYAML format = "yaml"
	formatANSI format = "ansi"
)

// parseFormat resolves the configured format. An empty value picks ansi when writing to a terminal and text otherwise.
func parseFormat(s string, tty bool) (format, error) {
	switch f := format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		if tty {
			return formatANSI, nil
		}
		return formatText, nil
	case formatText, formatHTML, formatJSON, formatYAML, formatANSI:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (supported: text, html, json, yaml, ansi)", s)
	}
}

// emitter writes conversion results in one output format. Close flushes whatever trails the last result.
type emitter interface {
	Emit(source string, res *asciiart.Result) error
	Close() error
}

type emitterOptions struct {
	// title is the <title> of html documents.
	title string
	// profile is the color profile of ansi output.
	profile termenv.Profile
}

func newEmitter(f format, w io.Writer, opts emitterOptions) (emitter, error) {
	switch f {
	case formatText:
		return &textEmitter{w: w}, nil
	case formatHTML:
		return &htmlEmitter{w: w, title: opts.title}, nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &jsonEmitter{enc: enc}, nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlEmitter{enc: enc}, nil
	case formatANSI:
		return newANSIEmitter(w, opts.profile), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

type textEmitter struct {
	w io.Writer
}

func (e *textEmitter) Emit(_ string, res *asciiart.Result) error {
	_, err := fmt.Fprintln(e.w, res.Text)
	return err
}

func (e *textEmitter) Close() error { return nil }

// htmlEmitter writes one standalone document with a <figure> per result.
type htmlEmitter struct {
	w       io.Writer
	title   string
	started bool
}

func (e *htmlEmitter) start() error {
	if e.started {
		return nil
	}
	e.started = true

	_, err := fmt.Fprintf(e.w, "<!DOCTYPE html>\n<html>\n  <head>\n    <meta charset=\"UTF-8\">\n    <title>%s</title>\n  </head>\n  <body style=\"margin:20px;\">\n",
		asciiart.EscapeHTML(e.title))
	return err
}

func (e *htmlEmitter) Emit(source string, res *asciiart.Result) error {
	if err := e.start(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(e.w, "    <figure>\n%s\n      <figcaption>%s</figcaption>\n    </figure>\n",
		res.HTML, asciiart.EscapeHTML(source))
	return err
}

func (e *htmlEmitter) Close() error {
	if err := e.start(); err != nil {
		return err
	}

	_, err := io.WriteString(e.w, "  </body>\n</html>\n")
	return err
}

// document is the json/yaml shape of one result.
type document struct {
	Source          string `json:"source" yaml:"source"`
	asciiart.Result `yaml:",inline"`
}

type jsonEmitter struct {
	enc *json.Encoder
}

func (e *jsonEmitter) Emit(source string, res *asciiart.Result) error {
	return e.enc.Encode(document{Source: source, Result: *res})
}

func (e *jsonEmitter) Close() error { return nil }

type yamlEmitter struct {
	enc *yaml.Encoder
}

func (e *yamlEmitter) Emit(source string, res *asciiart.Result) error {
	return e.enc.Encode(document{Source: source, Result: *res})
}

func (e *yamlEmitter) Close() error { return e.enc.Close() }

// ansiEmitter previews results in the terminal, coloring each glyph with its cell color when the result has colors.
type ansiEmitter struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	styles   map[asciiart.CellColor]lipgloss.Style
}

func newANSIEmitter(w io.Writer, profile termenv.Profile) *ansiEmitter {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return &ansiEmitter{
		w:        w,
		renderer: r,
		styles:   make(map[asciiart.CellColor]lipgloss.Style),
	}
}

func (e *ansiEmitter) style(c asciiart.CellColor) lipgloss.Style {
	if s, ok := e.styles[c]; ok {
		return s
	}

	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	s := e.renderer.NewStyle().Foreground(lipgloss.Color(col.Hex()))
	e.styles[c] = s
	return s
}

func (e *ansiEmitter) Emit(_ string, res *asciiart.Result) error {
	if res.Colors == nil {
		_, err := fmt.Fprintln(e.w, res.Text)
		return err
	}

	var sb strings.Builder
	for y, row := range res.Characters {
		for x, glyph := range row {
			c := res.Colors[y][x]
			if c.A == 0 {
				sb.WriteString(glyph)
				continue
			}
			sb.WriteString(e.style(c).Render(glyph))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(e.w, sb.String())
	return err
}

func (e *ansiEmitter) Close() error { return nil }
