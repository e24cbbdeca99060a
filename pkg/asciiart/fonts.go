package asciiart

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontFamily is one of the embedded Go font families.
type fontFamily int

const (
	familySans fontFamily = iota
	familyMono
)

// fontVariant identifies one embedded font file.
type fontVariant struct {
	family fontFamily
	weight int // 400, 500 or 700
	italic bool
}

var fontFiles = map[fontVariant][]byte{
	{familySans, 400, false}: goregular.TTF,
	{familySans, 400, true}:  goitalic.TTF,
	{familySans, 500, false}: gomedium.TTF,
	{familySans, 500, true}:  gomediumitalic.TTF,
	{familySans, 700, false}: gobold.TTF,
	{familySans, 700, true}:  gobolditalic.TTF,
	{familyMono, 400, false}: gomono.TTF,
	{familyMono, 400, true}:  gomonoitalic.TTF,
	{familyMono, 700, false}: gomonobold.TTF,
	{familyMono, 700, true}:  gomonobolditalic.TTF,
}

var (
	parsedFontsMu sync.Mutex
	parsedFonts   = map[fontVariant]*opentype.Font{}
)

// monoFamilies are substrings that mark a CSS family name as monospaced.
var monoFamilies = []string{"mono", "courier", "consolas", "menlo", "monaco", "fixed", "terminal", "code"}

// sansFamilies are family names that resolve to the proportional Go font.
var sansFamilies = []string{"go", "sans-serif", "serif", "system-ui", "arial", "helvetica", "verdana", "times", "georgia", "cursive", "fantasy"}

/*
resolveFamily picks an embedded family for a CSS-style family list ("Menlo, Consolas, monospace"). Like a browser it walks
the list and settles on the first family it recognises, falling back to the proportional Go font.
*/
func resolveFamily(families string) fontFamily {
	for _, name := range strings.Split(families, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		for _, m := range monoFamilies {
			if strings.Contains(name, m) {
				return familyMono
			}
		}
		for _, s := range sansFamilies {
			if name == s {
				return familySans
			}
		}
	}

	return familySans
}

// variantFor maps a CSS weight (100-900) and style onto the closest embedded font.
func variantFor(family fontFamily, weight int, italic bool) fontVariant {
	v := fontVariant{family: family, weight: 400, italic: italic}

	switch {
	case weight >= 600:
		v.weight = 700
	case weight == 500 && family == familySans:
		v.weight = 500
	}

	return v
}

func loadFont(v fontVariant) (*opentype.Font, error) {
	parsedFontsMu.Lock()
	defer parsedFontsMu.Unlock()

	if f, ok := parsedFonts[v]; ok {
		return f, nil
	}

	data, ok := fontFiles[v]
	if !ok {
		return nil, fmt.Errorf("%w: no embedded font for %+v", ErrInvalidParameter, v)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}

	parsedFonts[v] = f
	return f, nil
}

// newFace builds a face at size pixels (72 DPI, so points == pixels).
func newFace(v fontVariant, size float64) (font.Face, error) {
	f, err := loadFont(v)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return face, nil
}
