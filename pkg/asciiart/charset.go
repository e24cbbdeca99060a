package asciiart

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Preset names a built-in glyph ramp.
type Preset string

const (
	PresetBlock    Preset = "block"
	PresetStandard Preset = "standard"
	PresetMinimal  Preset = "minimal"
	PresetExtended Preset = "extended"

	// PresetCustom is a sentinel: it has no ramp of its own, pass the literal glyphs as the charset instead.
	PresetCustom Preset = "custom"
)

// Glyph ramps, darkest first.
const (
	blockRamp    = "█▓▒░· "
	standardRamp = "@%#*+=-:. "
	minimalRamp  = "#+. "
	// Paul Bourke's 70 level ramp.
	extendedRamp = `$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\|()1{}[]?-_+~<>i!lI;:,"^` + "`" + `'. `
)

var presetRamps = map[Preset]string{
	PresetBlock:    blockRamp,
	PresetStandard: standardRamp,
	PresetMinimal:  minimalRamp,
	PresetExtended: extendedRamp,
}

// markupChars are stripped from custom ramps so glyphs can never open a tag, attribute or entity.
const markupChars = "<>'\"&`"

// Presets lists the built-in presets in a stable order.
func Presets() []Preset {
	return []Preset{PresetBlock, PresetStandard, PresetMinimal, PresetExtended}
}

// Ramp returns the glyphs of a built-in preset, darkest first.
func (p Preset) Ramp() (string, bool) {
	ramp, ok := presetRamps[p]
	return ramp, ok
}

/*
ResolveCharset turns a configured charset into its glyph ramp.

If value names a preset (see Presets()), in any letter case, its canonical ramp is returned. Naming the "custom"
sentinel is an error.
Anything else is a literal custom ramp: it is NFC-normalised, then the characters < > ' " & ` and any control characters
are stripped. A ramp with nothing left is an error.

A misspelt name such as "BLCOK" is treated as a 5-glyph custom ramp.
*/
func ResolveCharset(value string) ([]rune, error) {
	if strings.EqualFold(value, string(PresetCustom)) {
		return nil, fmt.Errorf("%w: the %q preset requires a literal charset string", ErrInvalidParameter, PresetCustom)
	}

	if p, ok := lookupPreset(value); ok {
		ramp, _ := p.Ramp()
		return []rune(ramp), nil
	}

	return sanitizeCharset(value)
}

// lookupPreset matches value against the built-in preset names, ignoring case.
func lookupPreset(value string) (Preset, bool) {
	for _, p := range Presets() {
		if strings.EqualFold(value, string(p)) {
			return p, true
		}
	}
	return "", false
}

func sanitizeCharset(value string) ([]rune, error) {
	normalized := norm.NFC.String(value)

	glyphs := make([]rune, 0, len(normalized))
	for _, r := range normalized {
		if r == unicode.ReplacementChar || unicode.IsControl(r) || strings.ContainsRune(markupChars, r) {
			continue
		}
		glyphs = append(glyphs, r)
	}

	if len(glyphs) == 0 {
		return nil, fmt.Errorf("%w: charset %q is empty after removing markup and control characters", ErrInvalidParameter, value)
	}

	return glyphs, nil
}
