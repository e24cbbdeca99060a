package asciiart

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// CellColor is the averaged, non-premultiplied RGBA color of one grid cell.
type CellColor struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// RGBA implements color.Color.
func (c CellColor) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Luminance returns the BT.601 luma of the color, ignoring alpha.
func (c CellColor) Luminance() float64 {
	return Luminance(c.R, c.G, c.B)
}

/*
CSS formats the color as a CSS rgba() value, e.g. "rgba(255, 128, 0, 1)". The alpha channel is written as a fraction
of 255 with at most three decimals.
*/
func (c CellColor) CSS() string {
	var sb strings.Builder
	sb.Grow(len("rgba(255, 255, 255, 0.000)"))

	sb.WriteString("rgba(")
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatFloat(math.Round(float64(c.A)/255*1000)/1000, 'f', -1, 64))
	sb.WriteString(")")

	return sb.String()
}

// opaqueBlack is what SampleCell returns when a cell covers no pixels.
var opaqueBlack = CellColor{A: 255}
