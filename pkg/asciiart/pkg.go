// The asciiart package implements the logic for generating ascii art from some image or from rendered text.
// The result is available as plain text, as escaped HTML (optionally one colored <span> per glyph), and as
// character/color grids for callers that lay the output out themselves.
//
// By default, the package decodes .png, .jpg, .jpeg and .gif. See ConvertBytes() and ConvertReader()
// To support other image formats, either decode the image yourself and use ConvertImage() or import your custom decoders like so:
/*
import (
	... <other imports>

	_ "golang.org/x/image/webp" // Here is your custom file format

	...
)
*/
// Start by calling New(). Pass the options into the constructor (see options.go), and use UpdateConfig() with the
// same options to change the configuration between conversions. A Generator is not safe for concurrent UpdateConfig() calls.
package asciiart
