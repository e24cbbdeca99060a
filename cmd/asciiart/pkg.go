// This package implements the command line tool that uses the API.
// It converts images on the filesystem (or text given with --text) to ascii art and
// prints it as plain text, a terminal preview, a standalone HTML page, JSON or YAML.
//
// Paths may be files or directories; directories are walked for images. With no paths,
// one path per line is read from stdin.
//
// Decoders are registered for .png, .jpg, .jpeg, .gif, .webp, .bmp and .tiff
// (See github.com/nebbyJammin/asciiweb/pkg/asciiart).
package main
