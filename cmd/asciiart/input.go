package main

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nebbyJammin/asciiweb/pkg/asciiart"
)

// openImage decodes the image at path, applying its EXIF orientation.
func openImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", asciiart.ErrInvalidSource, path, err)
	}
	return img, nil
}

// convertFile converts the image at path with g.
func convertFile(g *asciiart.Generator, path string) (*asciiart.Result, error) {
	img, err := openImage(path)
	if err != nil {
		return nil, err
	}
	return g.ConvertImage(img)
}

// readPaths reads one path per line from r, skipping blank lines.
func readPaths(r io.Reader) ([]string, error) {
	var paths []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if p := strings.TrimSpace(scanner.Text()); p != "" {
			paths = append(paths, p)
		}
	}

	return paths, scanner.Err()
}
