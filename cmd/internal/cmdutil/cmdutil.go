package cmdutil

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/nebbyJammin/asciiweb/pkg/asciiart"
)

// imageExtensions are the file extensions the CLI registers decoders for.
var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
	".tif":  {},
	".tiff": {},
}

// IsImage reports whether path has an extension of a supported image format.
func IsImage(path string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ConvertFunc converts the image file at path.
type ConvertFunc func(path string) (*asciiart.Result, error)

// EmitFunc writes a converted result.
type EmitFunc func(path string, res *asciiart.Result) error

// Stats summarises a batch run.
type Stats struct {
	Converted int
	Failed    int
	// Elapsed is wall time spent converting, excluding emitting.
	Elapsed time.Duration
}

/*
ConvertTree walks root and converts every image file found beneath it, in lexical order. Files that are not images are
skipped. A failed conversion is logged and counted but does not stop the walk; only an error from emit or from reading
the tree itself does.
*/
func ConvertTree(root string, convert ConvertFunc, emit EmitFunc, logger *slog.Logger) (Stats, error) {
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !IsImage(path) {
			return nil
		}

		start := time.Now()

		res, err := convert(path)
		if err != nil {
			logger.Error("conversion failed", "path", path, "error", err)
			stats.Failed++
			return nil
		}

		timeTaken := time.Since(start)
		stats.Elapsed += timeTaken
		stats.Converted++

		logger.Debug("converted image",
			"path", path,
			"width", res.Metadata.Width,
			"height", res.Metadata.Height,
			"conversion_ms", timeTaken.Milliseconds(),
		)

		return emit(path, res)
	})

	return stats, err
}
