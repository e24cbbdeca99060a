package asciiart

import "math"

// defaultGridWidth caps the derived width when neither a target width nor height is configured.
const defaultGridWidth = 100

/*
CalculateDimensions derives the character grid size for a source of srcWidth x srcHeight pixels.

	- targetWidth > 0: the width is targetWidth, the height follows the source ratio scaled by aspectRatio.
	- else targetHeight > 0: the height is targetHeight, the width follows the source ratio divided by aspectRatio.
	- else: the width is min(100, srcWidth) and the height follows as in the first case.

aspectRatio compensates for glyph cells being taller than they are wide (0.55 suits most monospace fonts). It must be
positive, and srcWidth/srcHeight must be non-zero; both are checked before this is called.

A derived axis that floors to 0 (very wide or very tall sources) is raised to 1.
*/
func CalculateDimensions(srcWidth, srcHeight, targetWidth, targetHeight int, aspectRatio float64) (width, height int) {
	sw, sh := float64(srcWidth), float64(srcHeight)

	switch {
	case targetWidth > 0:
		width = targetWidth
		height = int(math.Floor(sh / sw * float64(targetWidth) * aspectRatio))
	case targetHeight > 0:
		height = targetHeight
		width = int(math.Floor(sw / sh * float64(targetHeight) / aspectRatio))
	default:
		width = min(defaultGridWidth, srcWidth)
		height = int(math.Floor(sh / sw * float64(width) * aspectRatio))
	}

	return max(width, 1), max(height, 1)
}
