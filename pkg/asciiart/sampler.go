package asciiart

/*
SampleCell averages the pixels of buf that fall under grid cell (x, y) of a gridWidth x gridHeight grid laid over the
buffer. The cell covers

	[floor(x*cw), floor((x+1)*cw)) x [floor(y*ch), floor((y+1)*ch))

where cw = buf.Width/gridWidth and ch = buf.Height/gridHeight. Channel averages are floor-truncated. Pixels outside the
buffer are skipped, and a cell that covers no pixels at all yields opaque black.
*/
func SampleCell(buf PixelBuffer, x, y, gridWidth, gridHeight int) CellColor {
	if gridWidth <= 0 || gridHeight <= 0 {
		return opaqueBlack
	}

	cw := float64(buf.Width) / float64(gridWidth)
	ch := float64(buf.Height) / float64(gridHeight)

	x0, x1 := int(float64(x)*cw), int(float64(x+1)*cw)
	y0, y1 := int(float64(y)*ch), int(float64(y+1)*ch)

	// Clamp to the buffer so the hot loop below never needs At()'s checks.
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, buf.Width), min(y1, buf.Height)

	var rSum, gSum, bSum, aSum, count int
	stride := buf.Width * bytesPerPixel

	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			idx := row + px*bytesPerPixel
			if idx+3 >= len(buf.Data) {
				continue
			}

			rSum += int(buf.Data[idx])
			gSum += int(buf.Data[idx+1])
			bSum += int(buf.Data[idx+2])
			aSum += int(buf.Data[idx+3])
			count++
		}
	}

	if count == 0 {
		return opaqueBlack
	}

	return CellColor{
		R: uint8(rSum / count),
		G: uint8(gSum / count),
		B: uint8(bSum / count),
		A: uint8(aSum / count),
	}
}
