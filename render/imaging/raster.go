package imaging

import (
	"fmt"
	"image"
	"image/color"
	"os"
)

// original_source/include/image.h's Png/Jpeg encoders hand-roll a
// png++/libjpeg pipeline; no equivalent third-party codec appears
// anywhere in the example pack, so both variants here are built on
// image/png and image/jpeg from the standard library, which is the
// idiomatic Go choice for raster encoding.
func toRGBA(buf *Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for fileRow := 0; fileRow < buf.Height; fileRow++ {
		// buf stores row 0 = bottom; raster formats store row 0 = top,
		// so the top-to-first flip happens exactly once, here.
		bufRow := buf.Height - 1 - fileRow
		for col := 0; col < buf.Width; col++ {
			r, g, b := buf.At(bufRow, col)
			img.SetRGBA(col, fileRow, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: create %s: %w", path, err)
	}
	return f, nil
}
