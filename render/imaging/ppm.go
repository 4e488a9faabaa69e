package imaging

import (
	"bufio"
	"fmt"
	"os"
)

// PPM writes the ASCII P3 Portable Pixmap format: header
// "P3\n<W> <H>\n255\n", then one "r g b" triple per pixel, rows ordered
// bottom-to-top (the buffer's own storage order, row 0 = bottom),
// columns left-to-right — this is the literal grammar the core spec's
// external image-sink contract demands, and is written straight from
// the buffer with no row flip. Grounded on
// original_source/src/image.cpp's Ppm::render, which streams
// picture(row, col) directly without the reversal Png::render applies.
type PPM struct{}

func (PPM) Encode(path string, buf *Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imaging: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", buf.Width, buf.Height)

	for row := 0; row < buf.Height; row++ {
		for col := 0; col < buf.Width; col++ {
			r, g, b := buf.At(row, col)
			fmt.Fprintf(w, "%d %d %d\n", r, g, b)
		}
	}

	return w.Flush()
}
