package imaging

import "image/png"

// PNG encodes via the standard library's image/png, the row order
// flipped from the buffer's bottom-to-top storage to PNG's top-first
// convention by toRGBA.
type PNG struct{}

func (PNG) Encode(path string, buf *Buffer) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, toRGBA(buf))
}
