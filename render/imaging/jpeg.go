package imaging

import "image/jpeg"

// JPEG encodes via the standard library's image/jpeg at maximum
// quality, matching original_source/src/image.cpp's Jpeg::render,
// which calls jpeg_set_quality(&vCInfo, 100, TRUE).
type JPEG struct{}

func (JPEG) Encode(path string, buf *Buffer) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, toRGBA(buf), &jpeg.Options{Quality: 100})
}
