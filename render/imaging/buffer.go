// Package imaging encodes a rendered pixel buffer to disk. It is the
// "image sink" external collaborator the core spec hands an H×W matrix
// of accumulated, not-yet-averaged color sums to: averaging, gamma
// correction, clamping, and quantization all happen here, never inside
// the pool's tasks.
//
// Ported from original_source/include/image.h's Image/Ppm/Png/Jpeg
// hierarchy, replacing the virtual-dispatch base class with the
// Encoder capability interface a fixed set of variants implement.
package imaging

import "github.com/samuel-emrys/raytracer/render"

// Buffer holds the accumulated (not yet resolved) color sum for every
// pixel of an H×W image, stored in the same bottom-row-first order the
// rendering loop fills it in.
type Buffer struct {
	Width, Height   int
	SamplesPerPixel int
	sums            []render.Vec3
}

// NewBuffer allocates a zeroed buffer for a width x height image.
func NewBuffer(width, height, samplesPerPixel int) *Buffer {
	return &Buffer{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		sums:            make([]render.Vec3, width*height),
	}
}

// Set stores the accumulated sample sum for pixel (row, col), where row
// 0 is the bottom row of the image, matching the renderer's scan order.
func (b *Buffer) Set(row, col int, sum render.Vec3) {
	b.sums[row*b.Width+col] = sum
}

// At returns the resolved (averaged, gamma-corrected, quantized) RGB
// triple for pixel (row, col).
func (b *Buffer) At(row, col int) (r, g, bl uint8) {
	return render.Resolve(b.sums[row*b.Width+col], b.SamplesPerPixel)
}

// Encoder writes a Buffer to an output path in its own format.
type Encoder interface {
	Encode(path string, buf *Buffer) error
}
