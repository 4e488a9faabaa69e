package render

import "math"

// Camera converts normalized image-plane coordinates into rays,
// including a thin-lens defocus blur model. Ported from
// original_source/include/camera.h and src/camera.cpp.
//
// It holds no mutable state after construction, so the same value is
// shared read-only by every worker goroutine sampling the image.
type Camera struct {
	origin          Vec3
	lowerLeftCorner Vec3
	horizontal      Vec3
	vertical        Vec3
	u, v, w         Vec3
	lensRadius      float64
}

// NewCamera builds a camera looking from lookFrom toward lookAt, oriented
// by viewUp, with the given vertical field of view (radians), aspect
// ratio, aperture, and focus distance.
func NewCamera(lookFrom, lookAt, viewUp Vec3, verticalFOV, aspectRatio, aperture, focusDistance float64) Camera {
	h := math.Tan(verticalFOV / 2.0)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Sub(lookAt).Normalize()
	u := viewUp.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Scale(focusDistance * viewportWidth)
	vertical := v.Scale(focusDistance * viewportHeight)
	lowerLeftCorner := lookFrom.
		Sub(horizontal.Scale(0.5)).
		Sub(vertical.Scale(0.5)).
		Sub(w.Scale(focusDistance))

	return Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2.0,
	}
}

// GetRay returns the ray through normalized image coordinates (s, t),
// jittered across the lens aperture by rng for depth-of-field blur.
func (c Camera) GetRay(rng *RNG, s, t float64) Ray {
	rd := rng.InUnitDisk().Scale(c.lensRadius)
	offset := c.u.Scale(rd.X).Add(c.v.Scale(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Scale(s)).
		Add(c.vertical.Scale(t)).
		Sub(c.origin).
		Sub(offset)

	return Ray{Origin: c.origin.Add(offset), Direction: direction}
}
