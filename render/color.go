package render

import "math"

// RayColor recursively traces r through world, scattering up to depth
// times. It is the external collaborator the spec calls the "ray color
// function": pure, thread-safe, side-effect free on world, and bounded
// by the caller's depth budget so no stack can grow unboundedly.
//
// Ported from src/main.cpp's rayColor, generalized from the distilled
// spec's normal-shading-only variant to the full material-scattering
// recursion original_source/include/material.h defines (the original
// main.cpp predates material wiring; src/material.cpp's Lambertian/
// Metal/Dielectric scatter implementations are the supplement).
func RayColor(rng *RNG, r Ray, world World, depth int) Vec3 {
	if depth <= 0 {
		return Vec3{}
	}

	if rec, ok := world.Hit(r, 0.001, infinity); ok {
		if rec.Material != nil {
			attenuation, scattered, ok := rec.Material.Scatter(rng, r, rec)
			if !ok {
				return Vec3{}
			}
			return attenuation.Mul(RayColor(rng, scattered, world, depth-1))
		}
		return rec.Normal.Add(Vec3{1, 1, 1}).Scale(0.5)
	}

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	sky := Vec3{1.0, 1.0, 1.0}.Scale(1.0 - t).Add(Vec3{0.5, 0.7, 1.0}.Scale(t))
	return sky
}

var infinity = math.Inf(1)

// Resolve averages an accumulated sum of samplesPerPixel color samples,
// applies gamma (square-root) correction, and quantizes each channel to
// 8 bits, matching original_source/src/color.cpp's writeColor/getRGB
// exactly: scale, sqrt, clamp to [0, 0.999], multiply by 256 and floor.
func Resolve(sum Vec3, samplesPerPixel int) (r, g, b uint8) {
	scale := 1.0 / float64(samplesPerPixel)
	red := clamp(math.Sqrt(scale*sum.X), 0.0, 0.999)
	green := clamp(math.Sqrt(scale*sum.Y), 0.0, 0.999)
	blue := clamp(math.Sqrt(scale*sum.Z), 0.0, 0.999)
	return uint8(256 * red), uint8(256 * green), uint8(256 * blue)
}
