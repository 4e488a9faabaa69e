// Package render implements the ray-tracing math, scene model, and
// per-worker sampling primitives that the pool's pixel tasks call into.
// It has no knowledge of scheduling; every type here is safe to share
// read-only across goroutines once constructed.
package render

import "math"

// Vec3 is a point or direction in 3-space, and doubles as an RGB color.
// No third-party vector-algebra package appears anywhere in the example
// pack, so this is a direct, dependency-free port of the Eigen::Vector3d
// operations the original ray tracer used (dot, cross, norm, normalize).
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(o Vec3) Vec3   { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Negate() Vec3      { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }

func (v Vec3) Normalize() Vec3 {
	return v.Scale(1.0 / v.Length())
}

// NearZero reports whether the vector is close to zero in all dimensions.
func (v Vec3) NearZero() bool {
	const tolerance = 1e-8
	return math.Abs(v.X) < tolerance && math.Abs(v.Y) < tolerance && math.Abs(v.Z) < tolerance
}

// Reflect mirrors v about a surface with the given normal.
func Reflect(v, normal Vec3) Vec3 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// Refract bends v through a surface with the given normal and ratio of
// refractive indices, using Snell's law (the perpendicular/parallel
// component decomposition from the original implementation).
func Refract(v, normal Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(v.Negate().Dot(normal), 1.0)
	perp := v.Add(normal.Scale(cosTheta)).Scale(etaiOverEtat)
	parallel := normal.Scale(-math.Sqrt(math.Abs(1.0 - perp.LengthSquared())))
	return perp.Add(parallel)
}
