package render

import (
	"hash/maphash"
	"math/rand"
)

// RNG is a worker-private pseudo-random source. The spec requires each
// worker's stream to be independent of every other worker's and of the
// package-global math/rand source, so Submit callers never reach for
// rand.Float64() directly: every task that needs randomness receives one
// of these, constructed once per worker and reused across all the tasks
// that worker executes.
//
// Ported from original_source/include/utility.h's templated
// randomNumber<T>() and the randomVector/randomInUnitSphere/
// randomUnitVector/randomInUnitDisk helpers in utility.cpp.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a fresh stream from an arbitrary identity value (a worker
// index, in practice). Two distinct identities are hashed through
// maphash with an independently-random seed so that, as required by the
// spec, streams are not trivially correlated by adjacent worker indices.
func NewRNG(identity int64) *RNG {
	var h maphash.Hash
	h.SetSeed(maphash.MakeSeed())
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(identity >> (8 * i))
	}
	h.Write(buf[:])
	seed := int64(h.Sum64())
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a value in [0, 1).
func (rng *RNG) Float64() float64 { return rng.r.Float64() }

// Float64Range returns a value in [min, max).
func (rng *RNG) Float64Range(min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// Vector returns a vector whose components are each in [0, 1).
func (rng *RNG) Vector() Vec3 {
	return Vec3{rng.Float64(), rng.Float64(), rng.Float64()}
}

// VectorRange returns a vector whose components are each in [min, max).
func (rng *RNG) VectorRange(min, max float64) Vec3 {
	return Vec3{
		rng.Float64Range(min, max),
		rng.Float64Range(min, max),
		rng.Float64Range(min, max),
	}
}

// InUnitSphere rejection-samples a point strictly inside the unit sphere.
func (rng *RNG) InUnitSphere() Vec3 {
	for {
		p := rng.VectorRange(-1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// UnitVector returns a uniformly distributed point on the unit sphere's
// surface, by normalizing a point sampled from inside it.
func (rng *RNG) UnitVector() Vec3 {
	p := rng.InUnitSphere()
	return p.Scale(1.0 / p.Length())
}

// InUnitDisk rejection-samples a point on the unit disk in the XY plane,
// used for camera defocus blur.
func (rng *RNG) InUnitDisk() Vec3 {
	for {
		p := Vec3{rng.Float64Range(-1, 1), rng.Float64Range(-1, 1), 0}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// clamp restricts x to [min, max].
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
