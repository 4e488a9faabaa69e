package render

// HitRecord describes where and how a ray struck a hittable surface.
// Ported from original_source/include/hittable.h's HitRecord struct.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	Material  Material
	T         float64
	FrontFace bool
}

// SetFaceNormal orients Normal to always point against the incident ray,
// recording whether the hit was on the outward-facing side.
func (hr *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	hr.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if hr.FrontFace {
		hr.Normal = outwardNormal
	} else {
		hr.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect. The spec calls this the
// "Hit" capability interface replacing the original's virtual-dispatch
// Hittable base class (original_source/include/hittable.h).
type Hittable interface {
	Hit(r Ray, tMin, tMax float64) (HitRecord, bool)
}
