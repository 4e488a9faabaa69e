package scene

import "github.com/samuel-emrys/raytracer/render"

// Random builds the "final scene" populated field of spheres: a large
// ground sphere, three signature spheres (glass, matte, metal) at the
// canonical positions, and a grid of small random spheres with
// materials chosen by weighted coin-flip. This supplements the
// distilled core spec's static two-sphere example with a scene that
// actually exercises all three Material variants
// (original_source/src/material.cpp's Lambertian, Metal, Dialectric),
// matching the scale of scene original_source/src/main.cpp hints at
// but never itself builds.
func Random(rng *render.RNG) render.World {
	var objects []render.Hittable

	ground := render.NewSphere(render.Vec3{X: 0, Y: -1000, Z: 0}, 1000,
		render.Lambertian{Albedo: render.Vec3{X: 0.5, Y: 0.5, Z: 0.5}})
	objects = append(objects, ground)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := rng.Float64()
			center := render.Vec3{
				X: float64(a) + 0.9*rng.Float64(),
				Y: 0.2,
				Z: float64(b) + 0.9*rng.Float64(),
			}

			if center.Sub(render.Vec3{X: 4, Y: 0.2, Z: 0}).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := rng.Vector().Mul(rng.Vector())
				objects = append(objects, render.NewSphere(center, 0.2, render.Lambertian{Albedo: albedo}))
			case chooseMaterial < 0.95:
				albedo := rng.VectorRange(0.5, 1)
				fuzz := rng.Float64Range(0, 0.5)
				objects = append(objects, render.NewSphere(center, 0.2, render.Metal{Albedo: albedo, Fuzz: fuzz}))
			default:
				objects = append(objects, render.NewSphere(center, 0.2, render.Dielectric{RefractionIndex: 1.5}))
			}
		}
	}

	objects = append(objects,
		render.NewSphere(render.Vec3{X: 0, Y: 1, Z: 0}, 1.0, render.Dielectric{RefractionIndex: 1.5}),
		render.NewSphere(render.Vec3{X: -4, Y: 1, Z: 0}, 1.0, render.Lambertian{Albedo: render.Vec3{X: 0.4, Y: 0.2, Z: 0.1}}),
		render.NewSphere(render.Vec3{X: 4, Y: 1, Z: 0}, 1.0, render.Metal{Albedo: render.Vec3{X: 0.7, Y: 0.6, Z: 0.5}, Fuzz: 0.0}),
	)

	return render.NewWorld(objects...)
}

// RandomCamera is the wide-angle, defocus-blurred camera conventionally
// paired with Random: looking at the origin from high and to the side,
// with a shallow depth of field around the three signature spheres.
// verticalFOV is in degrees, matching the CLI's
// --vertical-field-of-view flag.
func RandomCamera(aspectRatio, verticalFOV float64) render.Camera {
	lookFrom := render.Vec3{X: 13, Y: 2, Z: 3}
	lookAt := render.Vec3{X: 0, Y: 0, Z: 0}
	viewUp := render.Vec3{X: 0, Y: 1, Z: 0}
	const aperture = 0.1
	const focusDistance = 10.0

	return render.NewCamera(lookFrom, lookAt, viewUp, radians(verticalFOV), aspectRatio, aperture, focusDistance)
}
