// Package scene builds the World/Camera pairs the renderer drives.
// Scene construction is an external collaborator per the core spec: the
// pool never inspects these values, only holds and shares them.
package scene

import (
	"github.com/samuel-emrys/raytracer/render"
)

// Simple reproduces the two-sphere scene from
// original_source/src/main.cpp: a small sphere resting on a much larger
// one that reads as ground. The original's two spheres carry no
// material (main.cpp's Sphere construction predates the material
// wiring in src/material.cpp); here both get a neutral Lambertian
// albedo so RayColor's materialed recursion has something to scatter
// against instead of falling back to flat normal shading.
func Simple() render.World {
	ground := render.NewSphere(render.Vec3{X: 0, Y: -100.5, Z: -1}, 100, render.Lambertian{Albedo: render.Vec3{X: 0.5, Y: 0.5, Z: 0.5}})
	sphere := render.NewSphere(render.Vec3{X: 0, Y: 0, Z: -1}, 0.5, render.Lambertian{Albedo: render.Vec3{X: 0.7, Y: 0.3, Z: 0.3}})
	return render.NewWorld(ground, sphere)
}

// SimpleCamera is the fixed camera original_source/src/main.cpp uses
// alongside Simple: default position, looking down -Z, no defocus blur.
func SimpleCamera(aspectRatio float64) render.Camera {
	return render.NewCamera(
		render.Vec3{X: 0, Y: 0, Z: 0},
		render.Vec3{X: 0, Y: 0, Z: -1},
		render.Vec3{X: 0, Y: 1, Z: 0},
		radians(90),
		aspectRatio,
		0,
		1,
	)
}

func radians(degrees float64) float64 {
	const pi = 3.1415926535897932385
	return degrees * pi / 180.0
}
