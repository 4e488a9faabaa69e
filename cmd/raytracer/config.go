package main

// cliConfig holds the render parameters bound from command-line flags,
// mirroring workerpool.Config/DefaultConfig's struct-plus-defaults
// shape.
type cliConfig struct {
	Output              string  // Output file path
	Format              string  // Encoder selection: ppm, png, or jpeg
	AspectRatio         float64 // Width / height ratio
	Width               int     // Image width in pixels
	SamplesPerPixel     int     // Samples averaged per pixel
	MaxDepth            int     // Max ray-bounce recursion depth
	VerticalFieldOfView float64 // Camera vertical FOV in degrees
}

// defaultCLIConfig returns the spec's documented flag defaults.
func defaultCLIConfig() cliConfig {
	return cliConfig{
		Output:              "image.ppm",
		Format:              "ppm",
		AspectRatio:         16.0 / 9.0,
		Width:               1200,
		SamplesPerPixel:     500,
		MaxDepth:            50,
		VerticalFieldOfView: 20.0,
	}
}

func (c cliConfig) height() int {
	return int(float64(c.Width) / c.AspectRatio)
}
