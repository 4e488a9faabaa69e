package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samuel-emrys/raytracer/pool"
	"github.com/samuel-emrys/raytracer/render"
	"github.com/samuel-emrys/raytracer/render/imaging"
	"github.com/samuel-emrys/raytracer/render/scene"
	"github.com/samuel-emrys/raytracer/renderer"
)

func newRootCommand(log *logrus.Logger) *cobra.Command {
	cfg := defaultCLIConfig()

	cmd := &cobra.Command{
		Use:   "raytracer",
		Short: "Render a scene of spheres to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), log, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file path")
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "encoder: ppm, png, or jpeg")
	flags.Float64VarP(&cfg.AspectRatio, "aspect-ratio", "a", cfg.AspectRatio, "width/height ratio")
	flags.IntVarP(&cfg.Width, "width", "w", cfg.Width, "image width in pixels")
	flags.IntVarP(&cfg.SamplesPerPixel, "samples-per-pixel", "s", cfg.SamplesPerPixel, "samples per pixel")
	flags.IntVarP(&cfg.MaxDepth, "max-depth", "d", cfg.MaxDepth, "max recursion depth")
	flags.Float64VarP(&cfg.VerticalFieldOfView, "vertical-field-of-view", "v", cfg.VerticalFieldOfView, "vertical field of view in degrees")

	return cmd
}

func run(ctx context.Context, log *logrus.Logger, cfg cliConfig) error {
	encoder, resolvedFormat, ok := imaging.ForFormat(cfg.Format)
	if !ok {
		log.Warnf("unknown format %q, falling back to ppm", cfg.Format)
	}

	world := scene.Random(render.NewRNG(0))
	camera := scene.RandomCamera(cfg.AspectRatio, cfg.VerticalFieldOfView)

	p := pool.New(0, logrus.NewEntry(log))
	defer p.Stop()

	driver := renderer.NewDriver(p, logrus.NewEntry(log))

	started := time.Now()
	buf, err := driver.Render(ctx, camera, world, renderer.Config{
		Width:           cfg.Width,
		Height:          cfg.height(),
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	elapsed := time.Since(started)

	if err := encoder.Encode(cfg.Output, buf); err != nil {
		return fmt.Errorf("encode %s as %s: %w", cfg.Output, resolvedFormat, err)
	}

	log.Infof("rendered %dx%d in %s, written to %s (%s)", cfg.Width, cfg.height(), elapsed, cfg.Output, resolvedFormat)
	return nil
}
