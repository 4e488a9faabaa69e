// Package renderer implements the pixel-sampling driver: it fans one
// task per pixel out through the pool, then drains the results while
// helping the pool make progress instead of blocking idly. This is the
// only code in the module that submits work to the pool and is the
// sole caller of render.RayColor.
package renderer

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/samuel-emrys/raytracer/pool"
	"github.com/samuel-emrys/raytracer/render"
	"github.com/samuel-emrys/raytracer/render/imaging"
)

// Config bundles the per-render parameters the spec's CLI surface
// exposes (width/height/aspect ratio, sampling budget, bounce depth).
type Config struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
}

// Driver owns the per-worker PRNG state and coordinates one render.
// Ported from original_source/src/main.cpp's render loop, generalized
// from sequential scanline iteration to the pool's fan-out/drain
// protocol (spec §4.7).
type Driver struct {
	pool *pool.Pool
	log  *logrus.Entry

	workerRNGs []*render.RNG
	helperRNG  *render.RNG
}

// NewDriver constructs a driver bound to p. One PRNG is allocated per
// worker plus one extra for the driver's own goroutine when it executes
// tasks directly via help-while-waiting — each is its own independent
// stream, per the spec's RNG contract (§5).
func NewDriver(p *pool.Pool, log *logrus.Entry) *Driver {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}
	workerRNGs := make([]*render.RNG, p.NumWorkers())
	for i := range workerRNGs {
		workerRNGs[i] = render.NewRNG(int64(i))
	}
	return &Driver{
		pool:       p,
		log:        log,
		workerRNGs: workerRNGs,
		helperRNG:  render.NewRNG(int64(p.NumWorkers())),
	}
}

func (d *Driver) rngFor(ctx context.Context) *render.RNG {
	if idx, ok := pool.WorkerIndex(ctx); ok {
		return d.workerRNGs[idx]
	}
	return d.helperRNG
}

// Render implements the spec's two-phase pixel-sampling driver.
//
// Phase 1 fans out one task per pixel, each task jittering (col, row)
// across SamplesPerPixel independent samples and summing the resulting
// colors via render.RayColor. Phase 2 drains the H*W futures in
// row-major order, helping the pool between polls instead of blocking
// (pool.Await), and prints "Scanlines completed: r/R" progress to the
// log as whole rows finish.
func (d *Driver) Render(ctx context.Context, camera render.Camera, world render.World, cfg Config) (*imaging.Buffer, error) {
	futures := make([][]*pool.Future[render.Vec3], cfg.Height)
	for row := range futures {
		futures[row] = make([]*pool.Future[render.Vec3], cfg.Width)
	}

	for row := 0; row < cfg.Height; row++ {
		for col := 0; col < cfg.Width; col++ {
			row, col := row, col
			fut, err := pool.Submit(ctx, d.pool, func(taskCtx context.Context) (render.Vec3, error) {
				rng := d.rngFor(taskCtx)
				var sum render.Vec3
				for s := 0; s < cfg.SamplesPerPixel; s++ {
					u := (float64(col) + rng.Float64()) / float64(cfg.Width-1)
					v := (float64(row) + rng.Float64()) / float64(cfg.Height-1)
					ray := camera.GetRay(rng, u, v)
					sum = sum.Add(render.RayColor(rng, ray, world, cfg.MaxDepth))
				}
				return sum, nil
			})
			if err != nil {
				return nil, fmt.Errorf("renderer: submit pixel (%d,%d): %w", row, col, err)
			}
			futures[row][col] = fut
		}
	}

	buf := imaging.NewBuffer(cfg.Width, cfg.Height, cfg.SamplesPerPixel)
	for row := 0; row < cfg.Height; row++ {
		for col := 0; col < cfg.Width; col++ {
			sum, err := pool.Await(ctx, d.pool, futures[row][col])
			if err != nil {
				return nil, fmt.Errorf("renderer: pixel (%d,%d): %w", row, col, err)
			}
			buf.Set(row, col, sum)
		}
		d.log.Infof("Scanlines completed: %d/%d", row+1, cfg.Height)
	}

	return buf, nil
}
