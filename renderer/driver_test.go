package renderer

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/samuel-emrys/raytracer/pool"
	"github.com/samuel-emrys/raytracer/render"
	"github.com/samuel-emrys/raytracer/render/imaging"
)

type DriverTestSuite struct {
	suite.Suite
}

func TestDriverTestSuite(t *testing.T) {
	suite.Run(t, new(DriverTestSuite))
}

// TestTinyRenderProducesExactHeaderAndTripleCount implements spec
// scenario E4: a 4x3 image, 1 sample/pixel, depth 1, a single sphere of
// radius 0.5 centred at (0,0,-1), seen from a camera at (0,0,0).
func (ts *DriverTestSuite) TestTinyRenderProducesExactHeaderAndTripleCount() {
	p := pool.New(2, nil)
	defer p.Stop()

	driver := NewDriver(p, nil)

	world := render.NewWorld(render.NewSphere(render.Vec3{X: 0, Y: 0, Z: -1}, 0.5, render.Lambertian{Albedo: render.Vec3{X: 0.5, Y: 0.5, Z: 0.5}}))
	camera := render.NewCamera(
		render.Vec3{X: 0, Y: 0, Z: 0},
		render.Vec3{X: 0, Y: 0, Z: -1},
		render.Vec3{X: 0, Y: 1, Z: 0},
		1.5707963267948966, // 90 degrees in radians
		4.0/3.0,
		0,
		1,
	)

	buf, err := driver.Render(context.Background(), camera, world, Config{
		Width:           4,
		Height:          3,
		SamplesPerPixel: 1,
		MaxDepth:        1,
	})
	ts.Require().NoError(err)

	dir := ts.T().TempDir()
	path := filepath.Join(dir, "tiny.ppm")
	ts.Require().NoError((imaging.PPM{}).Encode(path, buf))

	f, err := os.Open(path)
	ts.Require().NoError(err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	ts.Require().True(scanner.Scan())
	ts.Equal("P3", scanner.Text())
	ts.Require().True(scanner.Scan())
	ts.Equal("4 3", scanner.Text())
	ts.Require().True(scanner.Scan())
	ts.Equal("255", scanner.Text())

	var triples int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		ts.Len(fields, 3)
		triples++
	}
	ts.Equal(12, triples)
}
