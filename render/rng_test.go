package render

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RNGTestSuite struct {
	suite.Suite
}

func TestRNGTestSuite(t *testing.T) {
	suite.Run(t, new(RNGTestSuite))
}

func (ts *RNGTestSuite) TestFloat64IsInUnitInterval() {
	rng := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := rng.Float64()
		ts.GreaterOrEqual(v, 0.0)
		ts.Less(v, 1.0)
	}
}

func (ts *RNGTestSuite) TestInUnitSphereIsInsideUnitSphere() {
	rng := NewRNG(2)
	for i := 0; i < 500; i++ {
		p := rng.InUnitSphere()
		ts.Less(p.LengthSquared(), 1.0)
	}
}

func (ts *RNGTestSuite) TestUnitVectorHasUnitLength() {
	rng := NewRNG(3)
	for i := 0; i < 500; i++ {
		v := rng.UnitVector()
		ts.InDelta(1.0, v.Length(), 1e-9)
	}
}

func (ts *RNGTestSuite) TestInUnitDiskHasZeroZComponent() {
	rng := NewRNG(4)
	for i := 0; i < 500; i++ {
		p := rng.InUnitDisk()
		ts.Less(p.LengthSquared(), 1.0)
		ts.Equal(0.0, p.Z)
	}
}

// TestDistinctWorkersProduceIndependentStreams exercises invariant 6:
// two distinct worker identities must not merely produce different
// numbers but statistically independent ones. A chi-squared goodness-
// of-fit test bins each stream's samples and checks neither stream
// departs from uniformity, then checks the streams don't merely track
// each other (a weak but sufficient correlation check given the
// package avoids any shared global rand source).
func (ts *RNGTestSuite) TestDistinctWorkersProduceIndependentStreams() {
	const samples = 5000
	const bins = 10

	rngA := NewRNG(7)
	rngB := NewRNG(42)

	binCountsA := make([]int, bins)
	binCountsB := make([]int, bins)
	var identical int

	for i := 0; i < samples; i++ {
		a := rngA.Float64()
		b := rngB.Float64()
		binCountsA[int(a*bins)]++
		binCountsB[int(b*bins)]++
		if a == b {
			identical++
		}
	}

	expected := float64(samples) / float64(bins)
	chiSquaredA := chiSquared(binCountsA, expected)
	chiSquaredB := chiSquared(binCountsB, expected)

	// Generous threshold: bins=10 at ~99.9% confidence is ~27.9; a
	// correctly uniform PRNG sits far below that in practice.
	const confidenceThreshold = 27.9
	ts.Less(chiSquaredA, confidenceThreshold)
	ts.Less(chiSquaredB, confidenceThreshold)

	ts.Zero(identical, "two independently seeded streams should never produce an identical draw across %d samples", samples)
}

func chiSquared(observed []int, expected float64) float64 {
	var sum float64
	for _, o := range observed {
		diff := float64(o) - expected
		sum += diff * diff / expected
	}
	return sum
}
