// Command raytracer renders a scene of spheres to an image file using
// the work-stealing pool in package pool to parallelize per-pixel
// sampling across the host's CPUs.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if err := newRootCommand(log).Execute(); err != nil {
		log.WithError(err).Error("render failed")
		os.Exit(1)
	}
}
