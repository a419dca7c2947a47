package scene

import (
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// The world is built once and treated as read-only afterwards.
type Scene struct {
	Name           string
	World          *geometry.HittableList
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// NewCamera builds the scene's camera
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// GetPrimitiveCount returns the number of spheres in the scene, counting through nested lists
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitives(s.World)
}

func countPrimitives(h geometry.Hittable) int {
	switch h := h.(type) {
	case *geometry.Sphere:
		return 1
	case *geometry.HittableList:
		total := 0
		for _, object := range h.Objects {
			total += countPrimitives(object)
		}
		return total
	}
	return 0
}
