package scene

import (
	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/geometry"
	"github.com/prismtrace/go-prism-tracer/pkg/material"
)

// Scene contains all the elements needed for rendering. The body list is
// immutable for the duration of a render.
type Scene struct {
	Camera      core.Camera
	Bodies      []geometry.Body
	TopColor    core.Vec3 // Background gradient color straight up
	BottomColor core.Vec3 // Background gradient color straight down
}

// NewScene creates a scene with the default background gradient
func NewScene(camera core.Camera, bodies ...geometry.Body) *Scene {
	return &Scene{
		Camera:      camera,
		Bodies:      bodies,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0), // sky blue
		BottomColor: core.NewVec3(1.0, 1.0, 1.0), // white
	}
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() core.Camera {
	return s.Camera
}

// BackgroundColors returns the background gradient endpoints
func (s *Scene) BackgroundColors() (top, bottom core.Vec3) {
	return s.TopColor, s.BottomColor
}

// NearestHit returns the globally nearest intersection across all bodies with
// t in [tMin, tMax]. Each body is queried against a shrinking closest bound,
// so exact ties resolve to the first body in scan order.
func (s *Scene) NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closest := tMax

	for _, body := range s.Bodies {
		hit, isHit := body.Intersect(ray, tMin, closest)
		if !isHit {
			continue
		}
		// The window is inclusive, so a later body may report t == closest;
		// exact ties keep the earlier hit.
		if closestHit != nil && hit.T >= closestHit.T {
			continue
		}
		closest = hit.T
		closestHit = hit
	}

	return closestHit, closestHit != nil
}
