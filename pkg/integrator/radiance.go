package integrator

import (
	"math"
	"math/rand"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/material"
)

// DefaultTMin offsets intersection queries away from the ray origin to avoid
// self-intersection acne.
const DefaultTMin = 1e-4

// World interface to avoid circular imports with the scene package
type World interface {
	NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BackgroundColors() (top, bottom core.Vec3)
}

// RayColor computes the radiance carried by a ray, recursing through material
// scattering until the depth budget is exhausted or the ray escapes to the
// background. Depth exhaustion returns black; it is the sole guaranteed
// termination of the recursion.
func RayColor(ray core.Ray, world World, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.NearestHit(ray, DefaultTMin, math.Inf(1))
	if !isHit {
		return BackgroundGradient(ray, world)
	}

	// Sum attenuated recursive contributions over every scattered ray.
	// An empty response means the ray was absorbed and contributes nothing.
	colour := core.Vec3{}
	for _, scatter := range hit.Material.Response(ray, *hit, random) {
		contribution := RayColor(scatter.Ray, world, random, depth-1)
		colour = colour.Add(scatter.Attenuation.MultiplyVec(contribution))
	}

	return colour
}

// BackgroundGradient returns the vertical background gradient for a ray
func BackgroundGradient(ray core.Ray, world World) core.Vec3 {
	topColor, bottomColor := world.BackgroundColors()

	// Map the normalized direction's y from [-1,1] to [0,1]
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
