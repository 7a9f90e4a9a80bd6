package material

import (
	"math/rand"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
)

// Diffuse represents a matte material that scatters uniformly around the normal
type Diffuse struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Response implements the Material interface for diffuse scattering
func (d *Diffuse) Response(rayIn core.Ray, hit HitRecord, random *rand.Rand) []Scatter {
	// Scatter towards a random point in the unit sphere around the normal tip.
	// The direction is deliberately left un-normalized.
	direction := hit.Normal.Add(core.RandomInUnitSphere(random))
	scattered := core.NewChromaRay(hit.Point, direction, rayIn.Chroma)

	return []Scatter{{Attenuation: d.Albedo, Ray: scattered}}
}
