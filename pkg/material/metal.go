package material

import (
	"math/rand"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
)

// Metal represents a perfectly specular mirror material
type Metal struct {
	Albedo core.Vec3 // Metal color
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3) *Metal {
	return &Metal{Albedo: albedo}
}

// Response implements the Material interface for metal scattering.
// Rays striking the surface from behind (direction·normal >= 0) are absorbed.
func (m *Metal) Response(rayIn core.Ray, hit HitRecord, _ *rand.Rand) []Scatter {
	unitDirection := rayIn.Direction.Normalize()
	if unitDirection.Dot(hit.Normal) >= 0 {
		return nil
	}

	reflected := Reflect(unitDirection, hit.Normal)
	scattered := core.NewChromaRay(hit.Point, reflected, rayIn.Chroma)

	return []Scatter{{Attenuation: m.Albedo, Ray: scattered}}
}
