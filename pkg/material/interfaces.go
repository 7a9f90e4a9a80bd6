package material

import (
	"math/rand"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
)

// Material interface for surfaces that can scatter rays.
// Response returns 0 to 3 scatter entries: zero entries means the ray was
// absorbed, more than one only happens for dispersive splits.
type Material interface {
	Response(rayIn core.Ray, hit HitRecord, random *rand.Rand) []Scatter
}

// Scatter is one attenuated continuation of an incoming ray
type Scatter struct {
	Attenuation core.Vec3 // Per-channel colour multiplier for the continuation
	Ray         core.Ray  // The scattered ray
}

// HitRecord contains information about a ray-body intersection
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit surface normal, pointing away from the body interior
	Material Material  // Material of the hit body
}

// Reflect calculates the mirror reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
