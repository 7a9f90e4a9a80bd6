package material

import (
	"math"
	"math/rand"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	Albedo          core.Vec3 // Tint applied to transmitted and reflected light
	RefractiveIndex float64   // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(albedo core.Vec3, refractiveIndex float64) *Dielectric {
	return &Dielectric{Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// Response implements the Material interface for dielectric scattering.
// Exactly one scattered ray is produced: reflection on total internal
// reflection or a winning Schlick draw, refraction otherwise.
func (d *Dielectric) Response(rayIn core.Ray, hit HitRecord, random *rand.Rand) []Scatter {
	unitDirection := rayIn.Direction.Normalize()

	// Bodies report normals pointing away from their interior, so a positive
	// dot product means the ray is exiting the medium.
	workingNormal := hit.Normal
	rayDotNormal := unitDirection.Dot(hit.Normal)

	var refractionRatio float64
	if rayDotNormal > 0 {
		// Inside, exiting the material
		workingNormal = workingNormal.Negate()
		rayDotNormal = -rayDotNormal
		refractionRatio = d.RefractiveIndex
	} else {
		// Outside, entering the material
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	cosTheta := math.Min(-rayDotNormal, 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = Reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, workingNormal, cosTheta, refractionRatio)
	}

	scattered := core.NewChromaRay(hit.Point, direction, rayIn.Chroma)
	return []Scatter{{Attenuation: d.Albedo, Ray: scattered}}
}

// refract calculates the refraction direction using the tangential/normal
// decomposition of Snell's law. The normal must face against the incoming ray.
func refract(unitDirection, normal core.Vec3, cosTheta, refractionRatio float64) core.Vec3 {
	outTangent := unitDirection.Add(normal.Multiply(cosTheta)).Multiply(refractionRatio)
	outNormal := normal.Multiply(-math.Sqrt(math.Abs(1.0 - outTangent.LengthSquared())))
	return outTangent.Add(outNormal)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosTheta, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}
