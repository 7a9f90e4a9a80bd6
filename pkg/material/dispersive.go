package material

import (
	"math"
	"math/rand"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
)

// DispersiveDielectric is a dielectric with a distinct refractive index per
// colour channel. A White ray is split into one scattered ray per channel,
// each tagged with its chroma; a tagged ray is never split again.
type DispersiveDielectric struct {
	Albedo            core.Vec3  // Tint, applied per channel
	RefractiveIndices [3]float64 // Index of refraction per channel (R, G, B)
}

// NewDispersiveDielectric creates a new dispersive dielectric material
func NewDispersiveDielectric(albedo core.Vec3, refractiveIndices [3]float64) *DispersiveDielectric {
	return &DispersiveDielectric{Albedo: albedo, RefractiveIndices: refractiveIndices}
}

// Response implements the Material interface for dispersive scattering.
// Returns 3 entries for a White incoming ray, 1 entry for a tagged one.
func (d *DispersiveDielectric) Response(rayIn core.Ray, hit HitRecord, random *rand.Rand) []Scatter {
	unitDirection := rayIn.Direction.Normalize()

	workingNormal := hit.Normal
	rayDotNormal := unitDirection.Dot(hit.Normal)

	var refractionRatios [3]float64
	if rayDotNormal > 0 {
		// Inside, exiting the material
		workingNormal = workingNormal.Negate()
		rayDotNormal = -rayDotNormal
		refractionRatios = d.RefractiveIndices
	} else {
		// Outside, entering the material
		for i, index := range d.RefractiveIndices {
			refractionRatios[i] = 1.0 / index
		}
	}

	cosTheta := math.Min(-rayDotNormal, 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// A tagged ray carries a single channel; a White ray splits into all three.
	var channels []int
	if channel, tagged := rayIn.Chroma.Channel(); tagged {
		channels = []int{channel}
	} else {
		channels = []int{0, 1, 2}
	}

	scatters := make([]Scatter, 0, len(channels))
	for _, c := range channels {
		chroma := core.ChromaForChannel(c)
		attenuation := core.Vec3{}.WithChannel(c, d.Albedo.Channel(c))

		var direction core.Vec3
		cannotRefract := refractionRatios[c]*sinTheta > 1.0
		if cannotRefract || Reflectance(cosTheta, refractionRatios[c]) > random.Float64() {
			direction = Reflect(unitDirection, hit.Normal)
		} else {
			direction = refract(unitDirection, workingNormal, cosTheta, refractionRatios[c])
		}

		scatters = append(scatters, Scatter{
			Attenuation: attenuation,
			Ray:         core.NewChromaRay(hit.Point, direction, chroma),
		})
	}

	return scatters
}
